package generate_availability

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	generateAvailability "github.com/m04kA/SMC-InspectionService/internal/usecase/generate_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase GenerateAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GenerateAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Тело опционально: пустой запрос генерирует на горизонт по умолчанию
	var req GenerateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /availability/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &generateAvailability.Request{
		HorizonWeeks: req.HorizonWeeks,
	})
	if err != nil {
		switch {
		case errors.Is(err, generateAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/generate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/generate - Failed to generate availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/generate - Generated: inspectors=%d created=%d skipped=%d",
		resp.InspectorsProcessed, resp.SlotsCreated, resp.SlotsSkipped)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
