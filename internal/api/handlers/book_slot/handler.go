package book_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	bookSlot "github.com/m04kA/SMC-InspectionService/internal/usecase/book_slot"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgSlotNotFound       = "слот не найден"
	msgPropertyNotFound   = "объект недвижимости не найден"
	msgSlotNotAvailable   = "слот недоступен для бронирования"
	msgNoCompanionSlot    = "нет свободного парного слота в том же периоде дня"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/book - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{id}/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(slotID))
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/book - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrPropertyNotFound):
			h.logger.Warn("POST /slots/{id}/book - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, bookSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /slots/{id}/book - Slot not available: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookSlot.ErrNoCompanionSlot):
			h.logger.Warn("POST /slots/{id}/book - No companion slot: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgNoCompanionSlot)

		case errors.Is(err, bookSlot.ErrInvalidKind), errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots/{id}/book - Failed to book slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/book - Slot booked: slot_id=%d property_id=%d", slotID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
