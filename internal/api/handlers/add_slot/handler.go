package add_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	"github.com/m04kA/SMC-InspectionService/internal/service/slots"
	"github.com/m04kA/SMC-InspectionService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgSlotExists         = "слот на это время уже существует"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.AddSlot(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, slots.ErrSlotExists):
			h.logger.Warn("POST /slots - Slot already exists: inspector=%d date=%s time=%s",
				req.InspectorID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotExists)

		default:
			h.logger.Error("POST /slots - Failed to add slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created: id=%d inspector=%d", resp.ID, resp.InspectorID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
