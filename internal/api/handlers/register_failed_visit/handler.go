package register_failed_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	registerFailedVisit "github.com/m04kA/SMC-InspectionService/internal/usecase/register_failed_visit"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotBooked      = "слот не забронирован"
	msgPropertyNotFound   = "объект недвижимости не найден"
	msgVisitExists        = "несостоявшийся осмотр по этому слоту уже зарегистрирован"
	msgReasonRequired     = "причина несостоявшегося осмотра обязательна"
)

type Handler struct {
	useCase RegisterFailedVisitUseCase
	logger  Logger
}

func NewHandler(useCase RegisterFailedVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/failed-visit
//
// Регистрирует выезд специалиста, который не завершился осмотром:
// слот переводится в FAILED_VISIT, сумма осмотра относится на долг клиента,
// специалисту начисляется компенсация за выезд.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/failed-visit - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var body RegisterFailedVisitRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /slots/{id}/failed-visit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req := &registerFailedVisit.Request{
		SlotID:       slotID,
		Reason:       body.Reason,
		ClientCharge: body.ClientCharge,
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, registerFailedVisit.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/failed-visit - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, registerFailedVisit.ErrPropertyNotFound):
			h.logger.Warn("POST /slots/{id}/failed-visit - Property not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, registerFailedVisit.ErrSlotNotBooked):
			h.logger.Warn("POST /slots/{id}/failed-visit - Slot not booked: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotNotBooked)

		case errors.Is(err, registerFailedVisit.ErrVisitExists):
			h.logger.Warn("POST /slots/{id}/failed-visit - Visit already registered: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgVisitExists)

		case errors.Is(err, registerFailedVisit.ErrReasonRequired):
			h.logger.Warn("POST /slots/{id}/failed-visit - Reason is required: slot_id=%d", slotID)
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, registerFailedVisit.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/failed-visit - Invalid input: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /slots/{id}/failed-visit - Failed to register visit: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/failed-visit - Visit registered: visit_id=%d, slot_id=%d, charge=%.2f",
		resp.VisitID, slotID, resp.ClientCharge)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
