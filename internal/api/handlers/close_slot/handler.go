package close_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	"github.com/m04kA/SMC-InspectionService/internal/api/middleware"
	closeSlot "github.com/m04kA/SMC-InspectionService/internal/usecase/close_slot"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotFree        = "слот занят и не может быть закрыт"
	msgForbidden          = "доступ запрещен"
	msgReasonRequired     = "причина закрытия обязательна"
	msgUnauthorized       = "пользователь не авторизован"
)

type Handler struct {
	useCase CloseSlotUseCase
	logger  Logger
}

func NewHandler(useCase CloseSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/close
//
// Закрывает свободный слот с обязательной причиной. Закрывать можно
// только свои слоты, администратор - любые.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/close - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("POST /slots/{id}/close - Missing user ID: slot_id=%d", slotID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var body CloseSlotRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /slots/{id}/close - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req := &closeSlot.Request{
		SlotID:  slotID,
		ActorID: actorID,
		IsAdmin: middleware.IsAdmin(r.Context()),
		Reason:  body.Reason,
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, closeSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/close - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, closeSlot.ErrAccessDenied):
			h.logger.Warn("POST /slots/{id}/close - Access denied: slot_id=%d, user_id=%d",
				slotID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, closeSlot.ErrSlotNotFree):
			h.logger.Warn("POST /slots/{id}/close - Slot not free: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotNotFree)

		case errors.Is(err, closeSlot.ErrReasonRequired):
			h.logger.Warn("POST /slots/{id}/close - Reason required: slot_id=%d", slotID)
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, closeSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/close - Invalid input: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /slots/{id}/close - Failed to close slot: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/close - Slot closed: slot_id=%d, closure_id=%d, user_id=%d",
		slotID, resp.ClosureID, actorID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
