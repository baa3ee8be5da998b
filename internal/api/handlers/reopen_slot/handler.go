package reopen_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	"github.com/m04kA/SMC-InspectionService/internal/api/middleware"
	reopenSlot "github.com/m04kA/SMC-InspectionService/internal/usecase/reopen_slot"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgSlotNotFound  = "слот не найден"
	msgSlotNotClosed = "слот не закрыт"
	msgForbidden     = "доступ запрещен"
	msgUnauthorized  = "пользователь не авторизован"
)

type Handler struct {
	useCase ReopenSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReopenSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/reopen
//
// Возвращает закрытый слот в свободный статус и удаляет запись о причине
// закрытия. Открывать можно только свои слоты, администратор - любые.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/reopen - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("POST /slots/{id}/reopen - Missing user ID: slot_id=%d", slotID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	req := &reopenSlot.Request{
		SlotID:  slotID,
		ActorID: actorID,
		IsAdmin: middleware.IsAdmin(r.Context()),
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reopenSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/reopen - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, reopenSlot.ErrAccessDenied):
			h.logger.Warn("POST /slots/{id}/reopen - Access denied: slot_id=%d, user_id=%d",
				slotID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reopenSlot.ErrSlotNotClosed):
			h.logger.Warn("POST /slots/{id}/reopen - Slot not closed: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotNotClosed)

		default:
			h.logger.Error("POST /slots/{id}/reopen - Failed to reopen slot: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/reopen - Slot reopened: slot_id=%d, user_id=%d", slotID, actorID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
