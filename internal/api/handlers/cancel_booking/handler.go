package cancel_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	cancelBooking "github.com/m04kA/SMC-InspectionService/internal/usecase/cancel_booking"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotBooked      = "слот не забронирован"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/cancel
//
// Снимает бронирование: слот и его парный слот (если осмотр занимал два)
// возвращаются в свободный статус.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/cancel - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	// Тело запроса опционально: ID клиента нужен только для журнала
	var body CancelBookingRequest
	if err := handlers.DecodeJSON(r, &body); err != nil &&
		!errors.Is(err, io.EOF) && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /slots/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		SlotID:   slotID,
		ClientID: body.ClientID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/cancel - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, cancelBooking.ErrSlotNotBooked):
			h.logger.Warn("POST /slots/{id}/cancel - Slot not booked: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotNotBooked)

		default:
			h.logger.Error("POST /slots/{id}/cancel - Failed to cancel booking: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/cancel - Booking cancelled: slot_id=%d, released=%v",
		slotID, resp.ReleasedSlotIDs)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
