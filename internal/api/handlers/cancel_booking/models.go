package cancel_booking

// CancelBookingRequest тело запроса на отмену бронирования.
// Тело опционально: ID клиента фиксируется в журнале операций.
type CancelBookingRequest struct {
	ClientID int64 `json:"clientId,omitempty"`
}
