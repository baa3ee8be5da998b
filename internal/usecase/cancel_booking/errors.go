package cancel_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("cancel_booking: slot not found")

	// ErrSlotNotBooked возвращается, когда слот не находится в забронированном статусе
	ErrSlotNotBooked = errors.New("cancel_booking: slot is not booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
