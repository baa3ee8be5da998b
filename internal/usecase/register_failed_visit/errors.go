package register_failed_visit

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("register_failed_visit: slot not found")

	// ErrSlotNotBooked возвращается, когда слот не находится в забронированном статусе
	ErrSlotNotBooked = errors.New("register_failed_visit: slot is not booked")

	// ErrPropertyNotFound возвращается, когда объект недвижимости не найден
	ErrPropertyNotFound = errors.New("register_failed_visit: property not found")

	// ErrVisitExists возвращается при повторной регистрации по тому же слоту
	ErrVisitExists = errors.New("register_failed_visit: visit already registered for slot")

	// ErrReasonRequired возвращается, когда причина несостоявшегося осмотра не указана
	ErrReasonRequired = errors.New("register_failed_visit: visit reason is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_failed_visit: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_failed_visit: internal error")
)
