package visits

import "errors"

var (
	// ErrVisitNotFound возвращается, когда запись о несостоявшемся осмотре не найдена
	ErrVisitNotFound = errors.New("non-productive visit not found")

	// ErrAlreadyPaid возвращается при повторной отметке выплаты
	ErrAlreadyPaid = errors.New("visit already paid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
