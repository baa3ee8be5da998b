package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот не свободен для бронирования
	ErrSlotNotAvailable = errors.New("book_slot: slot is not available")

	// ErrPropertyNotFound возвращается, когда объект недвижимости не найден
	ErrPropertyNotFound = errors.New("book_slot: property not found")

	// ErrNoCompanionSlot возвращается, когда осмотру нужны два слота,
	// но свободного парного слота в том же периоде дня нет
	ErrNoCompanionSlot = errors.New("book_slot: no companion slot available in the same period")

	// ErrInvalidKind возвращается при неизвестном виде осмотра
	ErrInvalidKind = errors.New("book_slot: invalid inspection kind")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
