package reopen_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("reopen_slot: slot not found")

	// ErrSlotNotClosed возвращается при попытке открыть незакрытый слот
	ErrSlotNotClosed = errors.New("reopen_slot: slot is not closed")

	// ErrAccessDenied возвращается, когда слот принадлежит другому специалисту
	ErrAccessDenied = errors.New("reopen_slot: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reopen_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reopen_slot: internal error")
)
