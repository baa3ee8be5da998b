package close_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("close_slot: slot not found")

	// ErrSlotNotFree возвращается при попытке закрыть занятый слот
	ErrSlotNotFree = errors.New("close_slot: slot is not free")

	// ErrAccessDenied возвращается, когда слот принадлежит другому специалисту
	ErrAccessDenied = errors.New("close_slot: access denied")

	// ErrReasonRequired возвращается, когда причина закрытия не указана
	ErrReasonRequired = errors.New("close_slot: closure reason is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("close_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("close_slot: internal error")
)
