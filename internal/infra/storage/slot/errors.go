package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotExists возвращается при попытке создать дубликат слота
	// (тот же специалист, дата и время)
	ErrSlotExists = errors.New("slot.repository: slot already exists")

	// ErrSlotStateConflict возвращается, когда статус слота не допускает
	// запрошенный переход (например, бронирование занятого слота)
	ErrSlotStateConflict = errors.New("slot.repository: slot state conflict")

	// ErrClosureNotFound возвращается, когда запись о закрытии слота не найдена
	ErrClosureNotFound = errors.New("slot.repository: closure record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
