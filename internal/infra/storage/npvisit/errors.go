package npvisit

import "errors"

var (
	// ErrVisitNotFound возвращается, когда запись о несостоявшемся осмотре не найдена
	ErrVisitNotFound = errors.New("npvisit.repository: non-productive visit not found")

	// ErrVisitExists возвращается при попытке повторно зарегистрировать
	// несостоявшийся осмотр по тому же слоту
	ErrVisitExists = errors.New("npvisit.repository: visit already registered for slot")

	// ErrAlreadyPaid возвращается при попытке повторно отметить выплату
	ErrAlreadyPaid = errors.New("npvisit.repository: visit already paid")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("npvisit.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("npvisit.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("npvisit.repository: failed to scan row")
)
