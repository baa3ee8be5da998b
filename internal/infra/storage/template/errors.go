package template

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда запись шаблона не найдена
	ErrTemplateNotFound = errors.New("template.repository: template entry not found")

	// ErrTemplateExists возвращается при попытке создать дубликат записи
	// шаблона (тот же специалист, день недели и время)
	ErrTemplateExists = errors.New("template.repository: template entry already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("template.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("template.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("template.repository: failed to scan row")
)
