package templates

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда запись шаблона не найдена
	ErrTemplateNotFound = errors.New("template entry not found")

	// ErrTemplateExists возвращается при попытке создать дубликат записи шаблона
	ErrTemplateExists = errors.New("template entry already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
