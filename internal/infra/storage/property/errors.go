package property

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект недвижимости не найден
	ErrPropertyNotFound = errors.New("property.repository: property not found")

	// ErrAgencyNotFound возвращается, когда агентство не найдено
	ErrAgencyNotFound = errors.New("property.repository: agency not found")

	// ErrPropertyExists возвращается при попытке создать объект
	// с уже занятым внешним кодом
	ErrPropertyExists = errors.New("property.repository: property already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("property.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("property.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("property.repository: failed to scan row")
)
