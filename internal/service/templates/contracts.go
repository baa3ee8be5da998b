package templates

import (
	"context"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// TemplateRepository интерфейс репозитория недельных шаблонов
type TemplateRepository interface {
	Create(ctx context.Context, entry *domain.TemplateEntry) (*domain.TemplateEntry, error)
	Delete(ctx context.Context, id int64) error
	ListByInspector(ctx context.Context, inspectorID int64) ([]*domain.TemplateEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
