package generate_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

// TemplateRepository интерфейс репозитория недельных шаблонов
type TemplateRepository interface {
	ListInspectorIDs(ctx context.Context) ([]int64, error)
	ListByInspector(ctx context.Context, inspectorID int64) ([]*domain.TemplateEntry, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	InsertFreeIgnoreConflict(ctx context.Context, inspectorID int64, date time.Time, slotTime types.TimeString) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
