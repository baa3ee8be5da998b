package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов расписания
type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	ListWithFilter(ctx context.Context, filter domain.SlotsFilter) ([]*domain.SlotDetails, error)
	ListClosedByInspector(ctx context.Context, inspectorID int64) ([]*domain.ClosedSlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
