package purge_old_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.PurgeRef, error)
	Delete(ctx context.Context, id int64) error
}

// PropertyRepository интерфейс репозитория объектов недвижимости
type PropertyRepository interface {
	CountByClient(ctx context.Context, clientID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Delete(ctx context.Context, id int64) error
}

// VisitRepository интерфейс репозитория несостоявшихся осмотров
type VisitRepository interface {
	DeleteBySlot(ctx context.Context, slotID int64) (int64, error)
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
