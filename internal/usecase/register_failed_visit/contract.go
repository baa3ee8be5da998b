package register_failed_visit

import (
	"context"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	MarkFailedVisit(ctx context.Context, id int64) error
}

// PropertyRepository интерфейс репозитория объектов недвижимости
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	AddToDebtBalance(ctx context.Context, id int64, amount float64) error
}

// VisitRepository интерфейс репозитория несостоявшихся осмотров
type VisitRepository interface {
	Create(ctx context.Context, v *domain.NonProductiveVisit) (*domain.NonProductiveVisit, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
