package book_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	FindFreeLaterSameDay(ctx context.Context, inspectorID int64, date time.Time, after types.TimeString) (*domain.Slot, error)
	MarkBooked(ctx context.Context, ids []int64, propertyID int64, status domain.SlotStatus) error
}

// PropertyRepository интерфейс репозитория объектов недвижимости
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
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
