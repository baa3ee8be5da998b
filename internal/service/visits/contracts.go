package visits

import (
	"context"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// VisitRepository интерфейс репозитория несостоявшихся осмотров
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.NonProductiveVisit, error)
	ListWithFilter(ctx context.Context, filter domain.VisitsFilter) ([]*domain.VisitDetails, error)
	MarkPaid(ctx context.Context, id int64) error
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	ListDebtors(ctx context.Context) ([]*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
