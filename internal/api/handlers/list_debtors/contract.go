package list_debtors

import (
	"context"

	"github.com/m04kA/SMC-InspectionService/internal/service/visits/models"
)

type VisitsService interface {
	ListDebtors(ctx context.Context) (*models.DebtorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
