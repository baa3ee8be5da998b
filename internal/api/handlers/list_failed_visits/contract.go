package list_failed_visits

import (
	"context"

	"github.com/m04kA/SMC-InspectionService/internal/service/visits/models"
)

type VisitsService interface {
	List(ctx context.Context, req *models.ListVisitsRequest) (*models.VisitListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
