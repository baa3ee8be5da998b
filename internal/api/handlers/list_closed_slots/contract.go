package list_closed_slots

import (
	"context"

	"github.com/m04kA/SMC-InspectionService/internal/service/slots/models"
)

type SlotsService interface {
	ListClosed(ctx context.Context, inspectorID int64) (*models.ClosedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
