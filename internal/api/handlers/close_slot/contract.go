package close_slot

import (
	"context"

	closeSlot "github.com/m04kA/SMC-InspectionService/internal/usecase/close_slot"
)

type CloseSlotUseCase interface {
	Execute(ctx context.Context, req *closeSlot.Request) (*closeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
