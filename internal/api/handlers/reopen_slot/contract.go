package reopen_slot

import (
	"context"

	reopenSlot "github.com/m04kA/SMC-InspectionService/internal/usecase/reopen_slot"
)

type ReopenSlotUseCase interface {
	Execute(ctx context.Context, req *reopenSlot.Request) (*reopenSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
