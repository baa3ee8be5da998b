package purge_old_slots

import (
	"context"

	purgeOldSlots "github.com/m04kA/SMC-InspectionService/internal/usecase/purge_old_slots"
)

type PurgeOldSlotsUseCase interface {
	Execute(ctx context.Context, req *purgeOldSlots.Request) (*purgeOldSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
