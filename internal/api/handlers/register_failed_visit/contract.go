package register_failed_visit

import (
	"context"

	registerFailedVisit "github.com/m04kA/SMC-InspectionService/internal/usecase/register_failed_visit"
)

type RegisterFailedVisitUseCase interface {
	Execute(ctx context.Context, req *registerFailedVisit.Request) (*registerFailedVisit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
