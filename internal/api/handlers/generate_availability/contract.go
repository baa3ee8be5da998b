package generate_availability

import (
	"context"

	generateAvailability "github.com/m04kA/SMC-InspectionService/internal/usecase/generate_availability"
)

type GenerateAvailabilityUseCase interface {
	Execute(ctx context.Context, req *generateAvailability.Request) (*generateAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
