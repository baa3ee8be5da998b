package add_template

import (
	"context"

	"github.com/m04kA/SMC-InspectionService/internal/service/templates/models"
	generateAvailability "github.com/m04kA/SMC-InspectionService/internal/usecase/generate_availability"
)

type TemplatesService interface {
	Add(ctx context.Context, req *models.AddTemplateRequest) (*models.TemplateResponse, error)
}

type GenerateAvailabilityUseCase interface {
	Execute(ctx context.Context, req *generateAvailability.Request) (*generateAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
