package list_templates

import (
	"context"

	"github.com/m04kA/SMC-InspectionService/internal/service/templates/models"
)

type TemplatesService interface {
	List(ctx context.Context, inspectorID int64) (*models.TemplateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
