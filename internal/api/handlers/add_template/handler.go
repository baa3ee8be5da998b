package add_template

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	"github.com/m04kA/SMC-InspectionService/internal/service/templates"
	"github.com/m04kA/SMC-InspectionService/internal/service/templates/models"
	generateAvailability "github.com/m04kA/SMC-InspectionService/internal/usecase/generate_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTemplate    = "некорректные данные шаблона"
	msgTemplateExists     = "запись шаблона уже существует"
)

type Handler struct {
	service  TemplatesService
	generate GenerateAvailabilityUseCase
	logger   Logger
}

func NewHandler(service TemplatesService, generate GenerateAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		service:  service,
		generate: generate,
		logger:   logger,
	}
}

// Handle POST /api/v1/templates
//
// Добавляет запись недельного шаблона: день недели (0 - воскресенье)
// и время начала слота.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /templates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrTemplateExists):
			h.logger.Warn("POST /templates - Template exists: inspector_id=%d, weekday=%d, time=%s",
				req.InspectorID, req.Weekday, req.Time)
			handlers.RespondConflict(w, msgTemplateExists)

		case errors.Is(err, templates.ErrInvalidInput):
			h.logger.Warn("POST /templates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		default:
			h.logger.Error("POST /templates - Failed to add template: inspector_id=%d, error=%v",
				req.InspectorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /templates - Template added: template_id=%d, inspector_id=%d", resp.ID, resp.InspectorID)

	// Слоты по новой записи появляются сразу, не дожидаясь планировщика.
	// Ошибка генерации не отменяет созданную запись: её догонит следующий запуск.
	if genResp, err := h.generate.Execute(r.Context(), &generateAvailability.Request{}); err != nil {
		h.logger.Error("POST /templates - Failed to regenerate availability: inspector_id=%d, error=%v", resp.InspectorID, err)
	} else {
		h.logger.Info("POST /templates - Availability regenerated: slots_created=%d, slots_skipped=%d",
			genResp.SlotsCreated, genResp.SlotsSkipped)
	}

	handlers.RespondJSON(w, http.StatusCreated, resp)
}
