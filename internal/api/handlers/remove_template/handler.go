package remove_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	"github.com/m04kA/SMC-InspectionService/internal/service/templates"
)

const (
	msgInvalidTemplateID = "некорректный ID записи шаблона"
	msgTemplateNotFound  = "запись шаблона не найдена"
)

type Handler struct {
	service TemplatesService
	logger  Logger
}

func NewHandler(service TemplatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/templates/{templateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /templates/{id} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	if err := h.service.Remove(r.Context(), templateID); err != nil {
		switch {
		case errors.Is(err, templates.ErrTemplateNotFound):
			h.logger.Warn("DELETE /templates/{id} - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		default:
			h.logger.Error("DELETE /templates/{id} - Failed to remove template: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /templates/{id} - Template removed: template_id=%d", templateID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
