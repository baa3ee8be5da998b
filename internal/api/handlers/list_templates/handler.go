package list_templates

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
)

const msgInvalidInspectorID = "некорректный ID специалиста"

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

// Handle GET /api/v1/inspectors/{inspectorId}/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	inspectorID, err := strconv.ParseInt(vars["inspectorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /inspectors/{id}/templates - Invalid inspector ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInspectorID)
		return
	}

	resp, err := h.service.List(r.Context(), inspectorID)
	if err != nil {
		h.logger.Error("GET /inspectors/{id}/templates - Failed to list templates: inspector_id=%d, error=%v",
			inspectorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /inspectors/{id}/templates - Returned %d entries: inspector_id=%d",
		resp.Total, inspectorID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
