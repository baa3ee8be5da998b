package list_closed_slots

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
)

const msgInvalidInspectorID = "некорректный ID специалиста"

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/inspectors/{inspectorId}/closed-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	inspectorID, err := strconv.ParseInt(vars["inspectorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /inspectors/{id}/closed-slots - Invalid inspector ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInspectorID)
		return
	}

	resp, err := h.service.ListClosed(r.Context(), inspectorID)
	if err != nil {
		h.logger.Error("GET /inspectors/{id}/closed-slots - Failed to list closed slots: inspector_id=%d, error=%v",
			inspectorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /inspectors/{id}/closed-slots - Returned %d closed slots: inspector_id=%d",
		resp.Total, inspectorID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
