package list_debtors

import (
	"net/http"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
)

type Handler struct {
	service VisitsService
	logger  Logger
}

func NewHandler(service VisitsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/debtors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListDebtors(r.Context())
	if err != nil {
		h.logger.Error("GET /clients/debtors - Failed to list debtors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/debtors - Returned %d debtors", resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
