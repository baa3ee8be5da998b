package mark_visit_paid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	"github.com/m04kA/SMC-InspectionService/internal/service/visits"
)

const (
	msgInvalidVisitID = "некорректный ID визита"
	msgVisitNotFound  = "визит не найден"
	msgAlreadyPaid    = "выплата по визиту уже отмечена"
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

// Handle PATCH /api/v1/failed-visits/{visitId}/paid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /failed-visits/{id}/paid - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	if err := h.service.MarkPaid(r.Context(), visitID); err != nil {
		switch {
		case errors.Is(err, visits.ErrVisitNotFound):
			h.logger.Warn("PATCH /failed-visits/{id}/paid - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgVisitNotFound)

		case errors.Is(err, visits.ErrAlreadyPaid):
			h.logger.Warn("PATCH /failed-visits/{id}/paid - Already paid: visit_id=%d", visitID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		default:
			h.logger.Error("PATCH /failed-visits/{id}/paid - Failed to mark paid: visit_id=%d, error=%v",
				visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /failed-visits/{id}/paid - Payout marked: visit_id=%d", visitID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
