package list_failed_visits

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	"github.com/m04kA/SMC-InspectionService/internal/domain"
	"github.com/m04kA/SMC-InspectionService/internal/service/visits"
	"github.com/m04kA/SMC-InspectionService/internal/service/visits/models"
)

const (
	msgInvalidIDParam = "некорректный числовой параметр фильтра"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter  = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/failed-visits
//
// Query параметры:
// - inspectorId, clientId, agencyId: фильтры по участникам (опционально)
// - onlyUnpaid: только визиты без выплаты специалисту
// - startDate, endDate: период по дате слота в формате YYYY-MM-DD (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListVisitsRequest{
		OnlyUnpaid: query.Get("onlyUnpaid") == "true",
	}

	for param, dst := range map[string]**int64{
		"inspectorId": &req.InspectorID,
		"clientId":    &req.ClientID,
		"agencyId":    &req.AgencyID,
	} {
		if raw := query.Get(param); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				h.logger.Warn("GET /failed-visits - Invalid %s: %v", param, err)
				handlers.RespondBadRequest(w, msgInvalidIDParam)
				return
			}
			*dst = &id
		}
	}

	for param, dst := range map[string]**time.Time{
		"startDate": &req.StartDate,
		"endDate":   &req.EndDate,
	} {
		if raw := query.Get(param); raw != "" {
			date, err := time.Parse(domain.DateFormat, raw)
			if err != nil {
				h.logger.Warn("GET /failed-visits - Invalid %s: %v", param, err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			*dst = &date
		}
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("GET /failed-visits - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /failed-visits - Failed to list visits: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /failed-visits - Returned %d visits", resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
