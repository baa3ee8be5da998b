package list_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	"github.com/m04kA/SMC-InspectionService/internal/domain"
	"github.com/m04kA/SMC-InspectionService/internal/service/slots"
	"github.com/m04kA/SMC-InspectionService/internal/service/slots/models"
)

const (
	msgInvalidInspectorID = "некорректный параметр inspectorId"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter      = "некорректные параметры фильтрации"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
//
// Query параметры:
// - inspectorId: фильтр по специалисту (опционально)
// - startDate, endDate: период в формате YYYY-MM-DD (опционально)
// - onlyAvailable, onlyBooked: только свободные / только занятые
// - includeClosed, includeFailed: включать закрытые / несостоявшиеся
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListSlotsRequest{
		OnlyAvailable: query.Get("onlyAvailable") == "true",
		OnlyBooked:    query.Get("onlyBooked") == "true",
		IncludeClosed: query.Get("includeClosed") == "true",
		IncludeFailed: query.Get("includeFailed") == "true",
	}

	if raw := query.Get("inspectorId"); raw != "" {
		inspectorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid inspectorId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInspectorID)
			return
		}
		req.InspectorID = &inspectorID
	}

	for param, dst := range map[string]**time.Time{
		"startDate": &req.StartDate,
		"endDate":   &req.EndDate,
	} {
		if raw := query.Get(param); raw != "" {
			date, err := time.Parse(domain.DateFormat, raw)
			if err != nil {
				h.logger.Warn("GET /slots - Invalid %s: %v", param, err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			*dst = &date
		}
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /slots - Failed to list slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Returned %d slots", resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
