package purge_old_slots

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-InspectionService/internal/api/handlers"
	purgeOldSlots "github.com/m04kA/SMC-InspectionService/internal/usecase/purge_old_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRetention   = "некорректный срок хранения"
)

type Handler struct {
	useCase PurgeOldSlotsUseCase
	logger  Logger
}

func NewHandler(useCase PurgeOldSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/maintenance/purge
//
// Удаляет слоты старше срока хранения вместе со связанными визитами,
// объектами и клиентами без других объектов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Тело запроса опционально
	var body PurgeOldSlotsRequest
	if err := handlers.DecodeJSON(r, &body); err != nil &&
		!errors.Is(err, io.EOF) && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /maintenance/purge - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &purgeOldSlots.Request{
		RetentionMonths: body.RetentionMonths,
	})
	if err != nil {
		switch {
		case errors.Is(err, purgeOldSlots.ErrInvalidInput):
			h.logger.Warn("POST /maintenance/purge - Invalid retention: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRetention)

		default:
			h.logger.Error("POST /maintenance/purge - Failed to purge: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /maintenance/purge - Purge finished: cutoff=%s, slots=%d, failed=%d",
		resp.Cutoff, resp.SlotsDeleted, resp.UnitsFailed)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
