package close_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	slotRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/slot"
)

// UseCase use case ручного закрытия слота (отпуск, болезнь, личные причины).
// Закрыть можно только свободный слот, причина обязательна.
type UseCase struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет закрытие слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CloseSlot: slot=%d by actor=%d", req.SlotID, req.ActorID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CloseSlot: validation failed: %v", err)
		return nil, err
	}

	reason := strings.TrimSpace(req.Reason)

	var resp *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		s, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CloseSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CloseSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !req.IsAdmin && s.InspectorID != req.ActorID {
			uc.logger.Warn("CloseSlot: actor=%d is not the owner of slot id=%d", req.ActorID, s.ID)
			return ErrAccessDenied
		}

		if !s.IsFree() {
			uc.logger.Warn("CloseSlot: slot id=%d is not free, status=%s", s.ID, s.Status)
			return ErrSlotNotFree
		}

		if err := uc.slotRepo.Close(txCtx, s.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotStateConflict) {
				return ErrSlotNotFree
			}
			uc.logger.Error("CloseSlot: failed to close slot id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to close slot: %v", ErrInternal, err)
		}

		record, err := uc.slotRepo.CreateClosure(txCtx, s.ID, reason)
		if err != nil {
			uc.logger.Error("CloseSlot: failed to create closure record for slot id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to create closure record: %v", ErrInternal, err)
		}

		resp = &Response{
			SlotID:    s.ID,
			ClosureID: record.ID,
			Status:    string(domain.StatusClosed),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CloseSlot: closed slot id=%d, closure id=%d", resp.SlotID, resp.ClosureID)
	return resp, nil
}
