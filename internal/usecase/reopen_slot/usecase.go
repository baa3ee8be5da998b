package reopen_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	slotRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/slot"
)

// UseCase use case повторного открытия закрытого слота.
// Запись о причине закрытия удаляется, слот возвращается в свободный статус.
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

// Execute выполняет повторное открытие слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReopenSlot: slot=%d by actor=%d", req.SlotID, req.ActorID)

	if req.SlotID <= 0 {
		return nil, fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	if req.ActorID <= 0 {
		return nil, fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	var resp *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		s, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("ReopenSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("ReopenSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !req.IsAdmin && s.InspectorID != req.ActorID {
			uc.logger.Warn("ReopenSlot: actor=%d is not the owner of slot id=%d", req.ActorID, s.ID)
			return ErrAccessDenied
		}

		if s.Status != domain.StatusClosed {
			uc.logger.Warn("ReopenSlot: slot id=%d is not closed, status=%s", s.ID, s.Status)
			return ErrSlotNotClosed
		}

		if err := uc.slotRepo.DeleteClosureBySlot(txCtx, s.ID); err != nil && !errors.Is(err, slotRepo.ErrClosureNotFound) {
			uc.logger.Error("ReopenSlot: failed to delete closure record for slot id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to delete closure record: %v", ErrInternal, err)
		}

		if err := uc.slotRepo.Reopen(txCtx, s.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotStateConflict) {
				return ErrSlotNotClosed
			}
			uc.logger.Error("ReopenSlot: failed to reopen slot id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to reopen slot: %v", ErrInternal, err)
		}

		resp = &Response{
			SlotID: s.ID,
			Status: string(domain.StatusFree),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReopenSlot: reopened slot id=%d", resp.SlotID)
	return resp, nil
}
