package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/property"
	slotRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/slot"
)

// UseCase use case бронирования слота под осмотр.
// Большие или полностью меблированные объекты (кроме повторных осмотров)
// занимают два смежных слота одного специалиста в одном периоде дня.
type UseCase struct {
	slotRepo     SlotRepository
	propertyRepo PropertyRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	propertyRepo PropertyRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		propertyRepo: propertyRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет бронирование слота.
// Использует сериализуемую транзакцию: оба слота блокируются и переводятся
// в забронированный статус атомарно, при гонке один из конкурентов получит
// повтор транзакции или отказ.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%d, property=%d, kind=%s", req.SlotID, req.PropertyID, req.Kind)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("BookSlot: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("BookSlot: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	needsTwo := domain.NeedsTwoSlots(property.AreaM2, property.Furnishing, req.Kind)
	status := req.Kind.BookedStatus()

	var resp *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Основной слот блокируется через FOR UPDATE
		primary, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("BookSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("BookSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !primary.IsFree() {
			uc.logger.Warn("BookSlot: slot id=%d is not free, status=%s", primary.ID, primary.Status)
			return ErrSlotNotAvailable
		}

		ids := []int64{primary.ID}
		var companionID *int64
		forcedSingle := false

		// Явное указание оператора отключает правило двух слотов:
		// парный слот не ищется, бронируется только основной
		if needsTwo && req.ForceSingle {
			forcedSingle = true
			uc.logger.Warn("BookSlot: booking single slot id=%d despite dual-slot rule", primary.ID)
		}

		if needsTwo && !req.ForceSingle {
			companion, err := uc.findCompanion(txCtx, primary)
			switch {
			case err == nil:
				ids = append(ids, companion.ID)
				companionID = &companion.ID
			case errors.Is(err, ErrNoCompanionSlot):
				uc.logger.Warn("BookSlot: no companion slot for slot id=%d", primary.ID)
				return ErrNoCompanionSlot
			default:
				return err
			}
		}

		if err := uc.slotRepo.MarkBooked(txCtx, ids, req.PropertyID, status); err != nil {
			if errors.Is(err, slotRepo.ErrSlotStateConflict) {
				uc.logger.Warn("BookSlot: state conflict while booking slots %v", ids)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("BookSlot: failed to mark slots %v booked: %v", ids, err)
			return fmt.Errorf("%w: failed to mark slots booked: %v", ErrInternal, err)
		}

		resp = &Response{
			SlotID:          primary.ID,
			CompanionSlotID: companionID,
			InspectorID:     primary.InspectorID,
			Date:            primary.Date.Format(domain.DateFormat),
			Time:            primary.Time,
			Status:          string(status),
			ForcedSingle:    forcedSingle,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if resp.CompanionSlotID != nil {
		uc.logger.Info("BookSlot: booked slots %d and %d for property=%d", resp.SlotID, *resp.CompanionSlotID, req.PropertyID)
	} else {
		uc.logger.Info("BookSlot: booked slot %d for property=%d", resp.SlotID, req.PropertyID)
	}

	return resp, nil
}

// findCompanion ищет парный слот: ближайший свободный слот того же
// специалиста в тот же день позже основного и в том же периоде дня.
func (uc *UseCase) findCompanion(ctx context.Context, primary *domain.Slot) (*domain.Slot, error) {
	companion, err := uc.slotRepo.FindFreeLaterSameDay(ctx, primary.InspectorID, primary.Date, primary.Time)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrNoCompanionSlot
		}
		uc.logger.Error("BookSlot: failed to find companion slot: %v", err)
		return nil, fmt.Errorf("%w: failed to find companion slot: %v", ErrInternal, err)
	}

	// Ближайший свободный слот в другом периоде дня не подходит
	if !domain.SamePeriod(primary.Time, companion.Time) {
		return nil, ErrNoCompanionSlot
	}

	return companion, nil
}
