package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/property"
	slotRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/slot"
)

// UseCase use case отмены бронирования.
// Если осмотр занимал два слота, освобождаются оба: парный слот ищется
// среди соседних слотов того же специалиста на тот же объект
// в том же периоде дня.
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

// Execute выполняет отмену бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: slot=%d, client=%d", req.SlotID, req.ClientID)

	if req.SlotID <= 0 {
		return nil, fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		s, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CancelBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CancelBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !s.Status.IsBooked() || s.PropertyID == nil {
			uc.logger.Warn("CancelBooking: slot id=%d is not booked, status=%s", s.ID, s.Status)
			return ErrSlotNotBooked
		}

		ids := []int64{s.ID}

		companion, err := uc.findBookedCompanion(txCtx, s)
		if err != nil {
			return err
		}
		if companion != nil {
			ids = append(ids, companion.ID)
		}

		if err := uc.slotRepo.Release(txCtx, ids); err != nil {
			uc.logger.Error("CancelBooking: failed to release slots %v: %v", ids, err)
			return fmt.Errorf("%w: failed to release slots: %v", ErrInternal, err)
		}

		resp = &Response{ReleasedSlotIDs: ids}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: released slots %v for client=%d", resp.ReleasedSlotIDs, req.ClientID)
	return resp, nil
}

// findBookedCompanion ищет парный слот того же бронирования.
// Смотрит сначала назад, потом вперед по времени: парный слот занят тем же
// объектом с тем же статусом в том же периоде дня. Зависит от правила
// двух слотов для объекта: одиночные бронирования парного слота не имеют.
func (uc *UseCase) findBookedCompanion(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	property, err := uc.propertyRepo.GetByID(ctx, *s.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			// Объект уже удален: отменяем только сам слот
			uc.logger.Warn("CancelBooking: property id=%d not found for slot id=%d", *s.PropertyID, s.ID)
			return nil, nil
		}
		uc.logger.Error("CancelBooking: failed to get property id=%d: %v", *s.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	if !domain.NeedsTwoSlots(property.AreaM2, property.Furnishing, s.Status.Kind()) {
		return nil, nil
	}

	for _, forward := range []bool{false, true} {
		companion, err := uc.slotRepo.FindBookedNeighbor(ctx, s.InspectorID, s.Date, s.Time, *s.PropertyID, s.Status, forward)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				continue
			}
			uc.logger.Error("CancelBooking: failed to find companion slot: %v", err)
			return nil, fmt.Errorf("%w: failed to find companion slot: %v", ErrInternal, err)
		}

		if domain.SamePeriod(s.Time, companion.Time) {
			return companion, nil
		}
	}

	// Бронирование могло быть принудительно одиночным
	uc.logger.Info("CancelBooking: no booked companion found for slot id=%d", s.ID)
	return nil, nil
}
