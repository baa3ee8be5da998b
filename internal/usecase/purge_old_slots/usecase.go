package purge_old_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	clientRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/client"
	propertyRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/property"
)

// UseCase use case плановой очистки устаревших данных.
// Слоты старше срока хранения удаляются вместе с записями о несостоявшихся
// осмотрах, привязанными объектами и клиентами без оставшихся объектов.
// Каждый слот обрабатывается в отдельной транзакции: ошибка одного слота
// не прерывает очистку остальных.
type UseCase struct {
	slotRepo     SlotRepository
	propertyRepo PropertyRepository
	clientRepo   ClientRepository
	visitRepo    VisitRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	propertyRepo PropertyRepository,
	clientRepo ClientRepository,
	visitRepo VisitRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		propertyRepo: propertyRepo,
		clientRepo:   clientRepo,
		visitRepo:    visitRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет очистку устаревших данных.
// Дата отсечения считается как сегодня минус срок хранения,
// месяц хранения принимается за 30 дней.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	retentionMonths := req.RetentionMonths
	if retentionMonths == 0 {
		retentionMonths = domain.DefaultRetentionMonths
	}
	if retentionMonths < 0 {
		uc.logger.Warn("PurgeOldSlots: negative retentionMonths=%d", retentionMonths)
		return nil, fmt.Errorf("%w: retentionMonths must not be negative", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	cutoff := now.AddDate(0, 0, -retentionMonths*30)

	uc.logger.Info("PurgeOldSlots: purging slots older than %s", cutoff.Format(domain.DateFormat))

	refs, err := uc.slotRepo.ListOlderThan(ctx, cutoff)
	if err != nil {
		uc.logger.Error("PurgeOldSlots: failed to list old slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list old slots: %v", ErrInternal, err)
	}

	resp := &Response{Cutoff: cutoff.Format(domain.DateFormat)}

	for _, ref := range refs {
		if err := uc.purgeUnit(ctx, ref, resp); err != nil {
			uc.logger.Error("PurgeOldSlots: failed to purge slot id=%d: %v", ref.SlotID, err)
			resp.UnitsFailed++
		}
	}

	uc.logger.Info("PurgeOldSlots: deleted %d slots, %d visits, %d properties, %d clients, %d units failed",
		resp.SlotsDeleted, resp.VisitsDeleted, resp.PropertiesDeleted, resp.ClientsDeleted, resp.UnitsFailed)

	return resp, nil
}

// purgeUnit удаляет один слот и связанные с ним данные в отдельной транзакции.
// Порядок фиксирован ограничениями схемы: сперва записи о несостоявшихся
// осмотрах, затем слот (запись о закрытии уходит каскадно), затем объект
// и, если объектов у клиента не осталось, сам клиент.
func (uc *UseCase) purgeUnit(ctx context.Context, ref *domain.PurgeRef, resp *Response) error {
	var visitsDeleted int64
	var propertyDeleted, clientDeleted bool

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		visitsDeleted, err = uc.visitRepo.DeleteBySlot(txCtx, ref.SlotID)
		if err != nil {
			return fmt.Errorf("%w: failed to delete visits: %v", ErrInternal, err)
		}

		if err := uc.slotRepo.Delete(txCtx, ref.SlotID); err != nil {
			return fmt.Errorf("%w: failed to delete slot: %v", ErrInternal, err)
		}

		if ref.PropertyID == nil {
			return nil
		}

		if err := uc.propertyRepo.Delete(txCtx, *ref.PropertyID); err != nil {
			if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
				// Объект уже удален предыдущим слотом того же объекта
				return nil
			}
			return fmt.Errorf("%w: failed to delete property: %v", ErrInternal, err)
		}
		propertyDeleted = true

		if ref.ClientID == nil {
			return nil
		}

		remaining, err := uc.propertyRepo.CountByClient(txCtx, *ref.ClientID)
		if err != nil {
			return fmt.Errorf("%w: failed to count client properties: %v", ErrInternal, err)
		}
		if remaining > 0 {
			return nil
		}

		if err := uc.clientRepo.Delete(txCtx, *ref.ClientID); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return nil
			}
			return fmt.Errorf("%w: failed to delete client: %v", ErrInternal, err)
		}
		clientDeleted = true

		return nil
	})
	if err != nil {
		return err
	}

	resp.SlotsDeleted++
	resp.VisitsDeleted += int(visitsDeleted)
	if propertyDeleted {
		resp.PropertiesDeleted++
	}
	if clientDeleted {
		resp.ClientsDeleted++
	}

	return nil
}
