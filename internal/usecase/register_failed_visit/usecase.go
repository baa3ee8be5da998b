package register_failed_visit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	visitRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/npvisit"
	propertyRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/property"
	slotRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-InspectionService/internal/pricing"
)

// UseCase use case регистрации несостоявшегося осмотра: специалист выехал,
// но осмотр не проведен по вине клиента. Сумма осмотра относится на долг
// клиента, специалисту начисляется компенсация за выезд.
type UseCase struct {
	slotRepo     SlotRepository
	propertyRepo PropertyRepository
	clientRepo   ClientRepository
	visitRepo    VisitRepository
	txManager    TransactionManager
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
		logger:       logger,
	}
}

// Execute выполняет регистрацию несостоявшегося осмотра.
// Запись о выезде, долг клиента и статус слота меняются атомарно
// в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterFailedVisit: slot=%d", req.SlotID)

	if req.SlotID <= 0 {
		return nil, fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	if req.ClientCharge != nil && *req.ClientCharge < 0 {
		return nil, fmt.Errorf("%w: clientCharge must not be negative", ErrInvalidInput)
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		uc.logger.Warn("RegisterFailedVisit: empty reason for slot id=%d", req.SlotID)
		return nil, ErrReasonRequired
	}

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		s, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("RegisterFailedVisit: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("RegisterFailedVisit: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !s.Status.IsBooked() || s.PropertyID == nil {
			uc.logger.Warn("RegisterFailedVisit: slot id=%d is not booked, status=%s", s.ID, s.Status)
			return ErrSlotNotBooked
		}

		property, err := uc.propertyRepo.GetByID(txCtx, *s.PropertyID)
		if err != nil {
			if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
				uc.logger.Warn("RegisterFailedVisit: property id=%d not found", *s.PropertyID)
				return ErrPropertyNotFound
			}
			uc.logger.Error("RegisterFailedVisit: failed to get property id=%d: %v", *s.PropertyID, err)
			return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}

		charge := pricing.ClientCharge(property.BaseCharge, s.Status.Kind())
		if req.ClientCharge != nil {
			charge = pricing.RoundCents(*req.ClientCharge)
		}
		payout := pricing.FailedVisitPayout(charge)

		visit, err := uc.visitRepo.Create(txCtx, &domain.NonProductiveVisit{
			SlotID:       s.ID,
			PropertyID:   property.ID,
			ClientID:     property.ClientID,
			InspectorID:  s.InspectorID,
			AgencyID:     &property.AgencyID,
			OriginalDate: s.Date,
			OriginalTime: s.Time,
			Reason:       reason,
			ClientCharge: charge,
			PayoutAmount: payout,
			Paid:         false,
		})
		if err != nil {
			if errors.Is(err, visitRepo.ErrVisitExists) {
				uc.logger.Warn("RegisterFailedVisit: visit already registered for slot id=%d", s.ID)
				return ErrVisitExists
			}
			uc.logger.Error("RegisterFailedVisit: failed to create visit for slot id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to create visit: %v", ErrInternal, err)
		}

		if err := uc.clientRepo.AddToDebtBalance(txCtx, property.ClientID, charge); err != nil {
			uc.logger.Error("RegisterFailedVisit: failed to add debt for client id=%d: %v", property.ClientID, err)
			return fmt.Errorf("%w: failed to add client debt: %v", ErrInternal, err)
		}

		if err := uc.slotRepo.MarkFailedVisit(txCtx, s.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotStateConflict) {
				return ErrSlotNotBooked
			}
			uc.logger.Error("RegisterFailedVisit: failed to mark slot id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to mark slot: %v", ErrInternal, err)
		}

		resp = &Response{
			VisitID:      visit.ID,
			SlotID:       s.ID,
			ClientID:     property.ClientID,
			Reason:       reason,
			ClientCharge: charge,
			PayoutAmount: payout,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RegisterFailedVisit: registered visit id=%d, charge=%.2f, payout=%.2f",
		resp.VisitID, resp.ClientCharge, resp.PayoutAmount)

	return resp, nil
}
