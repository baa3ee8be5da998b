package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	slotRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-InspectionService/internal/service/slots/models"
	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

// Service сервис для работы со слотами расписания
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List получает слоты расписания с гибкой фильтрацией
//
// Примеры использования:
// - Все слоты специалиста: List(ctx, &ListSlotsRequest{InspectorID: &id})
// - Свободные слоты на неделю: указать StartDate, EndDate и OnlyAvailable
// - Занятые слоты с данными объектов: OnlyBooked = true
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	if req.OnlyAvailable && req.OnlyBooked {
		s.logger.Warn("List: conflicting filter flags onlyAvailable and onlyBooked")
		return nil, fmt.Errorf("%w: onlyAvailable and onlyBooked are mutually exclusive", ErrInvalidInput)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("List: endDate before startDate")
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	details, err := s.slotRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slots", len(details))
	return models.FromDomainSlotList(details), nil
}

// AddSlot вручную добавляет одиночный свободный слот вне недельного шаблона.
// Используется для разовых выходов специалиста в нерабочие дни.
func (s *Service) AddSlot(ctx context.Context, req *models.AddSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("AddSlot: adding slot for inspector=%d date=%s time=%s", req.InspectorID, req.Date, req.Time)

	if req.InspectorID <= 0 {
		return nil, fmt.Errorf("%w: inspectorId must be positive", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("AddSlot: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		s.logger.Warn("AddSlot: invalid time=%s: %v", req.Time, err)
		return nil, fmt.Errorf("%w: invalid time format, expected HH:MM", ErrInvalidInput)
	}

	created, err := s.slotRepo.Create(ctx, &domain.Slot{
		InspectorID: req.InspectorID,
		Date:        date,
		Time:        slotTime,
		Available:   true,
		Status:      domain.StatusFree,
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotExists) {
			s.logger.Warn("AddSlot: slot already exists for inspector=%d date=%s time=%s", req.InspectorID, req.Date, req.Time)
			return nil, ErrSlotExists
		}
		s.logger.Error("AddSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSlot: created slot id=%d", created.ID)

	return &models.SlotResponse{
		ID:          created.ID,
		InspectorID: created.InspectorID,
		Date:        created.Date.Format(domain.DateFormat),
		Time:        created.Time.String(),
		Available:   created.Available,
		Status:      string(created.Status),
	}, nil
}

// ListClosed получает закрытые слоты специалиста с причинами закрытия
func (s *Service) ListClosed(ctx context.Context, inspectorID int64) (*models.ClosedSlotListResponse, error) {
	if inspectorID <= 0 {
		return nil, fmt.Errorf("%w: inspectorId must be positive", ErrInvalidInput)
	}

	closed, err := s.slotRepo.ListClosedByInspector(ctx, inspectorID)
	if err != nil {
		s.logger.Error("ListClosed: repository error for inspector=%d: %v", inspectorID, err)
		return nil, fmt.Errorf("%w: ListClosed - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListClosed: fetched %d closed slots for inspector=%d", len(closed), inspectorID)
	return models.FromDomainClosedSlots(closed), nil
}
