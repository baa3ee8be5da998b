package templates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	templateRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/template"
	"github.com/m04kA/SMC-InspectionService/internal/service/templates/models"
	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

// Service сервис для работы с недельными шаблонами расписания
type Service struct {
	templateRepo TemplateRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(templateRepo TemplateRepository, logger Logger) *Service {
	return &Service{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// Add добавляет запись недельного шаблона.
// Новые слоты по записи появятся при следующей генерации расписания.
func (s *Service) Add(ctx context.Context, req *models.AddTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("Add: adding template entry for inspector=%d weekday=%d time=%s", req.InspectorID, req.Weekday, req.Time)

	if req.InspectorID <= 0 {
		return nil, fmt.Errorf("%w: inspectorId must be positive", ErrInvalidInput)
	}
	if req.Weekday < 0 || req.Weekday > 6 {
		s.logger.Warn("Add: invalid weekday=%d", req.Weekday)
		return nil, fmt.Errorf("%w: weekday must be in range 0-6 (0 = Sunday)", ErrInvalidInput)
	}

	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		s.logger.Warn("Add: invalid time=%s: %v", req.Time, err)
		return nil, fmt.Errorf("%w: invalid time format, expected HH:MM", ErrInvalidInput)
	}

	entry, err := s.templateRepo.Create(ctx, &domain.TemplateEntry{
		InspectorID: req.InspectorID,
		Weekday:     time.Weekday(req.Weekday),
		Time:        slotTime,
	})
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateExists) {
			s.logger.Warn("Add: template entry already exists for inspector=%d weekday=%d time=%s", req.InspectorID, req.Weekday, req.Time)
			return nil, ErrTemplateExists
		}
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: created template entry id=%d", entry.ID)

	resp := models.FromDomainTemplate(entry)
	return &resp, nil
}

// Remove удаляет запись недельного шаблона.
// Уже сгенерированные слоты не затрагиваются.
func (s *Service) Remove(ctx context.Context, id int64) error {
	s.logger.Info("Remove: removing template entry id=%d", id)

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Remove: template entry id=%d not found", id)
			return ErrTemplateNotFound
		}
		s.logger.Error("Remove: repository error for template id=%d: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: removed template entry id=%d", id)
	return nil
}

// List получает записи недельного шаблона специалиста
func (s *Service) List(ctx context.Context, inspectorID int64) (*models.TemplateListResponse, error) {
	if inspectorID <= 0 {
		return nil, fmt.Errorf("%w: inspectorId must be positive", ErrInvalidInput)
	}

	entries, err := s.templateRepo.ListByInspector(ctx, inspectorID)
	if err != nil {
		s.logger.Error("List: repository error for inspector=%d: %v", inspectorID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d template entries for inspector=%d", len(entries), inspectorID)
	return models.FromDomainTemplateList(entries), nil
}
