package visits

import (
	"context"
	"errors"
	"fmt"

	visitRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/npvisit"
	"github.com/m04kA/SMC-InspectionService/internal/service/visits/models"
)

// Service сервис для работы с несостоявшимися осмотрами и долгами клиентов
type Service struct {
	visitRepo  VisitRepository
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса несостоявшихся осмотров
func NewService(visitRepo VisitRepository, clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		visitRepo:  visitRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List получает несостоявшиеся осмотры с гибкой фильтрацией
//
// Примеры использования:
// - Невыплаченные выезды специалиста: InspectorID + OnlyUnpaid
// - Долги по агентству за месяц: AgencyID + StartDate + EndDate
func (s *Service) List(ctx context.Context, req *models.ListVisitsRequest) (*models.VisitListResponse, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("List: endDate before startDate")
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	details, err := s.visitRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d non-productive visits", len(details))
	return models.FromDomainVisitList(details), nil
}

// MarkPaid отмечает выплату специалисту за выезд
func (s *Service) MarkPaid(ctx context.Context, id int64) error {
	s.logger.Info("MarkPaid: marking visit id=%d as paid", id)

	if err := s.visitRepo.MarkPaid(ctx, id); err != nil {
		switch {
		case errors.Is(err, visitRepo.ErrVisitNotFound):
			s.logger.Warn("MarkPaid: visit id=%d not found", id)
			return ErrVisitNotFound
		case errors.Is(err, visitRepo.ErrAlreadyPaid):
			s.logger.Warn("MarkPaid: visit id=%d already paid", id)
			return ErrAlreadyPaid
		default:
			s.logger.Error("MarkPaid: repository error for visit id=%d: %v", id, err)
			return fmt.Errorf("%w: MarkPaid - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("MarkPaid: visit id=%d marked as paid", id)
	return nil
}

// ListDebtors получает клиентов с накопленной задолженностью
func (s *Service) ListDebtors(ctx context.Context) (*models.DebtorListResponse, error) {
	debtors, err := s.clientRepo.ListDebtors(ctx)
	if err != nil {
		s.logger.Error("ListDebtors: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDebtors - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListDebtors: fetched %d debtors", len(debtors))
	return models.FromDomainClients(debtors), nil
}
