package generate_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// UseCase use case генерации расписания по недельным шаблонам.
// Идемпотентен: повторный запуск за тот же период не создает дубликатов
// и не трогает уже забронированные или закрытые слоты.
type UseCase struct {
	templateRepo TemplateRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	templateRepo TemplateRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute генерирует свободные слоты на заданный горизонт вперед.
// Для каждого специалиста с шаблоном проходит по датам от сегодняшней
// до конца горизонта и вставляет слот для каждой записи шаблона,
// выпадающей на этот день недели.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	horizonWeeks := req.HorizonWeeks
	if horizonWeeks == 0 {
		horizonWeeks = domain.DefaultHorizonWeeks
	}
	if horizonWeeks < 0 {
		uc.logger.Warn("GenerateAvailability: negative horizonWeeks=%d", horizonWeeks)
		return nil, fmt.Errorf("%w: horizonWeeks must not be negative", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, horizonWeeks*7)

	uc.logger.Info("GenerateAvailability: generating slots from %s to %s",
		start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	inspectorIDs, err := uc.templateRepo.ListInspectorIDs(ctx)
	if err != nil {
		uc.logger.Error("GenerateAvailability: failed to list inspectors: %v", err)
		return nil, fmt.Errorf("%w: failed to list inspectors: %v", ErrInternal, err)
	}

	resp := &Response{}

	for _, inspectorID := range inspectorIDs {
		created, skipped, err := uc.generateForInspector(ctx, inspectorID, start, end)
		if err != nil {
			uc.logger.Error("GenerateAvailability: failed for inspector=%d: %v", inspectorID, err)
			return nil, err
		}

		resp.InspectorsProcessed++
		resp.SlotsCreated += created
		resp.SlotsSkipped += skipped
	}

	uc.logger.Info("GenerateAvailability: processed %d inspectors, created %d slots, skipped %d duplicates",
		resp.InspectorsProcessed, resp.SlotsCreated, resp.SlotsSkipped)

	return resp, nil
}

// generateForInspector генерирует слоты одного специалиста в отдельной транзакции
func (uc *UseCase) generateForInspector(ctx context.Context, inspectorID int64, start, end time.Time) (int, int, error) {
	entries, err := uc.templateRepo.ListByInspector(ctx, inspectorID)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: failed to list template entries: %v", ErrInternal, err)
	}

	// Группируем записи шаблона по дню недели
	byWeekday := make(map[time.Weekday][]*domain.TemplateEntry)
	for _, entry := range entries {
		byWeekday[entry.Weekday] = append(byWeekday[entry.Weekday], entry)
	}

	var created, skipped int

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			for _, entry := range byWeekday[date.Weekday()] {
				inserted, err := uc.slotRepo.InsertFreeIgnoreConflict(txCtx, inspectorID, date, entry.Time)
				if err != nil {
					return fmt.Errorf("%w: failed to insert slot: %v", ErrInternal, err)
				}
				if inserted {
					created++
				} else {
					skipped++
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	uc.logger.Info("GenerateAvailability: inspector=%d created=%d skipped=%d", inspectorID, created, skipped)
	return created, skipped, nil
}
