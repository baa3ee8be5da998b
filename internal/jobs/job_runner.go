// Package jobs содержит фоновые задачи обслуживания расписания:
// генерацию слотов по шаблонам и очистку устаревших данных.
package jobs

import (
	"context"

	generateAvailability "github.com/m04kA/SMC-InspectionService/internal/usecase/generate_availability"
	purgeOldSlots "github.com/m04kA/SMC-InspectionService/internal/usecase/purge_old_slots"
)

type GenerateAvailabilityUseCase interface {
	Execute(ctx context.Context, req *generateAvailability.Request) (*generateAvailability.Response, error)
}

type PurgeOldSlotsUseCase interface {
	Execute(ctx context.Context, req *purgeOldSlots.Request) (*purgeOldSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// JobRunner выполняет фоновые задачи сервиса
type JobRunner struct {
	generate        GenerateAvailabilityUseCase
	purge           PurgeOldSlotsUseCase
	horizonWeeks    int
	retentionMonths int
	logger          Logger
}

func NewJobRunner(
	generate GenerateAvailabilityUseCase,
	purge PurgeOldSlotsUseCase,
	horizonWeeks int,
	retentionMonths int,
	logger Logger,
) *JobRunner {
	return &JobRunner{
		generate:        generate,
		purge:           purge,
		horizonWeeks:    horizonWeeks,
		retentionMonths: retentionMonths,
		logger:          logger,
	}
}

// GenerateAvailability разворачивает недельные шаблоны всех специалистов
// в свободные слоты на горизонт вперед
func (jr *JobRunner) GenerateAvailability() {
	jr.runWithRecovery("GenerateAvailability", func() {
		ctx := context.Background()

		resp, err := jr.generate.Execute(ctx, &generateAvailability.Request{
			HorizonWeeks: jr.horizonWeeks,
		})
		if err != nil {
			jr.logger.Error("GenerateAvailability job failed: %v", err)
			return
		}

		jr.logger.Info("GenerateAvailability job finished: inspectors=%d, created=%d, skipped=%d",
			resp.InspectorsProcessed, resp.SlotsCreated, resp.SlotsSkipped)
	})
}

// PurgeOldSlots удаляет слоты старше срока хранения вместе со связанными данными
func (jr *JobRunner) PurgeOldSlots() {
	jr.runWithRecovery("PurgeOldSlots", func() {
		ctx := context.Background()

		resp, err := jr.purge.Execute(ctx, &purgeOldSlots.Request{
			RetentionMonths: jr.retentionMonths,
		})
		if err != nil {
			jr.logger.Error("PurgeOldSlots job failed: %v", err)
			return
		}

		jr.logger.Info("PurgeOldSlots job finished: cutoff=%s, slots=%d, visits=%d, properties=%d, clients=%d, failed=%d",
			resp.Cutoff, resp.SlotsDeleted, resp.VisitsDeleted,
			resp.PropertiesDeleted, resp.ClientsDeleted, resp.UnitsFailed)
	})
}

// RunStartupJobs выполняет обе задачи при старте сервиса, чтобы расписание
// было актуальным до первого срабатывания планировщика
func (jr *JobRunner) RunStartupJobs() {
	jr.GenerateAvailability()
	jr.PurgeOldSlots()
}

// runWithRecovery не дает панике из задачи уронить процесс
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.logger.Error("Job panicked: job=%s, panic=%v", jobName, r)
		}
	}()

	jr.logger.Info("Starting job: %s", jobName)
	jobFunc()
}
