// Package scheduler запускает фоновые задачи по cron-расписанию.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-InspectionService/internal/jobs"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config cron-выражения фоновых задач
type Config struct {
	GenerateSpec string // генерация расписания, например "0 3 * * *"
	PurgeSpec    string // очистка устаревших данных, например "30 3 * * 0"
}

// Scheduler управляет запуском фоновых задач по расписанию
type Scheduler struct {
	cron   *cron.Cron
	jobs   *jobs.JobRunner
	logger Logger
}

func NewScheduler(jobRunner *jobs.JobRunner, cfg Config, logger Logger) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC))

	s := &Scheduler{
		cron:   c,
		jobs:   jobRunner,
		logger: logger,
	}

	s.registerJobs(cfg)
	return s
}

func (s *Scheduler) registerJobs(cfg Config) {
	if _, err := s.cron.AddFunc(cfg.GenerateSpec, s.jobs.GenerateAvailability); err != nil {
		s.logger.Error("Failed to register GenerateAvailability job: spec=%q, error=%v", cfg.GenerateSpec, err)
	}

	if _, err := s.cron.AddFunc(cfg.PurgeSpec, s.jobs.PurgeOldSlots); err != nil {
		s.logger.Error("Failed to register PurgeOldSlots job: spec=%q, error=%v", cfg.PurgeSpec, err)
	}
}

// Start запускает планировщик
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Cron scheduler started: jobs=%d", len(s.cron.Entries()))
}

// Stop останавливает планировщик, дожидаясь завершения запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler stopped")
}
