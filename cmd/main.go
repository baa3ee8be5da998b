package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addSlotHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/add_slot"
	addTemplateHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/add_template"
	bookSlotHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/cancel_booking"
	closeSlotHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/close_slot"
	generateAvailabilityHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/generate_availability"
	listClosedSlotsHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/list_closed_slots"
	listDebtorsHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/list_debtors"
	listFailedVisitsHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/list_failed_visits"
	listSlotsHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/list_slots"
	listTemplatesHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/list_templates"
	markVisitPaidHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/mark_visit_paid"
	purgeOldSlotsHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/purge_old_slots"
	registerFailedVisitHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/register_failed_visit"
	removeTemplateHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/remove_template"
	reopenSlotHandler "github.com/m04kA/SMC-InspectionService/internal/api/handlers/reopen_slot"
	"github.com/m04kA/SMC-InspectionService/internal/api/middleware"
	"github.com/m04kA/SMC-InspectionService/internal/config"
	clientRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/client"
	npvisitRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/npvisit"
	propertyRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/property"
	slotRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/slot"
	templateRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/template"
	"github.com/m04kA/SMC-InspectionService/internal/jobs"
	"github.com/m04kA/SMC-InspectionService/internal/scheduler"
	slotsService "github.com/m04kA/SMC-InspectionService/internal/service/slots"
	templatesService "github.com/m04kA/SMC-InspectionService/internal/service/templates"
	visitsService "github.com/m04kA/SMC-InspectionService/internal/service/visits"
	bookSlotUC "github.com/m04kA/SMC-InspectionService/internal/usecase/book_slot"
	cancelBookingUC "github.com/m04kA/SMC-InspectionService/internal/usecase/cancel_booking"
	closeSlotUC "github.com/m04kA/SMC-InspectionService/internal/usecase/close_slot"
	generateAvailabilityUC "github.com/m04kA/SMC-InspectionService/internal/usecase/generate_availability"
	purgeOldSlotsUC "github.com/m04kA/SMC-InspectionService/internal/usecase/purge_old_slots"
	registerFailedVisitUC "github.com/m04kA/SMC-InspectionService/internal/usecase/register_failed_visit"
	reopenSlotUC "github.com/m04kA/SMC-InspectionService/internal/usecase/reopen_slot"
	"github.com/m04kA/SMC-InspectionService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InspectionService/pkg/logger"
	"github.com/m04kA/SMC-InspectionService/pkg/metrics"
	"github.com/m04kA/SMC-InspectionService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-InspectionService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-InspectionService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository     *slotRepo.Repository
		templateRepository *templateRepo.Repository
		propertyRepository *propertyRepo.Repository
		clientRepository   *clientRepo.Repository
		visitRepository    *npvisitRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		templateRepository = templateRepo.NewRepository(wrappedDB)
		propertyRepository = propertyRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		visitRepository = npvisitRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		templateRepository = templateRepo.NewRepository(db)
		propertyRepository = propertyRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		visitRepository = npvisitRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, log)
	templatesSvc := templatesService.NewService(templateRepository, log)
	visitsSvc := visitsService.NewService(visitRepository, clientRepository, log)

	// Инициализируем use cases
	generateAvailabilityUseCase := generateAvailabilityUC.NewUseCase(
		templateRepository,
		slotRepository,
		txMgr,
		log,
	)

	bookSlotUseCase := bookSlotUC.NewUseCase(
		slotRepository,
		propertyRepository,
		txMgr,
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		slotRepository,
		propertyRepository,
		txMgr,
		log,
	)

	closeSlotUseCase := closeSlotUC.NewUseCase(slotRepository, txMgr, log)
	reopenSlotUseCase := reopenSlotUC.NewUseCase(slotRepository, txMgr, log)

	registerFailedVisitUseCase := registerFailedVisitUC.NewUseCase(
		slotRepository,
		propertyRepository,
		clientRepository,
		visitRepository,
		txMgr,
		log,
	)

	purgeOldSlotsUseCase := purgeOldSlotsUC.NewUseCase(
		slotRepository,
		propertyRepository,
		clientRepository,
		visitRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	generateAvailability := generateAvailabilityHandler.NewHandler(generateAvailabilityUseCase, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	addSlot := addSlotHandler.NewHandler(slotsSvc, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	closeSlot := closeSlotHandler.NewHandler(closeSlotUseCase, log)
	reopenSlot := reopenSlotHandler.NewHandler(reopenSlotUseCase, log)
	listClosedSlots := listClosedSlotsHandler.NewHandler(slotsSvc, log)
	registerFailedVisit := registerFailedVisitHandler.NewHandler(registerFailedVisitUseCase, log)
	listFailedVisits := listFailedVisitsHandler.NewHandler(visitsSvc, log)
	markVisitPaid := markVisitPaidHandler.NewHandler(visitsSvc, log)
	listDebtors := listDebtorsHandler.NewHandler(visitsSvc, log)
	addTemplate := addTemplateHandler.NewHandler(templatesSvc, generateAvailabilityUseCase, log)
	removeTemplate := removeTemplateHandler.NewHandler(templatesSvc, log)
	listTemplates := listTemplatesHandler.NewHandler(templatesSvc, log)
	purgeOldSlots := purgeOldSlotsHandler.NewHandler(purgeOldSlotsUseCase, log)

	// Фоновые задачи: генерация расписания и очистка устаревших данных
	jobRunner := jobs.NewJobRunner(
		generateAvailabilityUseCase,
		purgeOldSlotsUseCase,
		cfg.Scheduler.HorizonWeeks,
		cfg.Scheduler.RetentionMonths,
		log,
	)

	// Актуализируем расписание при старте, не дожидаясь планировщика
	jobRunner.RunStartupJobs()

	var cronScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		cronScheduler = scheduler.NewScheduler(jobRunner, scheduler.Config{
			GenerateSpec: cfg.Scheduler.GenerateSpec,
			PurgeSpec:    cfg.Scheduler.PurgeSpec,
		}, log)
		cronScheduler.Start()
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание слотов с фильтрами
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Закрытые слоты специалиста с причинами
	api.HandleFunc("/inspectors/{inspectorId}/closed-slots",
		listClosedSlots.Handle).Methods(http.MethodGet)

	// Недельный шаблон специалиста
	api.HandleFunc("/inspectors/{inspectorId}/templates",
		listTemplates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты ---
	// Ручное добавление слота
	protected.HandleFunc("/slots", addSlot.Handle).Methods(http.MethodPost)

	// Бронирование слота под осмотр
	protected.HandleFunc("/slots/{slotId}/book", bookSlot.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/slots/{slotId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Закрытие слота с причиной
	protected.HandleFunc("/slots/{slotId}/close", closeSlot.Handle).Methods(http.MethodPost)

	// Возврат закрытого слота в свободный статус
	protected.HandleFunc("/slots/{slotId}/reopen", reopenSlot.Handle).Methods(http.MethodPost)

	// Регистрация несостоявшегося осмотра
	protected.HandleFunc("/slots/{slotId}/failed-visit",
		registerFailedVisit.Handle).Methods(http.MethodPost)

	// --- Несостоявшиеся осмотры и долги ---
	protected.HandleFunc("/failed-visits", listFailedVisits.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/failed-visits/{visitId}/paid", markVisitPaid.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/debtors", listDebtors.Handle).Methods(http.MethodGet)

	// --- Шаблоны расписания ---
	protected.HandleFunc("/templates", addTemplate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/templates/{templateId}", removeTemplate.Handle).Methods(http.MethodDelete)

	// --- Обслуживание ---
	// Генерация расписания по шаблонам
	protected.HandleFunc("/availability/generate", generateAvailability.Handle).Methods(http.MethodPost)

	// Очистка устаревших данных
	protected.HandleFunc("/maintenance/purge", purgeOldSlots.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем планировщик
	if cronScheduler != nil {
		cronScheduler.Stop()
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
