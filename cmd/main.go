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
	"github.com/redis/go-redis/v9"

	addEnrollmentHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/add_enrollment"
	cancelRescheduleHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/cancel_reschedule"
	checkLinkedConflictHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/check_linked_conflict"
	commitImportHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/commit_import"
	createFixedSlotHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/create_fixed_slot"
	createRescheduleHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/create_reschedule"
	createStudentHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/create_student"
	createTrialBookingHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/create_trial_booking"
	finalizeSessionHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/finalize_session"
	getMakeupsHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/get_makeups"
	getOccupancyHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/get_occupancy"
	getWeekGridHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/get_week_grid"
	matchStudentHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/match_student"
	previewImportHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/preview_import"
	removeEnrollmentHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/remove_enrollment"
	reviewRescheduleHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/review_reschedule"
	setStudentStatusHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/set_student_status"
	toggleSlotBlockHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/toggle_slot_block"
	updateTrialStatusHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/update_trial_status"
	useCreditHandler "github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/use_credit"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-StudioSchedule/internal/config"
	bookingRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/booking"
	classTypeRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/classtype"
	fixedSlotRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/fixedslot"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/lock"
	rescheduleRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/reschedule"
	sessionRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/session"
	studentRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/student"
	"github.com/m04kA/SMC-StudioSchedule/internal/integrations/holidays"
	enrollmentsService "github.com/m04kA/SMC-StudioSchedule/internal/service/enrollments"
	sessionsService "github.com/m04kA/SMC-StudioSchedule/internal/service/sessions"
	slotBlocksService "github.com/m04kA/SMC-StudioSchedule/internal/service/slotblocks"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/snapshot"
	studentsService "github.com/m04kA/SMC-StudioSchedule/internal/service/students"
	trialsService "github.com/m04kA/SMC-StudioSchedule/internal/service/trials"
	buildWeekGridUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/build_week_grid"
	cancelRescheduleUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/cancel_reschedule"
	checkLinkedConflictUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/check_linked_conflict"
	createFixedSlotUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_fixed_slot"
	createRescheduleUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_reschedule"
	createTrialBookingUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_trial_booking"
	getMakeupStatusUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/get_makeup_status"
	importStudentsUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
	resolveOccupancyUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/resolve_occupancy"
	reviewRescheduleUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/review_reschedule"
	useCreditUC "github.com/m04kA/SMC-StudioSchedule/internal/usecase/use_credit"
	"github.com/m04kA/SMC-StudioSchedule/migrations"
	"github.com/m04kA/SMC-StudioSchedule/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/metrics"
	"github.com/m04kA/SMC-StudioSchedule/pkg/txmanager"
)

// studioClock текущее время в часовом поясе студии
type studioClock struct {
	loc *time.Location
}

func (c studioClock) Now() time.Time {
	return time.Now().In(c.loc)
}

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

	log.Info("Starting SMC-StudioSchedule...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if cfg.Database.Migrate {
		if err := migrations.Up(context.Background(), db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Без метрик обёртка только передает запросы в *sql.DB
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	classTypeRepository := classTypeRepo.NewRepository(wrappedDB)
	fixedSlotRepository := fixedSlotRepo.NewRepository(wrappedDB)
	studentRepository := studentRepo.NewRepository(wrappedDB)
	rescheduleRepository := rescheduleRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	sessionRepository := sessionRepo.NewRepository(wrappedDB)
	locker := lock.NewLocker(wrappedDB)

	// Источники праздников: собственные из конфига, внешний календарь (через redis кеш)
	holidayProviders := []holidays.Provider{holidays.NewStatic(cfg.Holidays.CustomHolidays())}
	if cfg.Holidays.URL != "" {
		var calendar holidays.Provider = holidays.NewClient(cfg.Holidays.URL, cfg.Holidays.TimeoutDuration(), log)
		if cfg.Redis.Addr != "" {
			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer redisClient.Close()
			calendar = holidays.NewCache(calendar, redisClient, cfg.Holidays.CacheTTLDuration(), log)
			log.Info("Holiday cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Holidays.CacheTTLDuration())
		}
		holidayProviders = append(holidayProviders, calendar)
		log.Info("Holiday calendar client initialized (url=%s)", cfg.Holidays.URL)
	}
	holidayProvider := holidays.NewComposite(log, holidayProviders...)

	loader := snapshot.NewLoader(snapshot.Repositories{
		ClassTypes:  classTypeRepository,
		FixedSlots:  fixedSlotRepository,
		Students:    studentRepository,
		Reschedules: rescheduleRepository,
		Bookings:    bookingRepository,
		Sessions:    sessionRepository,
	}, holidayProvider, cfg.Holidays.Policy(), log)

	clock := studioClock{loc: cfg.Schedule.Location()}

	// Инициализируем сервисы
	enrollmentSvc := enrollmentsService.NewService(
		fixedSlotRepository,
		classTypeRepository,
		studentRepository,
		txMgr,
		metricsCollector,
		log,
	)
	studentSvc := studentsService.NewService(studentRepository, log)
	slotBlockSvc := slotBlocksService.NewService(classTypeRepository, log)
	sessionSvc := sessionsService.NewService(sessionRepository, loader, locker, txMgr, log).WithTimeProvider(clock)
	trialSvc := trialsService.NewService(bookingRepository, txMgr, log).WithTimeProvider(clock)

	// Инициализируем use cases
	resolveOccupancyUseCase := resolveOccupancyUC.NewUseCase(loader, txMgr, log)
	buildWeekGridUseCase := buildWeekGridUC.NewUseCase(loader, txMgr, log).WithTimeProvider(clock)
	checkLinkedConflictUseCase := checkLinkedConflictUC.NewUseCase(loader, txMgr, log)
	getMakeupStatusUseCase := getMakeupStatusUC.NewUseCase(loader, txMgr, log).WithTimeProvider(clock)
	createFixedSlotUseCase := createFixedSlotUC.NewUseCase(fixedSlotRepository, loader, txMgr, log)

	createRescheduleUseCase := createRescheduleUC.NewUseCase(
		rescheduleRepository,
		loader,
		locker,
		txMgr,
		metricsCollector,
		log,
	).WithTimeProvider(clock)

	reviewRescheduleUseCase := reviewRescheduleUC.NewUseCase(
		rescheduleRepository,
		loader,
		locker,
		txMgr,
		metricsCollector,
		log,
	).WithTimeProvider(clock)

	cancelRescheduleUseCase := cancelRescheduleUC.NewUseCase(
		rescheduleRepository,
		sessionRepository,
		loader,
		locker,
		txMgr,
		metricsCollector,
		log,
	).WithTimeProvider(clock)

	createTrialBookingUseCase := createTrialBookingUC.NewUseCase(
		bookingRepository,
		loader,
		locker,
		txMgr,
		metricsCollector,
		log,
	).WithTimeProvider(clock)

	useCreditUseCase := useCreditUC.NewUseCase(
		bookingRepository,
		loader,
		locker,
		txMgr,
		metricsCollector,
		log,
	).WithTimeProvider(clock)

	importStudentsUseCase := importStudentsUC.NewUseCase(
		studentRepository,
		enrollmentSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getOccupancy := getOccupancyHandler.NewHandler(resolveOccupancyUseCase, log)
	getWeekGrid := getWeekGridHandler.NewHandler(buildWeekGridUseCase, log)
	checkLinkedConflict := checkLinkedConflictHandler.NewHandler(checkLinkedConflictUseCase, log)
	matchStudent := matchStudentHandler.NewHandler(studentSvc, log)
	getMakeups := getMakeupsHandler.NewHandler(getMakeupStatusUseCase, log)

	createReschedule := createRescheduleHandler.NewHandler(createRescheduleUseCase, log)
	approveReschedule := reviewRescheduleHandler.NewHandler(reviewRescheduleUseCase, reviewRescheduleUC.ActionApprove, log)
	rejectReschedule := reviewRescheduleHandler.NewHandler(reviewRescheduleUseCase, reviewRescheduleUC.ActionReject, log)
	cancelReschedule := cancelRescheduleHandler.NewHandler(cancelRescheduleUseCase, log)
	createTrialBooking := createTrialBookingHandler.NewHandler(createTrialBookingUseCase, log)
	updateTrialStatus := updateTrialStatusHandler.NewHandler(trialSvc, log)
	useCredit := useCreditHandler.NewHandler(useCreditUseCase, log)
	createFixedSlot := createFixedSlotHandler.NewHandler(createFixedSlotUseCase, log)
	toggleSlotBlock := toggleSlotBlockHandler.NewHandler(slotBlockSvc, log)
	addEnrollment := addEnrollmentHandler.NewHandler(enrollmentSvc, log)
	removeEnrollment := removeEnrollmentHandler.NewHandler(enrollmentSvc, log)
	createStudent := createStudentHandler.NewHandler(studentSvc, log)
	setStudentStatus := setStudentStatusHandler.NewHandler(studentSvc, log)
	finalizeSession := finalizeSessionHandler.NewHandler(sessionSvc, log)
	previewImport := previewImportHandler.NewHandler(importStudentsUseCase, log)
	commitImport := commitImportHandler.NewHandler(importStudentsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Занятость конкретного занятия
	api.HandleFunc("/slots/{slotId}/occupancy", getOccupancy.Handle).Methods(http.MethodGet)

	// Недельная сетка вида занятий
	api.HandleFunc("/class-types/{classTypeId}/grid", getWeekGrid.Handle).Methods(http.MethodGet)

	// Проверка связанного вида занятий на пересечение
	api.HandleFunc("/class-types/{classTypeId}/linked-conflict", checkLinkedConflict.Handle).Methods(http.MethodGet)

	// Поиск ученика по имени
	api.HandleFunc("/students/match", matchStudent.Handle).Methods(http.MethodPost)

	// Отработки ученика и группы
	api.HandleFunc("/students/{studentId}/makeups", getMakeups.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}/makeups", getMakeups.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Переносы ---
	protected.HandleFunc("/reschedules", createReschedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reschedules/{id}/approve", approveReschedule.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reschedules/{id}/reject", rejectReschedule.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reschedules/{id}/cancel", cancelReschedule.Handle).Methods(http.MethodPatch)

	// --- Пробные занятия и разовые кредиты ---
	protected.HandleFunc("/trial-bookings", createTrialBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/trial-bookings/{id}/status", updateTrialStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/credit-usages", useCredit.Handle).Methods(http.MethodPost)

	// --- Расписание (для персонала) ---
	protected.HandleFunc("/class-types/{classTypeId}/slots", createFixedSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/class-types/{classTypeId}/blocks/toggle", toggleSlotBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}/enrollments", addEnrollment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/enrollments/{enrollmentId}", removeEnrollment.Handle).Methods(http.MethodDelete)

	// --- Ученики ---
	protected.HandleFunc("/students", createStudent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/students/{studentId}/status", setStudentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/imports/students/preview", previewImport.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/imports/students/commit", commitImport.Handle).Methods(http.MethodPost)

	// --- Посещаемость ---
	protected.HandleFunc("/sessions", finalizeSession.Handle).Methods(http.MethodPost)

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
