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

	cancelBookingHandler "github.com/m04kA/TableBookingService/internal/api/handlers/cancel_booking"
	changeBookingStatusHandler "github.com/m04kA/TableBookingService/internal/api/handlers/change_booking_status"
	checkAvailabilityHandler "github.com/m04kA/TableBookingService/internal/api/handlers/check_availability"
	createBlockedSlotHandler "github.com/m04kA/TableBookingService/internal/api/handlers/create_blocked_slot"
	createBookingHandler "github.com/m04kA/TableBookingService/internal/api/handlers/create_booking"
	customerBlacklistHandler "github.com/m04kA/TableBookingService/internal/api/handlers/customer_blacklist"
	deleteBlockedSlotHandler "github.com/m04kA/TableBookingService/internal/api/handlers/delete_blocked_slot"
	getBlockedSlotsHandler "github.com/m04kA/TableBookingService/internal/api/handlers/get_blocked_slots"
	getBookingHandler "github.com/m04kA/TableBookingService/internal/api/handlers/get_booking"
	getBranchBookingsHandler "github.com/m04kA/TableBookingService/internal/api/handlers/get_branch_bookings"
	getLoyaltyHandler "github.com/m04kA/TableBookingService/internal/api/handlers/get_loyalty"
	getUpcomingBookingsHandler "github.com/m04kA/TableBookingService/internal/api/handlers/get_upcoming_bookings"
	mergeCustomersHandler "github.com/m04kA/TableBookingService/internal/api/handlers/merge_customers"
	updateBookingHandler "github.com/m04kA/TableBookingService/internal/api/handlers/update_booking"
	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/config"
	"github.com/m04kA/TableBookingService/internal/infra/cache"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	"github.com/m04kA/TableBookingService/internal/infra/mailer"
	"github.com/m04kA/TableBookingService/internal/infra/scheduler"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
	branchRepo "github.com/m04kA/TableBookingService/internal/infra/storage/branch"
	customerRepo "github.com/m04kA/TableBookingService/internal/infra/storage/customer"
	loyaltyRepo "github.com/m04kA/TableBookingService/internal/infra/storage/loyalty"
	notificationRepo "github.com/m04kA/TableBookingService/internal/infra/storage/notification"
	tableRepo "github.com/m04kA/TableBookingService/internal/infra/storage/table"
	timelineRepo "github.com/m04kA/TableBookingService/internal/infra/storage/timeline"
	waitlistRepo "github.com/m04kA/TableBookingService/internal/infra/storage/waitlist"
	"github.com/m04kA/TableBookingService/internal/integrations/staffservice"
	automationService "github.com/m04kA/TableBookingService/internal/service/automation"
	availabilityService "github.com/m04kA/TableBookingService/internal/service/availability"
	blockedSlotsService "github.com/m04kA/TableBookingService/internal/service/blockedslots"
	"github.com/m04kA/TableBookingService/internal/service/bookingcode"
	bookingsService "github.com/m04kA/TableBookingService/internal/service/bookings"
	calendarService "github.com/m04kA/TableBookingService/internal/service/calendar"
	customersService "github.com/m04kA/TableBookingService/internal/service/customers"
	loyaltyService "github.com/m04kA/TableBookingService/internal/service/loyalty"
	notificationsService "github.com/m04kA/TableBookingService/internal/service/notifications"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	timelineService "github.com/m04kA/TableBookingService/internal/service/timeline"
	autoCancelOverdueUC "github.com/m04kA/TableBookingService/internal/usecase/auto_cancel_overdue"
	checkAvailabilityUC "github.com/m04kA/TableBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/TableBookingService/internal/usecase/create_booking"
	updateBookingUC "github.com/m04kA/TableBookingService/internal/usecase/update_booking"
	"github.com/m04kA/TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/TableBookingService/pkg/logger"
	"github.com/m04kA/TableBookingService/pkg/metrics"
	"github.com/m04kA/TableBookingService/pkg/txmanager"
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

	log.Info("Starting TableBookingService...")

	loc, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}

	// Метрики: при выключенных используется пустая реализация
	var collector metrics.Collector = metrics.Noop{}
	if cfg.Metrics.Enabled {
		collector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, collector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш и распределённые блокировки
	var cacheStore cache.Cache
	switch cfg.Cache.Driver {
	case config.DriverRedis:
		redisCache := cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			cancelPing()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Cache.Addr, err)
		}
		cancelPing()
		cacheStore = redisCache
	default:
		cacheStore = cache.NewMemory()
	}
	log.Info("Cache initialized (driver=%s)", cfg.Cache.Driver)

	// Realtime-события
	var publisher events.Publisher
	switch cfg.Events.Driver {
	case config.DriverKafka:
		publisher = events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)
	default:
		publisher = events.NewMemoryBus()
	}
	log.Info("Event publisher initialized (driver=%s, topic=%s)", cfg.Events.Driver, cfg.Events.Topic)

	// Почта
	var mailSender mailer.Sender
	switch cfg.Mail.Driver {
	case config.DriverSMTP:
		smtpSender, err := mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			FromName: cfg.Mail.FromName,
		})
		if err != nil {
			log.Fatal("Failed to initialize SMTP sender: %v", err)
		}
		mailSender = smtpSender
	default:
		mailSender = mailer.NewLogSender(log)
	}
	log.Info("Mailer initialized (driver=%s)", cfg.Mail.Driver)

	// Планировщик напоминаний и фоновых задач
	jobs, err := scheduler.New(log)
	if err != nil {
		log.Fatal("Failed to initialize scheduler: %v", err)
	}

	// Интеграция со службой сотрудников
	staffClient := staffservice.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	branchRepository := branchRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	loyaltyRepository := loyaltyRepo.NewRepository(wrappedDB)
	tableRepository := tableRepo.NewRepository(wrappedDB)
	timelineRepository := timelineRepo.NewRepository(wrappedDB)
	waitlistRepository := waitlistRepo.NewRepository(wrappedDB)

	var notificationStore notificationsService.NotificationRepository
	if cfg.Notifications.Persist {
		notificationStore = notificationRepo.NewRepository(wrappedDB)
	}

	// Сервисы
	permissions := permission.NewChecker()
	timelineSvc := timelineService.NewService(timelineRepository)
	availabilitySvc := availabilityService.NewService(bookingRepository, branchRepository, cfg.Booking.DefaultDurationMinutes)
	calendarSvc := calendarService.NewService(branchRepository, tableRepository, availabilitySvc, cfg.Booking.DefaultDurationMinutes)
	loyaltySvc := loyaltyService.NewService(loyaltyRepository, customerRepository, timelineSvc, txMgr, log)

	notificationSvc := notificationsService.NewService(notificationsService.Dependencies{
		Repository: notificationStore,
		Cache:      cacheStore,
		Mailer:     mailSender,
		Publisher:  publisher,
		Metrics:    collector,
		Logger:     log,
	}, time.Duration(cfg.Notifications.PreferencesTTLSeconds)*time.Second)

	customerSvc := customersService.NewService(customersService.Dependencies{
		Customers:   customerRepository,
		Bookings:    bookingRepository,
		TimelineDB:  timelineRepository,
		Waitlist:    waitlistRepository,
		Timeline:    timelineSvc,
		Loyalty:     loyaltySvc,
		Permissions: permissions,
		TxManager:   txMgr,
		Logger:      log,
	}, cfg.Booking.TierThreshold)

	automationSvc := automationService.NewService(automationService.Dependencies{
		Calendar:     calendarSvc,
		Availability: availabilitySvc,
		Waitlist:     waitlistRepository,
		Customers:    customerRepository,
		Timeline:     timelineSvc,
		Notifier:     notificationSvc,
		Scheduler:    jobs,
		Publisher:    publisher,
		Logger:       log,
	}, automationService.Settings{
		DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
		AutoConfirmRatio:       cfg.Booking.AutoConfirmRatio,
		Location:               loc,
	})

	bookingSvc := bookingsService.NewService(bookingsService.Dependencies{
		Bookings:    bookingRepository,
		Customers:   customerSvc,
		Loyalty:     loyaltySvc,
		Timeline:    timelineSvc,
		Automation:  automationSvc,
		Notifier:    notificationSvc,
		Permissions: permissions,
		Publisher:   publisher,
		TxManager:   txMgr,
		Metrics:     collector,
		Logger:      log,
	}, loc)

	blockedSlotSvc := blockedSlotsService.NewService(branchRepository, permissions, log)
	codes := bookingcode.NewGenerator(bookingRepository, cfg.Booking.CodeMaxAttempts)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(createBookingUC.Dependencies{
		Bookings:     bookingRepository,
		Tables:       tableRepository,
		Calendar:     calendarSvc,
		Availability: availabilitySvc,
		Customers:    customerSvc,
		Loyalty:      loyaltySvc,
		Automation:   automationSvc,
		Codes:        codes,
		Timeline:     timelineSvc,
		Notifier:     notificationSvc,
		Permissions:  permissions,
		Locker:       cacheStore,
		Publisher:    publisher,
		Metrics:      collector,
		TxManager:    txMgr,
		Logger:       log,
	}, createBookingUC.Settings{
		MaxAdvanceDays:         cfg.Booking.MaxAdvanceDays,
		DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
		LockTTL:                time.Duration(cfg.Booking.LockTTLSeconds) * time.Second,
		LockWait:               time.Duration(cfg.Booking.LockWaitMillis) * time.Millisecond,
		Location:               loc,
	})

	updateBookingUseCase := updateBookingUC.NewUseCase(updateBookingUC.Dependencies{
		Bookings:     bookingRepository,
		Tables:       tableRepository,
		Calendar:     calendarSvc,
		Availability: availabilitySvc,
		Timeline:     timelineSvc,
		Reminders:    automationSvc,
		Permissions:  permissions,
		Publisher:    publisher,
		TxManager:    txMgr,
		Logger:       log,
	}, updateBookingUC.Settings{
		MaxAdvanceDays:         cfg.Booking.MaxAdvanceDays,
		DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
		Location:               loc,
	})

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		branchRepository,
		calendarSvc,
		automationSvc,
		permissions,
		cfg.Booking.MaxAdvanceDays,
		loc,
		log,
	)

	autoCancelOverdueUseCase := autoCancelOverdueUC.NewUseCase(autoCancelOverdueUC.Dependencies{
		Bookings:  bookingRepository,
		Customers: customerSvc,
		Timeline:  timelineSvc,
		Reminders: automationSvc,
		Publisher: publisher,
		Metrics:   collector,
		TxManager: txMgr,
		Logger:    log,
	}, cfg.Booking.AutoCancelGraceMinutes, loc)

	// Фоновый перевод просроченных броней в NO_SHOW
	sweepInterval := time.Duration(cfg.Booking.SweepIntervalSeconds) * time.Second
	err = jobs.Every("auto-cancel-overdue", sweepInterval, func(ctx context.Context) {
		result, err := autoCancelOverdueUseCase.Execute(ctx)
		if err != nil {
			log.Error("Auto-cancel sweep failed: %v", err)
			return
		}
		if len(result.NoShowIDs) > 0 {
			log.Info("Auto-cancel sweep: candidates=%d, no_show=%d", result.Candidates, len(result.NoShowIDs))
		}
	})
	if err != nil {
		log.Fatal("Failed to schedule auto-cancel sweep: %v", err)
	}
	jobs.Start()
	log.Info("Scheduler started (auto-cancel every %s, grace=%dm)", sweepInterval, cfg.Booking.AutoCancelGraceMinutes)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	changeBookingStatus := changeBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBranchBookings := getBranchBookingsHandler.NewHandler(bookingSvc, log)
	getUpcomingBookings := getUpcomingBookingsHandler.NewHandler(bookingSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(blockedSlotSvc, log)
	getBlockedSlots := getBlockedSlotsHandler.NewHandler(blockedSlotSvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(blockedSlotSvc, log)
	customerBlacklist := customerBlacklistHandler.NewHandler(customerSvc, log)
	mergeCustomers := mergeCustomersHandler.NewHandler(customerSvc, log)
	getLoyalty := getLoyaltyHandler.NewHandler(loyaltySvc, permissions, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware(collector))

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header, роль берётся из StaffService)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(staffClient, log))

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/code/{code}", getBooking.HandleByCode).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/history", getBooking.HandleHistory).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", changeBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Филиалы ---
	api.HandleFunc("/branches/{branchId}/bookings", getBranchBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branchId}/bookings/upcoming", getUpcomingBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branchId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branchId}/blocked-slots", getBlockedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branchId}/blocked-slots", createBlockedSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/branches/{branchId}/blocked-slots/{slotId}", deleteBlockedSlot.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	api.HandleFunc("/customers/{customerId}/blacklist", customerBlacklist.HandleAdd).Methods(http.MethodPost)
	api.HandleFunc("/customers/{customerId}/blacklist", customerBlacklist.HandleRemove).Methods(http.MethodDelete)
	api.HandleFunc("/customers/{customerId}/merge", mergeCustomers.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers/{customerId}/loyalty", getLoyalty.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := jobs.Shutdown(); err != nil {
		log.Error("Scheduler shutdown failed: %v", err)
	}

	// Дожидаемся фоновых отправок уведомлений
	notificationSvc.Wait()

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}
	if err := cacheStore.Close(); err != nil {
		log.Error("Failed to close cache: %v", err)
	}

	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
