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

	bulkTransitionHandler "github.com/akoncore/BookingSystem/internal/api/handlers/bulk_transition"
	cancelBookingHandler "github.com/akoncore/BookingSystem/internal/api/handlers/cancel_booking"
	cancellationPreviewHandler "github.com/akoncore/BookingSystem/internal/api/handlers/cancellation_preview"
	completeBookingHandler "github.com/akoncore/BookingSystem/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/akoncore/BookingSystem/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/akoncore/BookingSystem/internal/api/handlers/create_booking"
	createJobRequestHandler "github.com/akoncore/BookingSystem/internal/api/handlers/create_job_request"
	deleteBookingHandler "github.com/akoncore/BookingSystem/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/akoncore/BookingSystem/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/akoncore/BookingSystem/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/akoncore/BookingSystem/internal/api/handlers/get_client_bookings"
	getMasterBookingsHandler "github.com/akoncore/BookingSystem/internal/api/handlers/get_master_bookings"
	getScheduleHandler "github.com/akoncore/BookingSystem/internal/api/handlers/get_schedule"
	masterBalanceHandler "github.com/akoncore/BookingSystem/internal/api/handlers/master_balance"
	reviewJobRequestHandler "github.com/akoncore/BookingSystem/internal/api/handlers/review_job_request"
	salonBalanceHandler "github.com/akoncore/BookingSystem/internal/api/handlers/salon_balance"
	upsertScheduleHandler "github.com/akoncore/BookingSystem/internal/api/handlers/upsert_schedule"
	"github.com/akoncore/BookingSystem/internal/api/middleware"
	"github.com/akoncore/BookingSystem/internal/config"
	bookingRepo "github.com/akoncore/BookingSystem/internal/infra/storage/booking"
	jobRequestRepo "github.com/akoncore/BookingSystem/internal/infra/storage/jobrequest"
	scheduleRepo "github.com/akoncore/BookingSystem/internal/infra/storage/schedule"
	directoryClient "github.com/akoncore/BookingSystem/internal/integrations/directory"
	notifierClient "github.com/akoncore/BookingSystem/internal/integrations/notifier"
	paymentsClient "github.com/akoncore/BookingSystem/internal/integrations/payments"
	bookingsService "github.com/akoncore/BookingSystem/internal/service/bookings"
	jobRequestsService "github.com/akoncore/BookingSystem/internal/service/jobrequests"
	paymentsService "github.com/akoncore/BookingSystem/internal/service/payments"
	scheduleService "github.com/akoncore/BookingSystem/internal/service/schedule"
	createBookingUC "github.com/akoncore/BookingSystem/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/akoncore/BookingSystem/internal/usecase/get_available_slots"
	"github.com/akoncore/BookingSystem/pkg/dbmetrics"
	"github.com/akoncore/BookingSystem/pkg/logger"
	"github.com/akoncore/BookingSystem/pkg/metrics"
	"github.com/akoncore/BookingSystem/pkg/simpletxmanager"
	"github.com/akoncore/BookingSystem/pkg/txmanager"
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

	log.Info("Starting BookingSystem...")

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	directory := directoryClient.NewClient(
		cfg.Directory.URL,
		time.Duration(cfg.Directory.Timeout)*time.Second,
		log,
	)
	notifier := notifierClient.NewClient(
		cfg.Notification.URL,
		time.Duration(cfg.Notification.Timeout)*time.Second,
		log,
	)
	payments := paymentsClient.NewClient(
		cfg.Payment.URL,
		time.Duration(cfg.Payment.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (directory=%s, notifications=%s, payments=%s)",
		cfg.Directory.URL, cfg.Notification.URL, cfg.Payment.URL)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		scheduleRepository   *scheduleRepo.Repository
		jobRequestRepository *jobRequestRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		jobRequestRepository = jobRequestRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		jobRequestRepository = jobRequestRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	paymentSvc := paymentsService.NewService(bookingRepository, cfg.Policy, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		paymentSvc,
		payments,
		notifier,
		log,
	)
	jobRequestSvc := jobRequestsService.NewService(
		jobRequestRepository,
		directory,
		notifier,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleSvc,
		directory,
		notifier,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	cancellationPreview := cancellationPreviewHandler.NewHandler(bookingSvc, log)
	bulkTransition := bulkTransitionHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getMasterBookings := getMasterBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	upsertSchedule := upsertScheduleHandler.NewHandler(scheduleSvc, log)
	masterBalance := masterBalanceHandler.NewHandler(paymentSvc, log)
	salonBalance := salonBalanceHandler.NewHandler(paymentSvc, log)
	createJobRequest := createJobRequestHandler.NewHandler(jobRequestSvc, log)
	reviewJobRequest := reviewJobRequestHandler.NewHandler(jobRequestSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты (без аутентификации)
	api.HandleFunc("/masters/{masterId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/masters/{masterId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Маршруты, требующие X-User-ID и X-User-Role
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Жизненный цикл бронирований
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/bulk/{action}", bulkTransition.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/complete", completeBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/cancellation-preview", cancellationPreview.Handle).Methods(http.MethodGet)

	// Списки бронирований
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/masters/{masterId}/bookings", getMasterBookings.Handle).Methods(http.MethodGet)

	// Расписание мастера
	protected.HandleFunc("/masters/{masterId}/schedule", upsertSchedule.Handle).Methods(http.MethodPut)

	// Балансы
	protected.HandleFunc("/masters/{masterId}/balance", masterBalance.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/balance", salonBalance.Handle).Methods(http.MethodGet)

	// Заявки мастеров
	protected.HandleFunc("/job-requests", createJobRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/job-requests/{id}/review", reviewJobRequest.Handle).Methods(http.MethodPost)

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
