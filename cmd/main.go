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

	cancelBookingHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/cancel_booking"
	checkConflictsHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/check_conflicts"
	createBookingHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/get_booking"
	getBusinessHoursHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/get_business_hours"
	getCustomerBookingsHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/get_customer_bookings"
	listServicesHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/list_services"
	updateBookingStatusHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/update_booking_status"
	updateBusinessHoursHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/update_business_hours"
	validateRecurrenceHandler "github.com/jtmanningm/ezbiz-booking/internal/api/handlers/validate_recurrence"
	"github.com/jtmanningm/ezbiz-booking/internal/api/middleware"
	"github.com/jtmanningm/ezbiz-booking/internal/config"
	bookingRepo "github.com/jtmanningm/ezbiz-booking/internal/infra/storage/booking"
	catalogRepo "github.com/jtmanningm/ezbiz-booking/internal/infra/storage/catalog"
	hoursRepo "github.com/jtmanningm/ezbiz-booking/internal/infra/storage/hours"
	messagingClient "github.com/jtmanningm/ezbiz-booking/internal/integrations/messaging"
	bookingsService "github.com/jtmanningm/ezbiz-booking/internal/service/bookings"
	calendarService "github.com/jtmanningm/ezbiz-booking/internal/service/calendar"
	catalogService "github.com/jtmanningm/ezbiz-booking/internal/service/catalog"
	checkConflictsUC "github.com/jtmanningm/ezbiz-booking/internal/usecase/check_conflicts"
	createBookingUC "github.com/jtmanningm/ezbiz-booking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/jtmanningm/ezbiz-booking/internal/usecase/get_available_slots"
	validateRecurrenceUC "github.com/jtmanningm/ezbiz-booking/internal/usecase/validate_recurrence"
	"github.com/jtmanningm/ezbiz-booking/pkg/dbmetrics"
	"github.com/jtmanningm/ezbiz-booking/pkg/logger"
	"github.com/jtmanningm/ezbiz-booking/pkg/metrics"
	"github.com/jtmanningm/ezbiz-booking/pkg/simpletxmanager"
	"github.com/jtmanningm/ezbiz-booking/pkg/txmanager"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ezbiz-booking...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Confirmation gateway is optional; bookings are created without
	// notifications when it is disabled.
	var confirmationSender createBookingUC.ConfirmationSender
	if cfg.Messaging.Enabled {
		confirmationSender = messagingClient.NewClient(
			cfg.Messaging.URL,
			time.Duration(cfg.Messaging.Timeout)*time.Second,
			log,
		)
		log.Info("Messaging gateway client initialized (url=%s timeout=%ds)",
			cfg.Messaging.URL, cfg.Messaging.Timeout)
	} else {
		log.Warn("Messaging gateway disabled, booking confirmations will not be sent")
	}

	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
		hoursRepository   *hoursRepo.Repository
		txMgr             createBookingUC.TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		hoursRepository = hoursRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		hoursRepository = hoursRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	catalogSvc := catalogService.NewService(catalogRepository, log)
	calendarSvc := calendarService.NewService(hoursRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	checkConflictsUseCase := checkConflictsUC.NewUseCase(
		catalogSvc,
		calendarSvc,
		bookingRepository,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		checkConflictsUseCase,
		catalogSvc,
		calendarSvc,
		log,
	)
	validateRecurrenceUseCase := validateRecurrenceUC.NewUseCase(
		checkConflictsUseCase,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		checkConflictsUseCase,
		catalogSvc,
		bookingRepository,
		txMgr,
		confirmationSender,
		log,
	)

	checkConflicts := checkConflictsHandler.NewHandler(checkConflictsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	validateRecurrence := validateRecurrenceHandler.NewHandler(validateRecurrenceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingsSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(calendarSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(calendarSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)

	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: availability lookups and the service picker.
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkConflicts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/recurrence", validateRecurrence.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business/hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// Protected routes require the X-User-ID header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/business/hours", updateBusinessHours.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
