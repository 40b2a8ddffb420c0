package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calculateQuoteHandler "github.com/hawkinspro/HPM-QuoteService/internal/api/handlers/calculate_quote"
	createBookingHandler "github.com/hawkinspro/HPM-QuoteService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/hawkinspro/HPM-QuoteService/internal/api/handlers/get_available_slots"
	getBusinessConfigHandler "github.com/hawkinspro/HPM-QuoteService/internal/api/handlers/get_business_config"
	"github.com/hawkinspro/HPM-QuoteService/internal/api/middleware"
	"github.com/hawkinspro/HPM-QuoteService/internal/config"
	"github.com/hawkinspro/HPM-QuoteService/internal/integrations/gcalendar"
	calculateQuoteUC "github.com/hawkinspro/HPM-QuoteService/internal/usecase/calculate_quote"
	createBookingUC "github.com/hawkinspro/HPM-QuoteService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/hawkinspro/HPM-QuoteService/internal/usecase/get_available_slots"
	"github.com/hawkinspro/HPM-QuoteService/pkg/logger"
	"github.com/hawkinspro/HPM-QuoteService/pkg/metrics"
)

func main() {
	// Load configuration. Scheduling values (hours, buffer, duration) are
	// validated here; the engine never re-checks them mid-scan.
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HPM-QuoteService...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Build the immutable business calendar and tax table
	businessCalendar, err := cfg.BusinessCalendar()
	if err != nil {
		log.Fatal("Failed to build business calendar: %v", err)
	}
	taxTable := cfg.TaxTable()
	log.Info("Business calendar loaded (timezone=%s, default_duration=%dmin, default_buffer=%dmin, blackout_dates=%d)",
		businessCalendar.Location, businessCalendar.DefaultJobDurationMinutes,
		businessCalendar.DefaultBufferMinutes, len(businessCalendar.BlackoutDates))

	// Initialize the Google Calendar client (busy-interval source + event sink)
	var calendarMetrics gcalendar.MetricsRecorder
	if cfg.Metrics.Enabled {
		calendarMetrics = metricsCollector
	}
	calendarClient, err := gcalendar.NewClient(
		context.Background(),
		cfg.Calendar.CalendarID,
		cfg.Calendar.TokenFile,
		cfg.Business.Timezone,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
		calendarMetrics,
	)
	if err != nil {
		log.Fatal("Failed to initialize calendar client: %v", err)
	}
	log.Info("Calendar client initialized (calendar_id=%s, timeout=%ds)",
		cfg.Calendar.CalendarID, cfg.Calendar.Timeout)

	// Initialize use cases
	calculateQuoteUseCase := calculateQuoteUC.NewUseCase(taxTable, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(businessCalendar, calendarClient, log)
	createBookingUseCase := createBookingUC.NewUseCase(businessCalendar, calendarClient, calendarClient, log)

	// Initialize handlers
	var quoteMetrics calculateQuoteHandler.MetricsRecorder
	var slotsMetrics getAvailableSlotsHandler.MetricsRecorder
	if cfg.Metrics.Enabled {
		quoteMetrics = metricsCollector
		slotsMetrics = metricsCollector
	}
	calculateQuote := calculateQuoteHandler.NewHandler(calculateQuoteUseCase, log, quoteMetrics)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log, slotsMetrics)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBusinessConfig := getBusinessConfigHandler.NewHandler(businessCalendar, log)

	// Set up router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Quote calculation
	api.HandleFunc("/quotes", calculateQuote.Handle).Methods(http.MethodPost)

	// Availability
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Booking creation (optimistic re-validation + calendar event)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Public scheduling configuration
	api.HandleFunc("/business-config", getBusinessConfig.Handle).Methods(http.MethodGet)

	// Create HTTP server
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

	log.Info("Server stopped gracefully")
}
