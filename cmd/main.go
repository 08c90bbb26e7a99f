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

	cancelBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/export_bookings"
	getAuditLogHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_audit_log"
	getAvailableSlotsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_booking"
	getVenueBookingsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_venue_bookings"
	getVenueConfigHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_venue_config"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/config"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	auditRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/audit"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/jsonfile"
	bookingsService "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	reportsService "github.com/m04kA/SMC-VenueBookingService/internal/service/reports"
	"github.com/m04kA/SMC-VenueBookingService/internal/store"
	createBookingUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-VenueBookingService/internal/venues"
	"github.com/m04kA/SMC-VenueBookingService/pkg/logger"
	"github.com/m04kA/SMC-VenueBookingService/pkg/metrics"
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

	log.Info("Starting SMC-VenueBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем долговременное хранилище по выбранному бэкенду
	var (
		persister store.BookingPersister
		auditLog  store.AuditStorage
	)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
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

		persister = bookingRepo.NewRepository(db)
		auditLog = auditRepo.NewRepository(db)

	case config.BackendJSONFile:
		persister = jsonfile.NewBookingStorage(cfg.Storage.BookingsFile)
		auditLog = jsonfile.NewAuditStorage(cfg.Storage.AuditFile)
		log.Info("Using jsonfile storage (bookings=%s, audit=%s)",
			cfg.Storage.BookingsFile, cfg.Storage.AuditFile)
	}

	// Инициализируем хранилище бронирований и поднимаем состояние в память
	reservationStore := store.New(persister, auditLog, log)
	if err := reservationStore.Load(context.Background()); err != nil {
		log.Fatal("Failed to load bookings into memory: %v", err)
	}

	// Загружаем справочник площадок
	var venueRegistry *venues.Registry
	if cfg.Venues.File != "" {
		venueRegistry, err = venues.LoadFromFile(cfg.Venues.File)
		if err != nil {
			log.Fatal("Failed to load venues from %s: %v", cfg.Venues.File, err)
		}
		log.Info("Venues loaded from %s", cfg.Venues.File)
	} else {
		venueRegistry, err = venues.NewRegistry(venues.Defaults())
		if err != nil {
			log.Fatal("Failed to build default venue registry: %v", err)
		}
		log.Info("Using built-in venue registry")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(reservationStore, log)
	reportsSvc := reportsService.NewService(reservationStore, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(reservationStore, venueRegistry, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reservationStore, venueRegistry, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log, false)
	adminCreateBooking := createBookingHandler.NewHandler(createBookingUseCase, log, true)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log, domain.CancelledByUser)
	adminCancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log, domain.CancelledByAdmin)
	getVenueConfig := getVenueConfigHandler.NewHandler(venueRegistry, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(reportsSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(reportsSvc, log)
	getAuditLog := getAuditLogHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник площадок
	api.HandleFunc("/venues", getVenueConfig.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenueConfig.Handle).Methods(http.MethodGet)

	// Занятость площадки на дату
	api.HandleFunc("/venues/{venueId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования (площадки с admin_only недоступны)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования бронирующим (личность по контактным данным)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// Список бронирований с фильтрами и агрегатами
	admin.HandleFunc("/bookings", getVenueBookings.Handle).Methods(http.MethodGet)

	// Создание бронирования, включая площадки с admin_only
	admin.HandleFunc("/bookings", adminCreateBooking.Handle).Methods(http.MethodPost)

	// Выгрузка бронирований (json или csv)
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)

	// Отмена бронирования администратором
	admin.HandleFunc("/bookings/{bookingId}/cancel", adminCancelBooking.Handle).Methods(http.MethodPatch)

	// Журнал операций
	admin.HandleFunc("/audit-log", getAuditLog.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
