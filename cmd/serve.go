package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	changeBookingStatusHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/change_booking_status"
	createBookingHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/create_booking"
	editBookingHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/edit_booking"
	getBookingHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/get_booking"
	getRateTableHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/get_rate_table"
	getSubjectBookingsHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/get_subject_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/health"
	joinGroupHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/join_group"
	quoteItemHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/quote_item"
	quoteRentalHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/quote_rental"
	setBookingPriceHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/set_booking_price"
	submitBookingHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/submit_booking"
	upsertRateTableHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/upsert_rate_table"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/catalog"
	rateTableRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/ratetable"
	"github.com/m04kA/SMC-TravelBooking/internal/integrations/notifier"
	userServiceClient "github.com/m04kA/SMC-TravelBooking/internal/integrations/userservice"
	bookingsService "github.com/m04kA/SMC-TravelBooking/internal/service/bookings"
	quotesService "github.com/m04kA/SMC-TravelBooking/internal/service/quotes"
	rateTablesService "github.com/m04kA/SMC-TravelBooking/internal/service/ratetables"
	"github.com/m04kA/SMC-TravelBooking/internal/sharing"
	createBookingUC "github.com/m04kA/SMC-TravelBooking/internal/usecase/create_booking"
	joinGroupUC "github.com/m04kA/SMC-TravelBooking/internal/usecase/join_group"
	loadBookingUC "github.com/m04kA/SMC-TravelBooking/internal/usecase/load_booking"
	quoteRentalUC "github.com/m04kA/SMC-TravelBooking/internal/usecase/quote_rental"
	submitBookingUC "github.com/m04kA/SMC-TravelBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
	"github.com/m04kA/SMC-TravelBooking/pkg/metrics"
	"github.com/m04kA/SMC-TravelBooking/pkg/txmanager"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-TravelBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close(log)

	// Инициализируем репозитории
	txMgr := txmanager.New(st.db)
	rateTableRepository := rateTableRepo.NewRepository(st.db, txMgr)
	catalogRepository := catalogRepo.NewRepository(st.gormDB)
	bookingRepository := bookingRepo.NewRepository(st.bookings, cfg.Mongo.Collection)

	if err := bookingRepository.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure booking indexes: %w", err)
	}

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)

	var sender notifier.Sender
	if cfg.Notifier.Enabled {
		gmailSender, err := notifier.NewGmailSender(ctx, notifier.GmailConfig{
			ClientID:     cfg.Notifier.GmailClientID,
			ClientSecret: cfg.Notifier.GmailClientSecret,
			RefreshToken: cfg.Notifier.GmailRefreshToken,
			From:         cfg.Notifier.SenderEmail,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize gmail sender: %w", err)
		}
		sender = gmailSender
		log.Info("Confirmation e-mails enabled (from=%s)", cfg.Notifier.SenderEmail)
	}
	confirmations := notifier.New(sender, log).WithTimeout(time.Duration(cfg.Notifier.Timeout) * time.Second)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, cfg.Admin, log)
	rateTableSvc := rateTablesService.NewService(rateTableRepository, catalogRepository, cfg.Admin, log)
	quoteSvc := quotesService.NewService(catalogRepository, cfg.Pricing.ChildDiscount(), log)

	// Инициализируем use cases
	loadBookingUseCase := loadBookingUC.NewUseCase(bookingRepository, catalogRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		rateTableRepository,
		sharing.UUIDs{},
		log,
	)

	submitBookingUseCase := submitBookingUC.NewUseCase(
		loadBookingUseCase,
		bookingRepository,
		sharing.NewMinter(sharing.RandomTokens{}, sharing.UUIDs{}),
		confirmations,
		metricsCollector,
		submitBookingUC.Settings{
			PublicBaseURL: cfg.Sharing.PublicBaseURL,
			AgencyPhone:   cfg.Notifier.AgencyPhone,
		},
		log,
	)

	joinGroupUseCase := joinGroupUC.NewUseCase(bookingRepository, userClient, metricsCollector, log)
	quoteRentalUseCase := quoteRentalUC.NewUseCase(rateTableRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	editBooking := editBookingHandler.NewHandler(loadBookingUseCase, cfg.Admin, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	changeBookingStatus := changeBookingStatusHandler.NewHandler(bookingSvc, log)
	setBookingPrice := setBookingPriceHandler.NewHandler(bookingSvc, log)
	joinGroup := joinGroupHandler.NewHandler(joinGroupUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSubjectBookings := getSubjectBookingsHandler.NewHandler(bookingSvc, log)
	quoteRental := quoteRentalHandler.NewHandler(quoteRentalUseCase, log)
	quoteItem := quoteItemHandler.NewHandler(quoteSvc, log)
	getRateTable := getRateTableHandler.NewHandler(rateTableSvc, log)
	upsertRateTable := upsertRateTableHandler.NewHandler(rateTableSvc, log)
	health := healthHandler.NewHandler(map[string]healthHandler.Check{
		"postgres": st.db.PingContext,
		"mongo": func(ctx context.Context) error {
			return st.mongo.Ping(ctx, readpref.Primary())
		},
	}, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.AccessLog(log), middleware.Recover(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Расчет стоимости аренды по тарифной таблице
	api.HandleFunc("/subjects/{subjectId}/rental-quote", quoteRental.Handle).Methods(http.MethodGet)

	// Расчет стоимости тура или впечатления
	api.HandleFunc("/subjects/{subjectKind}/{subjectId}/quote", quoteItem.Handle).Methods(http.MethodGet)

	// Тарифная таблица услуги
	api.HandleFunc("/rate-tables/{subjectId}", getRateTable.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/edit", editBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/submit", submitBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/status", changeBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Групповые поездки ---
	protected.HandleFunc("/groups/{shareToken}/join", joinGroup.Handle).Methods(http.MethodPost)

	// --- Администрирование ---
	protected.HandleFunc("/bookings/{bookingId}/price", setBookingPrice.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/subjects/{subjectKind}/{subjectId}/bookings", getSubjectBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rate-tables/{subjectId}", upsertRateTable.Handle).Methods(http.MethodPut)

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
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

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
	return nil
}
