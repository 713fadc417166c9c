package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	convertRequestHandler "github.com/fideslex/booking-service/internal/api/handlers/convert_request"
	createBookingHandler "github.com/fideslex/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/fideslex/booking-service/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/fideslex/booking-service/internal/api/handlers/get_client_appointments"
	getProfessionalAppointmentsHandler "github.com/fideslex/booking-service/internal/api/handlers/get_professional_appointments"
	listRequestsHandler "github.com/fideslex/booking-service/internal/api/handlers/list_requests"
	lunchBreaksHandler "github.com/fideslex/booking-service/internal/api/handlers/lunch_breaks"
	schedulesHandler "github.com/fideslex/booking-service/internal/api/handlers/schedules"
	submitRequestHandler "github.com/fideslex/booking-service/internal/api/handlers/submit_request"
	updateAppointmentStatusHandler "github.com/fideslex/booking-service/internal/api/handlers/update_appointment_status"
	"github.com/fideslex/booking-service/internal/api/middleware"
	"github.com/fideslex/booking-service/internal/config"
	"github.com/fideslex/booking-service/internal/domain"
	appointmentRepo "github.com/fideslex/booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/fideslex/booking-service/internal/infra/storage/catalog"
	lunchBreakRepo "github.com/fideslex/booking-service/internal/infra/storage/lunchbreak"
	profileRepo "github.com/fideslex/booking-service/internal/infra/storage/profile"
	requestRepo "github.com/fideslex/booking-service/internal/infra/storage/request"
	scheduleRepo "github.com/fideslex/booking-service/internal/infra/storage/schedule"
	"github.com/fideslex/booking-service/internal/integrations/identity"
	"github.com/fideslex/booking-service/internal/integrations/mailer"
	appointmentsService "github.com/fideslex/booking-service/internal/service/appointments"
	lunchBreaksService "github.com/fideslex/booking-service/internal/service/lunchbreaks"
	requestsService "github.com/fideslex/booking-service/internal/service/requests"
	schedulesService "github.com/fideslex/booking-service/internal/service/schedules"
	convertRequestUC "github.com/fideslex/booking-service/internal/usecase/convert_request"
	createBookingUC "github.com/fideslex/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/fideslex/booking-service/internal/usecase/get_available_slots"
	"github.com/fideslex/booking-service/internal/worker/expiry"
	"github.com/fideslex/booking-service/migrations"
	"github.com/fideslex/booking-service/pkg/dbmetrics"
	"github.com/fideslex/booking-service/pkg/logger"
	"github.com/fideslex/booking-service/pkg/metrics"
	"github.com/fideslex/booking-service/pkg/migrator"
	"github.com/fideslex/booking-service/pkg/timegrid"
	"github.com/fideslex/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")

	grid, err := timegrid.Load(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("Failed to load business time zone: %v", err)
	}
	log.Info("Business time zone: %s", cfg.Schedule.Timezone)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		registry         *prometheus.Registry
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, registry)
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

	// Схема создается один раз при старте
	if cfg.Database.MigrateOnStart {
		version, err := migrator.Up(db, migrations.FS, ".")
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database schema at version %d", version)
	}

	// С nil-метриками обертка работает как обычное соединение
	wrappedDB := dbmetrics.Wrap(db, metricsCollector)

	backgroundCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	if cfg.Metrics.Enabled {
		go wrappedDB.CollectStats(backgroundCtx, cfg.Database.DBName, dbmetrics.DefaultStatsInterval)
		log.Info("Database metrics collection started")
	}

	// Инициализируем интеграционных клиентов
	identityClient := identity.NewClient(
		cfg.Identity.URL,
		cfg.Identity.APIKey,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	if cfg.Identity.URL == "" {
		log.Warn("Identity provider URL is empty: account provisioning on conversion will fail")
	}
	mailClient := mailer.New(cfg.Mail.SendGridAPIKey, mailer.Config{
		FromEmail: cfg.Mail.FromEmail,
		FromName:  cfg.Mail.FromName,
		AppURL:    cfg.Mail.AppURL,
		Location:  grid.Location(),
	}, log)
	if cfg.Mail.SendGridAPIKey == "" {
		log.Warn("SendGrid API key is empty: confirmation emails will fail")
	}
	log.Info("Integration clients initialized (Identity=%s timeout=%ds)", cfg.Identity.URL, cfg.Identity.Timeout)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	lunchBreakRepository := lunchBreakRepo.NewRepository(wrappedDB)
	requestRepository := requestRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	scheduleSvc := schedulesService.NewService(scheduleRepository, log)
	lunchBreakSvc := lunchBreaksService.NewService(lunchBreakRepository, profileRepository, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, grid, metricsCollector, log)
	requestSvc := requestsService.NewService(requestRepository, profileRepository, grid, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		lunchBreakSvc,
		grid,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		lunchBreakSvc,
		profileRepository,
		grid,
		txMgr,
		metricsCollector,
		log,
	)
	convertRequestUseCase := convertRequestUC.NewUseCase(
		requestRepository,
		appointmentRepository,
		catalogRepository,
		profileRepository,
		createBookingUseCase,
		identityClient,
		mailClient,
		metricsCollector,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, grid, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, grid, log)
	getProfessionalAppointments := getProfessionalAppointmentsHandler.NewHandler(appointmentSvc, grid, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	submitRequest := submitRequestHandler.NewHandler(requestSvc, log)
	listRequests := listRequestsHandler.NewHandler(requestSvc, log)
	convertRequest := convertRequestHandler.NewHandler(convertRequestUseCase, grid, log)
	schedules := schedulesHandler.NewHandler(scheduleSvc, log)
	lunchBreaks := lunchBreaksHandler.NewHandler(lunchBreakSvc, log)

	auth := middleware.NewAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log)
	trustedProxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		log.Fatal("Failed to parse trusted proxies: %v", err)
	}
	submissionLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log).
		WithTrustedProxies(trustedProxies)

	// authenticated: любая роль; withRoles: только перечисленные
	authenticated := func(h http.HandlerFunc) http.Handler {
		return auth.Required(h)
	}
	withRoles := func(h http.HandlerFunc, roles ...domain.Role) http.Handler {
		return auth.Required(middleware.RequireRole(log, roles...)(h))
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Заявка на запись (гость или авторизованный клиент)
	api.Handle("/appointment-requests",
		submissionLimiter.Middleware(auth.Optional(http.HandlerFunc(submitRequest.Handle)))).Methods(http.MethodPost)

	// ============================================================
	// AUTHENTICATED ROUTES
	// ============================================================

	// --- Слоты и записи ---
	api.Handle("/availability", authenticated(getAvailableSlots.Handle)).Methods(http.MethodGet)
	api.Handle("/appointments", authenticated(createBooking.Handle)).Methods(http.MethodPost)
	api.Handle("/appointments",
		withRoles(getProfessionalAppointments.Handle, domain.RoleStaff, domain.RoleAdmin)).Methods(http.MethodGet)
	api.Handle("/appointments/{id:[0-9]+}/status",
		withRoles(updateAppointmentStatus.Handle, domain.RoleStaff, domain.RoleAdmin)).Methods(http.MethodPatch)
	api.Handle("/clients/me/appointments",
		withRoles(getClientAppointments.Handle, domain.RoleClient)).Methods(http.MethodGet)

	// --- Заявки ---
	api.Handle("/appointment-requests", authenticated(listRequests.Handle)).Methods(http.MethodGet)
	api.Handle("/appointment-requests/{id:[0-9]+}/convert",
		withRoles(convertRequest.Handle, domain.RoleStaff, domain.RoleAdmin)).Methods(http.MethodPost)

	// --- Каталог слотов ---
	api.Handle("/schedules", withRoles(schedules.List, domain.RoleStaff, domain.RoleAdmin)).Methods(http.MethodGet)
	api.Handle("/schedules", withRoles(schedules.Create, domain.RoleAdmin)).Methods(http.MethodPost)
	api.Handle("/schedules/{id:[0-9]+}", withRoles(schedules.Update, domain.RoleAdmin)).Methods(http.MethodPut)
	api.Handle("/schedules/{id:[0-9]+}", withRoles(schedules.Delete, domain.RoleAdmin)).Methods(http.MethodDelete)

	// --- Перерывы на обед ---
	api.Handle("/professionals/{professionalId}/lunch-break",
		withRoles(lunchBreaks.Get, domain.RoleAdmin)).Methods(http.MethodGet)
	api.Handle("/professionals/{professionalId}/lunch-break",
		withRoles(lunchBreaks.Set, domain.RoleAdmin)).Methods(http.MethodPut)
	api.Handle("/professionals/{professionalId}/lunch-break",
		withRoles(lunchBreaks.Clear, domain.RoleAdmin)).Methods(http.MethodDelete)

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}).Handler(r)

	// Периодическая очистка просроченных записей
	var sweeper *expiry.Worker
	if cfg.Sweeper.Enabled {
		sweeper = expiry.NewWorker(appointmentSvc, cfg.Sweeper.Cron, grid.Location(), log)
		if err := sweeper.Start(); err != nil {
			log.Fatal("Failed to start expiry worker: %v", err)
		}
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if sweeper != nil {
		sweeper.Stop(shutdownCtx)
	}

	// Останавливаем сбор метрик connection pool
	stopBackground()

	log.Info("Server stopped gracefully")
}
