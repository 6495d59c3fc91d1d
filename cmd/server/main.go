package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/events"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	tokenCleanupInterval   = time.Hour
	visitorCleanupInterval = time.Minute
)

func main() {
	// a missing .env is fine outside development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	publisher := newPublisher(cfg, logger)
	defer publisher.Close()

	app, err := newApplication(cfg, db, publisher, prometheus.DefaultRegisterer, logger)
	if err != nil {
		return err
	}
	go app.limiter.RunCleanup(ctx, visitorCleanupInterval)
	go runTokenCleanup(ctx, app.auth, logger)

	e := app.echo
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting finance tracker", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

type application struct {
	echo    *echo.Echo
	auth    services.AuthServiceInterface
	limiter *middleware.IPRateLimiter
}

// newApplication wires repositories, services and handlers onto a configured echo instance.
func newApplication(cfg *config.Config, db *database.DB, publisher events.Publisher, reg prometheus.Registerer, logger *slog.Logger) (*application, error) {
	var recordRepos []repositories.RecordRepositoryInterface
	for _, kind := range models.AllKinds() {
		repo, err := repositories.NewRecordRepository(db.DB, kind)
		if err != nil {
			return nil, err
		}
		recordRepos = append(recordRepos, repo)
	}
	userRepo := repositories.NewUserRepository(db.DB)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(db.DB)

	metrics := services.NewPrometheusMetrics(reg)
	categoryService := services.NewCategoryService()
	recordService := services.NewRecordService(recordRepos, publisher, metrics, logger)
	aggregationService := services.NewAggregationService(categoryService, metrics, logger)
	reportService := services.NewReportService(recordService, aggregationService, metrics, cfg.Report.RecentLimit, logger)
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost, cfg.Security.PasswordMinLength)
	authService := services.NewAuthService(userRepo, blacklistRepo, passwordService, tokenService, metrics, cfg.Security, logger)

	var dev *handlers.DevHandler
	if !cfg.IsProduction() {
		dev = handlers.NewDevHandler(recordService, services.NewSampleDataGenerator(uint64(time.Now().UnixNano())))
	}

	limiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	e := newServer(cfg, logger, limiter)
	registerRoutes(e, routes{
		auth:        handlers.NewAuthHandler(authService),
		expenses:    handlers.NewRecordHandler(models.KindExpense, recordService, categoryService),
		earnings:    handlers.NewRecordHandler(models.KindEarning, recordService, categoryService),
		reports:     handlers.NewReportHandler(reportService, categoryService).WithCurrency(cfg.Report.Currency),
		categories:  handlers.NewCategoryHandler(categoryService),
		health:      handlers.NewHealthCheckHandler(db),
		dev:         dev,
		requireAuth: middleware.RequireAuth(tokenService, authService),
	})

	return &application{echo: e, auth: authService, limiter: limiter}, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Server.SlogLevel()}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// newPublisher connects to the broker when one is configured. A broker that cannot be
// reached only disables notifications.
func newPublisher(cfg *config.Config, logger *slog.Logger) events.Publisher {
	if cfg.AMQP.URL == "" {
		return events.NewNoopPublisher()
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.ExchangeName, cfg.AMQP.QueueName)
	if err != nil {
		logger.Warn("Record change notifications disabled", "error", err)
		return events.NewNoopPublisher()
	}
	logger.Info("Publishing record changes", "exchange", cfg.AMQP.ExchangeName, "queue", cfg.AMQP.QueueName)
	return events.NewBreakerPublisher(publisher, events.DefaultBreakerConfig())
}

func runTokenCleanup(ctx context.Context, auth services.AuthServiceInterface, logger *slog.Logger) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := auth.CleanupExpiredTokens()
			if err != nil {
				logger.Warn("Blacklist cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				logger.Info("Blacklist cleanup", "removed", removed)
			}
		}
	}
}
