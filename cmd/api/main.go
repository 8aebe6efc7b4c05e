// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/account"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/admin"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/auth"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/config"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/dashboard"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/export"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/health"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/middleware"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/opportunity"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/quality"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/server"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/survey"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/translation"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to optional yaml config file")
	envFile := flag.String("env", ".env", "path to optional .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not read env file", "path", *envFile, "error", err)
	}

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected", "driver", db.Driver)

	if cfg.Database.AutoMigrate {
		version, migErr := core.Migrate(db, cfg.Database.URL)
		if migErr != nil {
			return migErr
		}
		logger.Info("schema migrated", "version", version)
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}

	var redisChecker health.Checker
	adminCfg := admin.HandlerConfig{
		DBStats: db.Stats,
		DBPing:  db.Ping,
	}
	if redis.Enabled() {
		redisChecker = redis
		adminCfg.RedisStats = redis.PoolStats
		adminCfg.RedisPing = redis.Ping
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	} else {
		logger.Info("redis disabled, using in-process rate limiting")
	}

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(db.DB, userRepo)

	authSvc := auth.NewService(
		auth.NewRepository(db.DB),
		auth.NewTokenIssuer(cfg.JWT),
		userSvc,
		auth.NewOAuthClient(cfg.OAuth),
		auth.NewRevocations(redis.Raw()),
		cfg.Session,
	)

	accountRepo := account.NewRepository(db.DB)
	accountSvc := account.NewService(db.DB, accountRepo)
	opportunityRepo := opportunity.NewRepository(db.DB)
	qualityRepo := quality.NewRepository(db.DB)
	surveyRepo := survey.NewRepository(db.DB)
	dashboardSvc := dashboard.NewService(dashboard.NewRepository(db.DB))

	adminCfg.Counter = dashboardSvc
	adminCfg.Sessions = authSvc

	authHandler := auth.NewHandler(authSvc, cfg.Session)
	userHandler := user.NewHandler(userSvc)
	accountHandler := account.NewHandler(accountSvc)
	opportunityHandler := opportunity.NewHandler(
		opportunity.NewService(opportunityRepo, accountSvc),
	)
	qualityHandler := quality.NewHandler(
		quality.NewService(db.DB, qualityRepo, accountSvc),
	)
	surveyHandler := survey.NewHandler(survey.NewService(db.DB, surveyRepo))
	dashboardHandler := dashboard.NewHandler(dashboardSvc)
	translationHandler := translation.NewHandler(
		translation.NewService(db.DB, translation.NewRepository(db.DB)),
	)
	exportHandler := export.NewHandler(export.NewExporter(export.Sources{
		Users:         userRepo,
		Accounts:      accountRepo,
		Opportunities: opportunityRepo,
		Quality:       qualityRepo,
		Surveys:       surveyRepo,
	}))
	adminHandler := admin.NewHandler(adminCfg)

	healthHandler := health.NewHandler(db, redisChecker)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	limiter := middleware.NewRateLimiter(redis.Raw(), middleware.RateLimitConfig{
		Limit:      middleware.FromConfig(cfg.RateLimit),
		KeyFunc:    middleware.KeyFuncFromConfig(cfg.RateLimit),
		FailOpen:   true,
		BypassFunc: middleware.BypassPaths("/healthz", "/livez", "/readyz"),
	})
	defer limiter.Close()
	router.Use(limiter.Handler)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(authSvc, cfg.Session.CookieName)

	router.Route(cfg.Server.APIPrefix, func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterAdminRoutes(r, authenticator)
		accountHandler.RegisterRoutes(r, authenticator)
		opportunityHandler.RegisterRoutes(r, authenticator)
		qualityHandler.RegisterRoutes(r, authenticator)
		surveyHandler.RegisterRoutes(r, authenticator)
		dashboardHandler.RegisterRoutes(r, authenticator)
		translationHandler.RegisterAdminRoutes(r, authenticator)
		exportHandler.RegisterAdminRoutes(r, authenticator)
		adminHandler.RegisterAdminRoutes(r, authenticator)
	})

	go authSvc.RunJanitor(ctx, cfg.Session.CleanupInterval)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
