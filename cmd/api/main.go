// BYH Music Store | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/byhstore/byh-store/internal/admin"
	"github.com/byhstore/byh-store/internal/auth"
	"github.com/byhstore/byh-store/internal/banner"
	"github.com/byhstore/byh-store/internal/catalog"
	"github.com/byhstore/byh-store/internal/config"
	"github.com/byhstore/byh-store/internal/core"
	"github.com/byhstore/byh-store/internal/customer"
	"github.com/byhstore/byh-store/internal/health"
	"github.com/byhstore/byh-store/internal/middleware"
	"github.com/byhstore/byh-store/internal/order"
	"github.com/byhstore/byh-store/internal/promotion"
	"github.com/byhstore/byh-store/internal/server"
	"github.com/byhstore/byh-store/internal/settings"
	"github.com/byhstore/byh-store/internal/upload"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

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
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	uploads, err := upload.NewStore(cfg.Upload)
	if err != nil {
		return err
	}
	logger.Info("upload store ready",
		"dir", cfg.Upload.Dir,
		"public_path", cfg.Upload.PublicPath,
	)

	catalogRepo := catalog.NewRepository(db.DB)
	catalogSvc := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogSvc, uploads)

	customerRepo := customer.NewRepository(db.DB)
	customerSvc := customer.NewService(customerRepo)
	customerHandler := customer.NewHandler(customerSvc)

	promotionRepo := promotion.NewRepository(db.DB)
	promotionSvc := promotion.NewService(promotionRepo)
	promotionHandler := promotion.NewHandler(promotionSvc)

	bannerRepo := banner.NewRepository(db.DB)
	bannerSvc := banner.NewService(bannerRepo)
	bannerHandler := banner.NewHandler(bannerSvc, uploads)

	orderRepo := order.NewRepository(db.DB)
	orderSvc := order.NewService(orderRepo)
	orderHandler := order.NewHandler(orderSvc)

	settingsRepo := settings.NewRepository(db.DB)
	settingsSvc := settings.NewService(settingsRepo, redis.Client)
	settingsHandler := settings.NewHandler(settingsSvc)

	authRepo := auth.NewRepository(db.DB)
	authSvc := auth.NewService(authRepo, jwtManager, customer.NewProvider(customerSvc))
	authHandler := auth.NewHandler(authSvc)

	healthHandler := health.NewHandler(db, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		Counters: map[string]admin.CountFunc{
			"products":   catalogRepo.Count,
			"users":      customerRepo.Count,
			"orders":     orderRepo.Count,
			"promotions": promotionRepo.Count,
			"banners":    bannerRepo.Count,
		},
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	router.Handle(
		cfg.Upload.PublicPath+"/*",
		http.StripPrefix(
			cfg.Upload.PublicPath+"/",
			http.FileServer(http.Dir(uploads.Dir())),
		),
	)

	authenticator := middleware.Authenticator(jwtManager)
	adminOnly := middleware.RequireAdmin

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)

		catalogHandler.RegisterRoutes(r)
		promotionHandler.RegisterRoutes(r)
		bannerHandler.RegisterRoutes(r)

		catalogHandler.RegisterAdminRoutes(r, authenticator)
		promotionHandler.RegisterAdminRoutes(r, authenticator)
		bannerHandler.RegisterAdminRoutes(r, authenticator)
		customerHandler.RegisterAdminRoutes(r, authenticator)
		orderHandler.RegisterAdminRoutes(r, authenticator)
		settingsHandler.RegisterAdminRoutes(r, authenticator)

		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

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
