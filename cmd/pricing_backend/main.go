package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/workspace_storefront/internal/core/ports/repositories"
	"github.com/SscSPs/workspace_storefront/internal/core/services"
	"github.com/SscSPs/workspace_storefront/internal/handlers"
	"github.com/SscSPs/workspace_storefront/internal/middleware"
	"github.com/SscSPs/workspace_storefront/internal/obs"
	"github.com/SscSPs/workspace_storefront/internal/platform/config"
	"github.com/SscSPs/workspace_storefront/internal/repositories/cache"
	"github.com/SscSPs/workspace_storefront/internal/repositories/database/pgsql"
	"github.com/SscSPs/workspace_storefront/internal/scheduler"
	"github.com/SscSPs/workspace_storefront/internal/utils"
	"github.com/SscSPs/workspace_storefront/pkg/database"
	"github.com/SscSPs/workspace_storefront/pkg/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Workspace Storefront Pricing API
// @version 1.0
// @description Price computation and currency conversion for the workspace rental storefront.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := logging.Setup(cfg.LogLevel, cfg.IsProduction)

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, database.PoolOptions{
		MaxConnLifetime: time.Hour,
		ConnectTimeout:  10 * time.Second,
		Ping:            cfg.EnableDBCheck,
	})
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis backs the rate table cache, device preferences and the rate limiter.
	// Without it the service still answers from postgres.
	var cacheProvider portsrepo.CacheProvider
	redisClient, err := database.NewRedisClient(context.Background(), cfg.RedisURL)
	if err != nil {
		logger.Warn("Redis unavailable, running without cache", slog.String("error", err.Error()))
		redisClient = nil
	} else {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		cacheProvider = cache.NewRedisCache(redisClient, cfg.RateCacheTTL, cfg.DevicePreferenceTTL)
	}

	rateLimiter, err := newRateLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := obs.NewHTTPMetrics(cfg.MetricsNamespace, registry)
	pricingMetrics := obs.NewPricingMetrics(cfg.MetricsNamespace, registry)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool, cacheProvider)
	serviceContainer := services.NewServiceContainer(cfg, repos, pricingMetrics)

	rateScheduler, err := scheduler.NewScheduler(cfg.RateRefreshCron, serviceContainer.ExchangeRate, logger)
	if err != nil {
		logger.Error("Failed to create scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}
	rateScheduler.RefreshRates()
	rateScheduler.Start()
	defer rateScheduler.Stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, cors)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(httpMetrics),
		cors.New(cors.Config{
			AllowOrigins:  cfg.CORSAllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", middleware.UserIDHeader, middleware.DeviceIDHeader},
			ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
			MaxAge:        12 * time.Hour,
		}),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouterDeps{
		Limiter:  rateLimiter,
		Posthog:  posthogClient,
		Gatherer: registry,
	})
	if err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("base_currency", cfg.BaseCurrency))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies every pending "up" migration from cfg.MigrationsURL.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsURL, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// newRateLimiter shares limits across instances through redis when a client
// is available and keeps them in memory otherwise.
func newRateLimiter(formatted string, client *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return limiter.New(memory.NewStore(), rate), nil
	}
	store, err := limiterredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: "storefront_limiter"})
	if err != nil {
		return nil, err
	}
	return limiter.New(store, rate), nil
}
