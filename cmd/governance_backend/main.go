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

	"github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_governance/internal/core/services"
	"github.com/SscSPs/backoffice_governance/internal/dto"
	"github.com/SscSPs/backoffice_governance/internal/handlers"
	"github.com/SscSPs/backoffice_governance/internal/middleware"
	"github.com/SscSPs/backoffice_governance/internal/platform/cache"
	"github.com/SscSPs/backoffice_governance/internal/platform/config"
	"github.com/SscSPs/backoffice_governance/internal/platform/messaging"
	"github.com/SscSPs/backoffice_governance/internal/repositories/database/pgsql"
	"github.com/SscSPs/backoffice_governance/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title Back-office Governance API
// @version 1.0
// @description Permission, segregation-of-duties, period, ledger and lifecycle checks for financial documents.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
		if err != nil {
			return err
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}
	}

	idempotency, err := newIdempotencyStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeQuietly(logger, "idempotency store", idempotency)

	sinks := services.Sinks{Idempotency: idempotency}
	if len(cfg.KafkaBrokers) > 0 {
		publisher := messaging.NewKafkaAuditPublisher(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
		defer closeQuietly(logger, "audit publisher", publisher)
		sinks.Publisher = publisher
		logger.Info("Publishing audit records to Kafka", slog.String("topic", cfg.KafkaAuditTopic))
	}

	repos := pgsql.NewRepositoryProvider(dbPool, cfg.DefaultTaxTolerance)
	container := services.NewServiceContainer(cfg, repos, sinks)
	// Runs before the sinks above are closed.
	defer container.Audit.Flush()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return err
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	limiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.APIKeyHeader, middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.RateLimit(limiter),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, container, dbPool)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newIdempotencyStore selects Redis when configured and the in-memory store otherwise.
func newIdempotencyStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.IdempotencyStore, error) {
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set; identity dedup is local to this instance")
		return cache.NewMemoryStore(cfg.IdempotencyTTL), nil
	}
	store, err := cache.NewRedisStore(ctx, cfg.RedisURL, cfg.IdempotencyTTL)
	if err != nil {
		return nil, err
	}
	logger.Info("Using Redis for identity dedup")
	return store, nil
}

type closer interface {
	Close() error
}

func closeQuietly(logger *slog.Logger, what string, c closer) {
	if err := c.Close(); err != nil {
		logger.Error("Failed to close "+what, slog.String("error", err.Error()))
	}
}
