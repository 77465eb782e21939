package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	"github.com/SscSPs/comandas_backend/internal/core/services"
	"github.com/SscSPs/comandas_backend/internal/handlers"
	"github.com/SscSPs/comandas_backend/internal/middleware"
	"github.com/SscSPs/comandas_backend/internal/repositories/cache"
	"github.com/SscSPs/comandas_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/comandas_backend/pkg/config"
	"github.com/SscSPs/comandas_backend/pkg/database"
	"github.com/SscSPs/comandas_backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

// @title Comandas Backend API
// @version 1.0
// @description Back office for the studio: comandas, prepagos, cajas and staff.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	l := logger.New(logger.Config{Production: cfg.IsProduction, Level: cfg.LogLevel})
	ctx := l.WithContext(context.Background())

	if err := run(ctx, cfg, l); err != nil {
		l.Fatal().Err(err).Msg("Server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, l zerolog.Logger) error {
	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		Timezone: cfg.Timezone,
		Ping:     cfg.EnableDBCheck,
	})
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(ctx, dbPool)

	if cfg.RunMigrationsOnStart {
		l.Info().Msg("Running database migrations...")
		if err := database.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
			return err
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	revocations, closeRevocations, err := newRevocationStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRevocations()
	repos.RevocationRepo = revocations

	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// Global middleware (logging, recovery)
	r.Use(middleware.RequestLogger(l), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}
	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		l.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-serveErr:
		return err
	case <-stop.Done():
	}

	l.Info().Msg("Shutting down server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// newRevocationStore uses Redis when REDIS_URL is set so logouts survive restarts and are
// shared between replicas. Without it revocations are kept in process.
func newRevocationStore(ctx context.Context, cfg *config.Config) (portsrepo.TokenRevocationStore, func(), error) {
	if cfg.RedisURL == "" {
		zerolog.Ctx(ctx).Warn().Msg("REDIS_URL not set, token revocations are kept in memory")
		return cache.NewMemoryRevocationStore(), func() {}, nil
	}
	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisRevocationStore(client), func() {
		if err := client.Close(); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("Error closing redis client")
		}
	}, nil
}
