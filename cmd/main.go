package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"

	httpadapter "mesa-campaigns/internal/adapter/http"
	"mesa-campaigns/internal/adapter/platform"
	"mesa-campaigns/internal/adapter/postgres"
	"mesa-campaigns/internal/adapter/usecase"
	"mesa-campaigns/internal/config"
	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/core/ratelimit"
	"mesa-campaigns/internal/core/retry"
	"mesa-campaigns/internal/db"
)

// main loads configuration, prepares the database, wires the platform
// client, quota limiter and orchestrator, then serves HTTP until SIGINT or
// SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
		os.Exit(exitCode)
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo tenants seeded")
	}

	var limiter port.RateLimiter = ratelimit.New()
	if cfg.Limits.Shared() {
		limiter = postgres.NewRateLimiter(pool)
	}
	logger.Info("quota limiter ready", slog.String("backend", cfg.Limits.Backend))

	client := platform.NewClient(platform.Options{
		BaseURL:           cfg.Platform.BaseURL,
		AdvertiserID:      cfg.Platform.AdvertiserID,
		AccessToken:       cfg.Platform.AccessToken,
		Timeout:           cfg.Platform.Timeout,
		RequestsPerSecond: cfg.Platform.RequestsPerSecond,
	}, logger.With(slog.String("component", "platform")))

	svc := usecase.NewCampaignUseCase(
		client,
		limiter,
		postgres.NewTenantDirectory(pool, cfg.Limits.Tiers),
		postgres.NewCampaignRepository(pool),
		usecase.Config{
			Retry: retry.Config{
				MaxRetries:  cfg.Orch.RetryMax,
				BaseDelay:   cfg.Orch.RetryBaseDelay,
				CallTimeout: cfg.Orch.CallTimeout,
			},
			UTCOffsetHours:      cfg.Orch.UTCOffsetHours,
			DefaultLocations:    cfg.Orch.DefaultLocations,
			DefaultQuotaPerHour: cfg.Limits.DefaultPerHour,
			FallbackLandingURL:  cfg.Orch.FallbackLandingURL,
			AdConcurrency:       cfg.Orch.AdConcurrency,
		},
		logger.With(slog.String("component", "orchestrator")),
		usecase.WithTracer(otel.Tracer("mesa-campaigns")),
	)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
