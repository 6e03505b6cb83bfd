package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"campaign-loader/db/migrations"
	"campaign-loader/internal/adapter/googleads"
	"campaign-loader/internal/adapter/http"
	"campaign-loader/internal/adapter/memory"
	"campaign-loader/internal/adapter/postgres"
	"campaign-loader/internal/adapter/secrets"
	"campaign-loader/internal/adapter/usecase"
	"campaign-loader/internal/adapter/worker"
	"campaign-loader/internal/config"
	"campaign-loader/internal/config/configs"
	"campaign-loader/internal/core/port"
	"campaign-loader/internal/db"
)

// main is the entry point of the campaign loader. It loads configuration,
// wires the job store, the Google Ads client and the background workers,
// then serves the HTTP API until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger); err != nil {
		logger.Error("fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, events, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	creds, err := secrets.New(cfg.Secrets.Source, cfg.Secrets.File)
	if err != nil {
		return err
	}
	connector := googleads.NewConnector(cfg.GoogleAds.TokenURL,
		&http.Client{Timeout: cfg.GoogleAds.Timeout},
		googleads.WithBaseURL(cfg.GoogleAds.BaseURL),
		googleads.WithAPIVersion(cfg.GoogleAds.APIVersion),
		googleads.WithLoginCustomerID(cfg.GoogleAds.LoginCustomerID),
		googleads.WithRateLimit(cfg.GoogleAds.RequestsPerSecond),
		googleads.WithLogger(logger),
	)

	orchestrator := usecase.NewOrchestrator(repo, creds, connector,
		usecase.WithCampaignDelay(cfg.Worker.CampaignDelay),
		usecase.WithTargeting(cfg.GoogleAds.Targeting()),
		usecase.WithOrchestratorLogger(logger),
	)
	svc := usecase.NewCampaignUseCase(repo, cfg.Store.Retention)

	dispatcher := worker.NewDispatcher(orchestrator, cfg.Worker.MaxConcurrentJobs, logger)
	janitor := worker.NewJanitor(repo, dispatcher, cfg.Worker.SweepBatch, logger)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := dispatcher.Run(ctx, events); err != nil {
			logger.Error("job event source stopped", slog.Any("error", err))
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		if err := janitor.Run(ctx, cfg.Worker.SweepSchedule, cfg.Worker.PurgeSchedule); err != nil {
			logger.Error("janitor stopped", slog.Any("error", err))
			cancel()
		}
	}()

	if cfg.Store.SeedAccountID != "" {
		resp, err := db.Seed(ctx, svc, cfg.Store.SeedAccountID)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("sample plan submitted", slog.String("job_id", resp.JobID))
		}
	}

	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.MaxBodyBytes)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		cancel()
	}

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("server shutdown error", slog.Any("error", shutdownErr))
	} else {
		logger.Info("server gracefully stopped")
	}

	wg.Wait()
	return err
}

// openStore returns the configured job store and its event source. The
// returned func releases the store.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.JobRepository, port.JobEventSource, func(), error) {
	switch cfg.Store.Driver {
	case configs.StoreDriverMemory:
		repo := memory.NewJobRepository()
		logger.Warn("using in-memory job store; jobs are lost on restart")
		return repo, repo, func() {}, nil

	case configs.StoreDriverPostgres:
		if cfg.Psql.RunMigrations {
			from, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully",
				slog.Uint64("from_version", uint64(from)),
				slog.Uint64("version", uint64(migrations.Version)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewJobRepository(pool), postgres.NewListener(pool, logger), pool.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
