package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/podshelf-backend/internal/adapter/postgres"
	podcastrepo "github.com/heartmarshall/podshelf-backend/internal/adapter/postgres/podcast"
	userrepo "github.com/heartmarshall/podshelf-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/podshelf-backend/internal/adapter/provider/itunes"
	authpkg "github.com/heartmarshall/podshelf-backend/internal/auth"
	"github.com/heartmarshall/podshelf-backend/internal/config"
	"github.com/heartmarshall/podshelf-backend/internal/metrics"
	authsvc "github.com/heartmarshall/podshelf-backend/internal/service/auth"
	podcastsvc "github.com/heartmarshall/podshelf-backend/internal/service/podcast"
	usersvc "github.com/heartmarshall/podshelf-backend/internal/service/user"
	"github.com/heartmarshall/podshelf-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, applies migrations when enabled, and serves HTTP until ctx is
// cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func Run(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// 2. Metrics.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	// 3. Services.
	handler, err := buildRouter(cfg, logger, pool, collector, registry)
	if err != nil {
		return err
	}

	// 4. HTTP server.
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}

// RunMigrate applies pending migrations and exits.
func RunMigrate(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	logger.Info("migrations up to date")
	return nil
}

func buildRouter(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
) (http.Handler, error) {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	podcasts := podcastrepo.New(pool)

	tokens := authpkg.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	catalog := itunes.NewProvider(cfg.Catalog, logger).WithRecorder(collector)

	authService, err := authsvc.NewService(logger, users, tokens, cfg.Auth)
	if err != nil {
		return nil, err
	}
	userService := usersvc.NewService(logger, users)
	podcastService := podcastsvc.NewService(logger, podcasts, txm, catalog, cfg.Catalog)

	return rest.NewRouter(rest.Deps{
		Logger:   logger,
		Auth:     authService,
		Tokens:   authService,
		Users:    userService,
		Podcasts: podcastService,
		DB:       pool,
		Metrics:  collector,
		Gatherer: gatherer,
		CORS:     cfg.CORS,
		Version:  Version,
	}), nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}
