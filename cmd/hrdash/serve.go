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
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/johnwards/hrdash/internal/config"
	"github.com/johnwards/hrdash/internal/database"
	"github.com/johnwards/hrdash/internal/logging"
	"github.com/johnwards/hrdash/internal/metrics"
	"github.com/johnwards/hrdash/internal/seed"
	"github.com/johnwards/hrdash/internal/server"
	"github.com/johnwards/hrdash/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the HTTP server. Settings come from the config file, a .env file and
HRDASH_* environment variables. Changes to page_size and log_level in the
config file are applied without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, *cfgFile)
		},
	}
}

func runServe(ctx context.Context, cfgFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lvl, _ := cfg.Level()
	rt := config.NewRuntime(cfg, logging.Setup(os.Stderr, cfg.LogFormat, lvl))

	// The memory backend keeps reference data in a private database too, so
	// nothing touches disk.
	dsn := cfg.DBPath
	if cfg.Store == store.BackendMemory {
		dsn = ":memory:"
	}

	db, err := database.Open(ctx, dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	s, err := store.New(db, cfg.Store)
	if err != nil {
		return err
	}

	if err := seed.Seed(ctx, db, s.Employees); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.NewHandler(s, rt, metrics.New()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting hrdash server", "addr", cfg.Addr, "store", cfg.Store, "page_size", cfg.PageSize)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if path := configPath(cfgFile); path != "" {
		g.Go(func() error {
			return config.Watch(gctx, path, rt.Apply)
		})
	}

	return g.Wait()
}

func configPath(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv("HRDASH_CONFIG")
}
