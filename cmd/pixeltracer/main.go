// Command pixeltracer serves text-grid drawing sessions over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/pixeltracer"
	"github.com/gogpu/pixeltracer/internal/config"
	"github.com/gogpu/pixeltracer/internal/server"
	"github.com/gogpu/pixeltracer/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("pixeltracer: fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	pixeltracer.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var appOpts []pixeltracer.Option
	switch cfg.IDStore {
	case config.StoreFile:
		appOpts = append(appOpts, pixeltracer.WithIDStore(store.NewFile(cfg.IDFile)))
	case config.StoreSQLite:
		db, err := store.OpenSQLite(ctx, cfg.IDDBPath)
		if err != nil {
			return fmt.Errorf("open id store: %w", err)
		}
		defer db.Close()
		appOpts = append(appOpts, pixeltracer.WithIDStore(db))
	case config.StoreNone:
	default:
		return fmt.Errorf("unknown ID_STORE %q", cfg.IDStore)
	}

	srv := server.New(server.Options{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AccessLog:    true,
		Limits: server.Limits{
			MaxSessions: cfg.MaxSessions,
			IdleTTL:     time.Duration(cfg.SessionTTL) * time.Second,
		},
		AppOptions: appOpts,
	})
	go sweepSessions(ctx, srv.Sessions(), time.Minute)

	errc := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("pixeltracer: starting", "addr", addr, "env", cfg.Environment, "id_store", cfg.IDStore)
		errc <- srv.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("pixeltracer: shutting down")
	return srv.Shutdown(shutdownCtx)
}

// sweepSessions ends idle sessions every interval until ctx is done.
func sweepSessions(ctx context.Context, m *server.SessionManager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}
