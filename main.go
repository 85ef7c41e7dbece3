package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"market-signals/config"
	"market-signals/database"
	"market-signals/handlers"
	"market-signals/logger"
	"market-signals/services"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (.yaml or .toml)")
	seedOnly := flag.Bool("seed", false, "create tables, seed an empty store and exit")
	flag.Parse()

	if err := run(*configPath, *seedOnly); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seedOnly bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	store, err := database.Open(cfg.Database, log.With("component", "store"))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Seeding runs once here, before the listener accepts traffic.
	if seedOnly || cfg.Seed.OnStartup {
		if err := store.Initialize(ctx); err != nil {
			return fmt.Errorf("initialize store: %w", err)
		}
	}
	if seedOnly {
		log.Info("Store initialized", "path", cfg.Database.Path)
		return nil
	}

	svc := services.NewQueryService(store, log.With("component", "query"), services.WithLimit(cfg.Query.DefaultLimit))
	h := handlers.NewSignalsHandler(svc, store, log.With("component", "http"))

	gin.SetMode(cfg.Server.Mode)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handlers.NewRouter(cfg.Server, h, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting market signals API", "addr", cfg.Server.Addr, "base_path", cfg.Server.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
