package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/api"
	"storefront/cmd"
	"storefront/internal/adapters/out/storage"
	"storefront/internal/core/domain/model/menu"
	"storefront/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	loadDotEnv()

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := logging.New(configs.LogLevel, configs.LogFormat)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err = api.Load(ctx); err != nil {
		log.Fatalf("Error loading API document: %v", err)
	}

	catalog, err := menu.Load()
	if err != nil {
		log.Fatalf("Error loading menu: %v", err)
	}

	db, err := storage.Open(configs.Storage())
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer func() {
		_ = storage.Close(db)
	}()

	app := cmd.NewCompositionRoot(configs, db, catalog, logger)
	startWebServer(ctx, app, configs, logger)
}

// loadDotEnv reads .env when present; a missing file is not an error.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := app.CreateRouter()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "port", configs.HTTPPort, "db_driver", configs.DBDriver)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
		}
		return
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", configs.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
