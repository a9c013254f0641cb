package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"geoconv-service/internal/adapters/geodesy"
	"geoconv-service/internal/adapters/history"
	"geoconv-service/internal/api"
	"geoconv-service/internal/config"
	"geoconv-service/internal/platform/obs"
	"geoconv-service/internal/ports"
	"geoconv-service/internal/services"
)

// main is the application composition root.
// It wires the geodetic engine and history store behind ports and starts the HTTP server.
func main() {
	os.Exit(serve())
}

// serve returns the process exit code once every deferred cleanup has run.
func serve() int {
	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "geoconv.yaml"))
	if err != nil {
		log.Println(err)
		return 1
	}

	logger, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Println(err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return 1
	}
	return 0
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := geodesy.New(cfg.Engine)
	if err != nil {
		return err
	}
	defer engine.Close()

	store, err := history.Open(ctx, cfg.History.Driver, cfg.History.DBPath, cfg.History.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	// A nil *Store must not reach the handlers as a non-nil interface.
	var conversionLog ports.ConversionLog
	if store != nil {
		conversionLog = store.Log
	}

	converter := services.NewConverter(services.NewTransformCache(engine), conversionLog, logger)
	router := api.NewRouter(api.Deps{
		Converter:    converter,
		History:      conversionLog,
		HistoryLimit: cfg.History.Limit,
		Engine:       cfg.Engine,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("engine", cfg.Engine),
			zap.String("history", cfg.History.Driver),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
