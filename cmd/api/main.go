package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mivet-auth/internal/adapters/storage/postgres"
	"mivet-auth/internal/config"
	"mivet-auth/internal/platform/logger"
	"mivet-auth/internal/router"
)

// @title MiVet Login API
// @version 1.0
// @description Gestión de login, registro y mascotas. Los tokens emitidos no se verifican en este servicio; la verificación vive en un servicio aparte.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	var db *sql.DB
	if cfg.DB.Configured() {
		db, err = postgres.Open(cfg.DB.DSN())
		if err != nil {
			appLog.Error("failed to connect to database", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
	} else {
		appLog.Warn("database not configured, using in-memory store (dev mode)", nil)
	}

	r := router.NewRouter(router.Options{
		SecretKey: cfg.SecretKey,
		DB:        db,
		Logger:    appLog,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	go func() {
		appLog.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("server error", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	appLog.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("error during shutdown", map[string]any{"error": err.Error()})
	}
}
