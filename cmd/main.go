package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fridgemate/cmd/config"
	"fridgemate/internal/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := utils.LoadConfig("config.yaml")
	if err != nil {
		slog.Error("loading config", "error", err)
		return 1
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := config.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Error("opening store", "driver", cfg.StorageDriver, "error", err)
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("closing store", "error", err)
		}
	}()

	app, closeAccessLog, err := config.NewApp(ctx, store, cfg, log)
	if err != nil {
		log.Error("creating app", "error", err)
		return 1
	}
	defer closeAccessLog()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listen(":" + cfg.AppPort)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error("server error", "error", err)
			return 1
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
			return 1
		}
	}
	return 0
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
