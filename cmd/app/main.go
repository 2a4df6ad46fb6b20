package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/SlotMock_Go/internal/config"
	"github.com/osse101/SlotMock_Go/internal/domain"
	"github.com/osse101/SlotMock_Go/internal/ledger"
	"github.com/osse101/SlotMock_Go/internal/notification"
	"github.com/osse101/SlotMock_Go/internal/outcome"
	"github.com/osse101/SlotMock_Go/internal/registry"
	"github.com/osse101/SlotMock_Go/internal/round"
	"github.com/osse101/SlotMock_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	initLogger(cfg)

	ledgerStore := ledger.NewStore([]domain.Player{
		{
			UserID:   cfg.SeedUserID,
			Balance:  cfg.SeedBalance,
			Currency: cfg.SeedCurrency,
		},
	})
	registryStore := registry.NewStore()
	notificationLog := notification.NewLog()
	generator := outcome.NewGenerator()

	roundService := round.NewService(ledgerStore, registryStore, notificationLog, generator)

	srv := server.NewServer(cfg.Port, ledgerStore, roundService)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Fatalf("Server failed to start: %v", err)
	case sig := <-signalChan:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}
