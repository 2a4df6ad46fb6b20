package main

import (
	"github.com/osse101/SlotMock_Go/internal/config"
	"github.com/osse101/SlotMock_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info is only worth the noise in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		"slotmock",
		cfg.Environment,
		addSource,
	))
}
