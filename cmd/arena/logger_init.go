package main

import (
	"github.com/osse101/EmojiBattler_Go/internal/config"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
)

// initLogger initializes the logger from the process configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == logger.EnvironmentDev

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
