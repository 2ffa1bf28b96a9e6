package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/biztime-api/internal/config"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger installs the structured logger configured for the server
// and logs a summary of the loaded configuration.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auto_migrate", cfg.Database.AutoMigrate,
		"kafka_enabled", cfg.Events.KafkaEnabled())
	if cfg.Events.KafkaEnabled() {
		l.Debug("Kafka configuration",
			"brokers", len(cfg.Events.KafkaBrokers),
			"topic", cfg.Events.KafkaTopic)
	}

	return l, nil
}
