package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Events   EventsConfig   `mapstructure:"events"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// ShutdownTimeout returns the graceful shutdown window as a duration.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// DatabaseConfig contains the connection and pool settings for PostgreSQL.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// EventsConfig controls publication of entity change events.
// Publishing is disabled while KafkaBrokers is empty.
type EventsConfig struct {
	KafkaBrokers []string `mapstructure:"kafka_brokers" validate:"dive,hostname_port"`
	KafkaTopic   string   `mapstructure:"kafka_topic"   validate:"required_with=KafkaBrokers"`
	BufferSize   int      `mapstructure:"buffer_size"   validate:"gte=1"`
}

// KafkaEnabled reports whether at least one broker was configured.
func (e EventsConfig) KafkaEnabled() bool {
	return len(e.KafkaBrokers) > 0
}
