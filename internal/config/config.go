// Package config loads and validates application configuration from the
// environment and optional config files.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// DisplayTimezone is the IANA zone start dates are rendered in on the
	// public catalog (the ledger stores UTC).
	DisplayTimezone string `mapstructure:"display_timezone" validate:"required"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// RedisConfig contains the optional statistics-cache settings. When Addr is
// empty the reporting component serves straight from Postgres.
type RedisConfig struct {
	Addr            string `mapstructure:"addr"              validate:"omitempty,hostname_port"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db"                validate:"gte=0,lte=15"`
	StatsTTLSeconds int    `mapstructure:"stats_ttl_seconds" validate:"gte=0"`
}

// StatsCacheEnabled reports whether a Redis statistics cache is configured.
func (c RedisConfig) StatsCacheEnabled() bool {
	return c.Addr != ""
}
