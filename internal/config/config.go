package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// RequestTimeoutSeconds bounds the total handling time of a single
	// request, including any database work it performs. Requests that
	// exceed it are answered with 503.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`

	// Connection pool sizing. The pool is the only shared mutable state
	// between requests; acquisition beyond MaxOpenConns blocks until a
	// connection frees up or the request deadline expires.
	MaxOpenConns           int `mapstructure:"max_open_conns"            validate:"required,gte=1"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"            validate:"required,gte=0"`
	ConnMaxLifetimeMinutes int `mapstructure:"conn_max_lifetime_minutes" validate:"required,gte=1"`
}
