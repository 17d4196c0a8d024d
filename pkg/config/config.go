// Package config loads service settings from flags and the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"itemsvc/pkg/logger"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Host is fixed: the service always listens on all interfaces.
const Host = "0.0.0.0"

// Defaults.
const (
	DefaultPort            = 5000
	DefaultServiceName     = "backend"
	DefaultSQLitePath      = "./data/items.db"
	DefaultRedisAddr       = "localhost:6379"
	DefaultShutdownTimeout = 5 * time.Second
)

// Config validation errors.
var (
	ErrPortInvalid        = errors.New("port must be between 1 and 65535")
	ErrStoreUnknown       = errors.New("unknown store backend")
	ErrDatabaseURLMissing = errors.New("database_url is required for the postgres store")
	ErrProbabilityInvalid = errors.New("trace_probability must be between 0 and 1")
	ErrLogLevelInvalid    = errors.New("unknown log level")
)

// Config holds the service settings.
type Config struct {
	Port             int           `mapstructure:"port"`
	ServiceName      string        `mapstructure:"service_name"`
	Store            string        `mapstructure:"store"`
	DatabaseURL      string        `mapstructure:"database_url"`
	SQLitePath       string        `mapstructure:"sqlite_path"`
	RedisAddr        string        `mapstructure:"redis_addr"`
	OTELHost         string        `mapstructure:"otel_host"`
	TraceProbability float64       `mapstructure:"trace_probability"`
	LogLevel         string        `mapstructure:"log_level"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
}

var envKeys = map[string]string{
	"port":              "PORT",
	"service_name":      "SERVICE_NAME",
	"store":             "STORE",
	"database_url":      "DATABASE_URL",
	"sqlite_path":       "SQLITE_PATH",
	"redis_addr":        "REDIS_ADDR",
	"otel_host":         "OTEL_HOST",
	"trace_probability": "TRACE_PROBABILITY",
	"log_level":         "LOG_LEVEL",
	"shutdown_timeout":  "SHUTDOWN_TIMEOUT",
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("service_name", DefaultServiceName)
	v.SetDefault("store", StoreMemory)
	v.SetDefault("sqlite_path", DefaultSQLitePath)
	v.SetDefault("redis_addr", DefaultRedisAddr)
	v.SetDefault("trace_probability", 1.0)
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", DefaultShutdownTimeout)
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
}

// Load reads v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrPortInvalid
	}
	switch c.Store {
	case StoreMemory, StoreSQLite, StoreRedis:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return ErrDatabaseURLMissing
		}
	default:
		return fmt.Errorf("%w: %q", ErrStoreUnknown, c.Store)
	}
	if c.TraceProbability < 0 || c.TraceProbability > 1 {
		return ErrProbabilityInvalid
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrLogLevelInvalid, c.LogLevel)
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(Host, strconv.Itoa(c.Port))
}
