package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	Environment     string
	LogLevel        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	Store     Store
	Events    Events
	RateLimit RateLimit
}

// Store selects and configures the entity store backend.
type Store struct {
	Driver      string
	DatabaseURL string
	SQLitePath  string
}

// Events configures domain event publishing. An empty URL disables the broker.
type Events struct {
	AMQPURL  string
	Exchange string
}

// RateLimit configures the per-client token bucket. RPS <= 0 disables limiting.
type RateLimit struct {
	RPS   float64
	Burst int
}

// LoadDotEnv reads a .env file when present. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:            getEnv("LIBRARY_ADDR", ":8080"),
		Environment:     getEnv("LIBRARY_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Store: Store{
			Driver:      getEnv("STORE_DRIVER", DriverMemory),
			DatabaseURL: os.Getenv("DATABASE_URL"),
			SQLitePath:  getEnv("SQLITE_PATH", "library.db"),
		},
		Events: Events{
			AMQPURL:  os.Getenv("AMQP_URL"),
			Exchange: getEnv("AMQP_EXCHANGE", "library.events"),
		},
		RateLimit: RateLimit{RPS: 20, Burst: 40},
	}

	var err error
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return Server{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return Server{}, err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimit.RPS, err = strconv.ParseFloat(v, 64); err != nil {
			return Server{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if cfg.RateLimit.Burst, err = strconv.Atoi(v); err != nil {
			return Server{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Server) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Store.Driver == DriverSQLite && c.Store.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER=%s", DriverSQLite)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
