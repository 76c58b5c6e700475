package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	Port         int
	DBPath       string
	StoreBackend string
	Environment  string
	LogLevel     string
	APIKey       string
	// Seeding
	SeedFile string
	// Shutdown
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            envInt("PORT", 5000),
		DBPath:          envStr("BRAINSTORM_DB_PATH", "./data/brainstorm.db"),
		StoreBackend:    envStr("STORE_BACKEND", BackendSQLite),
		Environment:     envStr("APP_ENV", "development"),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		APIKey:          envStr("API_KEY", ""),
		SeedFile:        envStr("SEED_FILE", ""),
		ShutdownTimeout: time.Duration(envInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the built-in test session should be seeded.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	switch c.StoreBackend {
	case BackendSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("BRAINSTORM_DB_PATH must not be empty")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendSQLite, BackendMemory, c.StoreBackend)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
