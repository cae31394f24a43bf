package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultInventoryFile = "inventory.txt"
	defaultLogLevel      = "warn"
)

// Config represents the full application configuration surface.
type Config struct {
	Inventory InventoryConfig
	Log       LogConfig
}

// InventoryConfig points at the flat file backing the inventory.
type InventoryConfig struct {
	FilePath string
}

// LogConfig holds structured logging options.
type LogConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine; defaults match running with no configuration.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Inventory: InventoryConfig{
			FilePath: getenvWithDefault("INVENTORY_FILE", defaultInventoryFile),
		},
		Log: LogConfig{
			Level: strings.ToLower(getenvWithDefault("LOG_LEVEL", defaultLogLevel)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(c.Inventory.FilePath) == "" {
		return errors.New("INVENTORY_FILE must not be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
