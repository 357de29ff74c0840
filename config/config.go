package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var ErrInvalidConfig = errors.New("invalid config")

// DefaultCatalogDSN keeps the menu in an in-memory SQLite database, so a run
// leaves nothing behind on disk.
const DefaultCatalogDSN = "file::memory:?cache=shared"

type Config struct {
	Catalog CatalogConfig
	Log     LogConfig
}

type CatalogConfig struct {
	DSN      string
	SeedMenu bool
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads .env files (when present) and then the environment. Without
// arguments it looks for .env in the working directory.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("ORDERING_SEED_MENU", "true"))
	if err != nil {
		return nil, fmt.Errorf("%w: ORDERING_SEED_MENU: %v", ErrInvalidConfig, err)
	}

	cfg := &Config{
		Catalog: CatalogConfig{
			DSN:      getEnv("ORDERING_CATALOG_DSN", DefaultCatalogDSN),
			SeedMenu: seed,
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("ORDERING_LOG_LEVEL", "warn")),
			Format: strings.ToLower(getEnv("ORDERING_LOG_FORMAT", "text")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: ORDERING_LOG_LEVEL: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: ORDERING_LOG_FORMAT must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	if strings.TrimSpace(c.Catalog.DSN) == "" {
		return fmt.Errorf("%w: ORDERING_CATALOG_DSN is empty", ErrInvalidConfig)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
