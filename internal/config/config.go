package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the service settings. Values come from defaults, then an
// optional YAML file, then environment variables.
type Config struct {
	Port     string        `yaml:"port"`
	Engine   string        `yaml:"engine"`
	LogLevel string        `yaml:"log_level"`
	History  HistoryConfig `yaml:"history"`
}

// HistoryConfig selects where conversion history is stored.
type HistoryConfig struct {
	Driver      string `yaml:"driver"` // none, sqlite, postgres
	DBPath      string `yaml:"db_path"`
	DatabaseURL string `yaml:"database_url"`
	Limit       int    `yaml:"limit"`
}

const (
	EngineBuiltin = "builtin"
	EngineProj    = "proj"

	HistoryNone     = "none"
	HistorySqlite   = "sqlite"
	HistoryPostgres = "postgres"
)

func Default() *Config {
	return &Config{
		Port:     "8080",
		Engine:   EngineBuiltin,
		LogLevel: "info",
		History: HistoryConfig{
			Driver: HistorySqlite,
			DBPath: "data/history.db",
			Limit:  20,
		},
	}
}

// LoadDotEnv loads a .env file into the process environment when present.
// It reports whether a file was found.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load reads the YAML file at path on top of the defaults, applies
// environment overrides and validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("load config: read %q: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("ENGINE"); v != "" {
		c.Engine = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("HISTORY_DRIVER"); v != "" {
		c.History.Driver = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.History.DBPath = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.History.DatabaseURL = v
	}
	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HISTORY_LIMIT must be an integer: %w", err)
		}
		c.History.Limit = n
	}
	return nil
}

// Validate checks the settings for values the service cannot start with.
func (c *Config) Validate() error {
	c.Engine = strings.ToLower(strings.TrimSpace(c.Engine))
	switch c.Engine {
	case EngineBuiltin, EngineProj:
	default:
		return fmt.Errorf("unknown engine %q", c.Engine)
	}

	c.History.Driver = strings.ToLower(strings.TrimSpace(c.History.Driver))
	switch c.History.Driver {
	case HistoryNone:
	case HistorySqlite:
		if strings.TrimSpace(c.History.DBPath) == "" {
			return errors.New("history db_path is required for sqlite")
		}
	case HistoryPostgres:
		if strings.TrimSpace(c.History.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required for postgres history")
		}
	default:
		return fmt.Errorf("unknown history driver %q", c.History.Driver)
	}

	if c.History.Limit < 1 || c.History.Limit > 200 {
		return fmt.Errorf("history limit must be between 1 and 200, got %d", c.History.Limit)
	}

	return nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
