// Package config loads hrdash settings from a .env file, an optional YAML
// file and HRDASH_* environment variables, in that order of precedence
// (later wins).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	Addr      string `yaml:"addr"`       // HRDASH_ADDR, default ":8080"
	DBPath    string `yaml:"db"`         // HRDASH_DB, default "hrdash.db"
	Store     string `yaml:"store"`      // HRDASH_STORE, "sqlite" or "memory"
	PageSize  int    `yaml:"page_size"`  // HRDASH_PAGE_SIZE, default 10
	LogLevel  string `yaml:"log_level"`  // HRDASH_LOG_LEVEL, default "info"
	LogFormat string `yaml:"log_format"` // HRDASH_LOG_FORMAT, "text" or "json"
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Addr:      ":8080",
		DBPath:    "hrdash.db",
		Store:     "sqlite",
		PageSize:  10,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds the configuration. path names an optional YAML file; when it
// is empty HRDASH_CONFIG is consulted. A missing .env file is not an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Defaults()

	if path == "" {
		path = os.Getenv("HRDASH_CONFIG")
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	c.Addr = envOr("HRDASH_ADDR", c.Addr)
	c.DBPath = envOr("HRDASH_DB", c.DBPath)
	c.Store = envOr("HRDASH_STORE", c.Store)
	c.LogLevel = envOr("HRDASH_LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOr("HRDASH_LOG_FORMAT", c.LogFormat)

	if v := os.Getenv("HRDASH_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HRDASH_PAGE_SIZE: %w", err)
		}
		c.PageSize = n
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	switch c.Store {
	case "sqlite":
		if c.DBPath == "" {
			return errors.New("db must not be empty for the sqlite store")
		}
	case "memory":
	default:
		return fmt.Errorf("store must be sqlite or memory, got %q", c.Store)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
