// Package config reads runtime settings from environment variables.
//
// Every setting has a default, so the playground runs with no environment at
// all. CLI flags in cmd/playground override whatever Load returns.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sakif/go-examples/internal/async"
)

// Store backends for the Record Manager.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config keeps runtime settings for the playground.
type Config struct {
	Port       int
	LogLevel   slog.Level
	UserStore  string
	DBPath     string
	FetchDelay time.Duration
}

// Default returns the settings used when no environment is set.
func Default() Config {
	return Config{
		Port:       8080,
		LogLevel:   slog.LevelInfo,
		UserStore:  StoreMemory,
		DBPath:     ":memory:",
		FetchDelay: async.DefaultDelay,
	}
}

// Load reads PORT, LOG_LEVEL, USER_STORE, DB_PATH and FETCH_DELAY from the
// environment, falling back to Default for anything unset.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if raw := strings.TrimSpace(getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		cfg.Port = port
	}

	if raw := strings.TrimSpace(getenv("LOG_LEVEL")); raw != "" {
		level, err := ParseLevel(raw)
		if err != nil {
			return cfg, err
		}
		cfg.LogLevel = level
	}

	if raw := strings.TrimSpace(getenv("USER_STORE")); raw != "" {
		cfg.UserStore = strings.ToLower(raw)
	}

	if raw := strings.TrimSpace(getenv("DB_PATH")); raw != "" {
		cfg.DBPath = raw
	}

	if raw := strings.TrimSpace(getenv("FETCH_DELAY")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid FETCH_DELAY %q: %w", raw, err)
		}
		cfg.FetchDelay = d
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	switch c.UserStore {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("unknown user store %q (want %s or %s)", c.UserStore, StoreMemory, StoreSQLite)
	}
	if c.FetchDelay < 0 {
		return fmt.Errorf("fetch delay must not be negative, got %s", c.FetchDelay)
	}
	return nil
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
	return level, nil
}

// NewLogger builds the text logger every entry point uses.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: c.LogLevel}))
}
