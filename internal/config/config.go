// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendBadger   = "badger"
)

type Config struct {
	StoreBackend     string `env:"STORE_BACKEND,default=memory" validate:"oneof=memory dynamodb badger"`
	StateTable       string `env:"STATE_TABLE" validate:"required_if=StoreBackend dynamodb"`
	BadgerPath       string `env:"BADGER_PATH" validate:"required_if=StoreBackend badger"`
	ParamPrefix      string `env:"PARAM_PREFIX" validate:"required_with=ConnectorBaseURL"`
	ConnectorBaseURL string `env:"CONNECTOR_BASE_URL" validate:"omitempty,url"`
	BotID            string `env:"BOT_ID"`
	Timezone         string `env:"TIMEZONE,default=UTC" validate:"required,timezone"`
	LogLevel         string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
}

// Load reads and validates the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read environment: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// JSONLogger returns the structured logger used by the webhook.
func (c Config) JSONLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

// TextLogger returns the human-readable logger used by the console.
func (c Config) TextLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
