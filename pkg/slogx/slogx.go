// Package slogx configures the process-wide structured logger and carries it
// through request contexts.
package slogx

import (
	"log/slog"
	"os"
	"strings"
)

// Config selects the verbosity and output format of the service logger.
type Config struct {
	Service string
	Version string
	Env     string
	Level   string // "debug", "info", "warn" or "error"
	Format  string // "json" (default) or "text"
}

// New builds a logger tagged with the service identity, installs it as the
// slog default, and returns it. Source locations are attached in dev only.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     levelFrom(cfg.Level),
		AddSource: cfg.Env == "dev",
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(
		"service", cfg.Service,
		"version", cfg.Version,
		"env", cfg.Env,
	)
	slog.SetDefault(logger)
	return logger
}

// levelFrom parses a level name, falling back to info on anything unknown.
func levelFrom(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
