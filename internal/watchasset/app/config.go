package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BackendURL  string // Public base URL of this API (default derived from port)
	FrontendURL string // Base URL browsers are redirected back to

	SSOBaseURL      string // Required: external SSO provider base URL
	SSOClientID     string // Required: OAuth2 client id registered with the provider
	SSOClientSecret string // Required: OAuth2 client secret (fail fast when missing)
	SSORedirectURI  string // Optional: defaults to {BackendURL}/auth/callback

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./watchasset.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3001)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		BackendURL:      os.Getenv("BACKEND_URL"),
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		SSOBaseURL:      os.Getenv("SSO_BASE_URL"),
		SSOClientID:     os.Getenv("SSO_CLIENT_ID"),
		SSOClientSecret: os.Getenv("SSO_CLIENT_SECRET"),
		SSORedirectURI:  os.Getenv("SSO_REDIRECT_URI"),

		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "watchasset.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3001),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.BackendURL == "" {
		cfg.BackendURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	if cfg.SSORedirectURI == "" {
		cfg.SSORedirectURI = cfg.BackendURL + "/auth/callback"
	}

	return cfg
}

// Validate rejects configurations that would only fail later at
// authentication time. A missing client secret in particular must stop
// startup rather than surface as a confusing provider rejection.
func (c Config) Validate() error {
	if c.SSOBaseURL == "" {
		return errors.New("config: SSO_BASE_URL is required")
	}
	if c.SSOClientID == "" {
		return errors.New("config: SSO_CLIENT_ID is required")
	}
	if c.SSOClientSecret == "" {
		return errors.New("config: SSO_CLIENT_SECRET is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
