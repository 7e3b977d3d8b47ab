// Package config provides application configuration management.
// It loads settings from environment variables (optionally from a .env file)
// and reads credentials from secret files when <NAME>_FILE is set.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Message Service Configuration
	APIBaseURL      string
	APIKey          string // sent as X-CS571-ID
	WebBaseURL      string // origin of READ MORE links
	UpstreamTimeout time.Duration

	// Rendering
	DisplayTimezone string // IANA zone used for post times
	DefaultLanguage string // BCP 47 tag used when a request has none

	// Sentry Configuration (disabled when DSN is empty)
	SentryDSN         string
	SentryEnvironment string
	SentrySampleRate  float64

	// Better Stack Configuration (disabled when Token is empty)
	BetterStackToken    string
	BetterStackEndpoint string

	// Metrics Authentication
	MetricsAuthEnabled bool
	MetricsUsername    string
	MetricsPassword    string
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	var errs []error
	secret := func(key string) string {
		v, err := getSecretEnv(key)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg := &Config{
		Port:            getEnv(EnvPort, "53705"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, GracefulShutdown),

		APIBaseURL:      getEnv(EnvAPIBaseURL, "https://cs571.org/api/f23/hw11"),
		APIKey:          secret(EnvAPIKey),
		WebBaseURL:      getEnv(EnvWebBaseURL, "https://cs571.org"),
		UpstreamTimeout: getDurationEnv(EnvUpstreamTimeout, UpstreamRequest),

		DisplayTimezone: getEnv(EnvDisplayTimezone, "America/Chicago"),
		DefaultLanguage: getEnv(EnvDefaultLanguage, "en-US"),

		SentryDSN:         secret(EnvSentryDSN),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),

		BetterStackToken:    secret(EnvBetterStackToken),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),

		MetricsAuthEnabled: getBoolEnv(EnvMetricsAuthEnabled, false),
		MetricsUsername:    getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword:    secret(EnvMetricsPassword),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, fmt.Errorf("%s (or %s%s) is required", EnvAPIKey, EnvAPIKey, fileSuffix))
	}
	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("%s must be a port number, got %q", EnvPort, c.Port))
	}
	if err := validateHTTPURL(c.APIBaseURL); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvAPIBaseURL, err))
	}
	if err := validateHTTPURL(c.WebBaseURL); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvWebBaseURL, err))
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvUpstreamTimeout, c.UpstreamTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvShutdownTimeout, c.ShutdownTimeout))
	}
	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvDisplayTimezone, err))
	}
	if c.SentrySampleRate < 0 || c.SentrySampleRate > 1 {
		errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", EnvSentrySampleRate, c.SentrySampleRate))
	}
	if c.MetricsAuthEnabled && c.MetricsPassword == "" {
		errs = append(errs, fmt.Errorf("%s is required when %s is true", EnvMetricsPassword, EnvMetricsAuthEnabled))
	}

	return errors.Join(errs...)
}

// SentryEnabled reports whether error reporting is configured.
func (c *Config) SentryEnabled() bool {
	return c.SentryDSN != ""
}

// BetterStackEnabled reports whether remote log shipping is configured.
func (c *Config) BetterStackEnabled() bool {
	return c.BetterStackToken != ""
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) URL, got %q", raw)
	}
	return nil
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getSecretEnv returns key's value, or the trimmed contents of the file
// named by key_FILE when key itself is unset.
func getSecretEnv(key string) (string, error) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value, nil
	}
	path := strings.TrimSpace(os.Getenv(key + fileSuffix))
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s%s: %w", key, fileSuffix, err)
	}
	return strings.TrimSpace(string(b)), nil
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
