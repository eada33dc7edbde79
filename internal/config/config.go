// Package config provides configuration management for the featured-content server.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default configuration values.
const (
	DefaultServerPort       = 3000
	DefaultLogLevel         = "info"
	DefaultShutdownTimeout  = 30 * time.Second
	DefaultMetricsEnabled   = true
	DefaultCORSOrigins      = "*"
	DefaultListDelayMin     = 100 * time.Millisecond
	DefaultListDelayMax     = 500 * time.Millisecond
	DefaultWebSocketEnabled = true
)

// Environment variable names.
const (
	EnvServerPort       = "APP_SERVER_PORT"
	EnvPort             = "PORT"
	EnvLogLevel         = "APP_LOG_LEVEL"
	EnvShutdownTimeout  = "APP_SHUTDOWN_TIMEOUT"
	EnvMetricsEnabled   = "APP_METRICS_ENABLED"
	EnvCORSOrigins      = "APP_CORS_ALLOWED_ORIGINS"
	EnvListDelayMin     = "APP_LIST_DELAY_MIN"
	EnvListDelayMax     = "APP_LIST_DELAY_MAX"
	EnvSeedFile         = "APP_SEED_FILE"
	EnvWebSocketEnabled = "APP_WEBSOCKET_ENABLED"
	EnvEnvFile          = "ENV_FILE"
)

// Config holds the application configuration.
type Config struct {
	// Server settings.
	ServerPort      int
	LogLevel        string
	ShutdownTimeout time.Duration
	MetricsEnabled  bool

	// Origins allowed by the CORS middleware; "*" allows any origin.
	CORSAllowedOrigins []string

	// Simulated latency for the list endpoint. A zero max disables it.
	ListDelayMin time.Duration
	ListDelayMax time.Duration

	// Path to a YAML seed file; empty uses the built-in seed.
	SeedFile string

	WebSocketEnabled bool
}

// Validation errors.
var (
	ErrInvalidServerPort      = errors.New("server port must be between 1 and 65535")
	ErrInvalidLogLevel        = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidShutdownTimeout = errors.New("shutdown timeout must be positive")
	ErrInvalidListDelay       = errors.New("list delay min must be >= 0 and not exceed max")
	ErrNoCORSOrigins          = errors.New("at least one CORS origin must be configured")
)

// Load reads configuration from environment variables with defaults.
// .env files are loaded first and never override variables that are
// already set.
func Load() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}

	cfg := &Config{
		ServerPort:         DefaultServerPort,
		LogLevel:           DefaultLogLevel,
		ShutdownTimeout:    DefaultShutdownTimeout,
		MetricsEnabled:     DefaultMetricsEnabled,
		CORSAllowedOrigins: []string{DefaultCORSOrigins},
		ListDelayMin:       DefaultListDelayMin,
		ListDelayMax:       DefaultListDelayMax,
		WebSocketEnabled:   DefaultWebSocketEnabled,
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadEnvFiles loads ENV_FILE when set, otherwise .env.local then .env.
// Missing files are ignored.
func loadEnvFiles() error {
	if envFile := os.Getenv(EnvEnvFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}

	return nil
}

// loadFromEnv loads configuration values from environment variables.
func (c *Config) loadFromEnv() error {
	if err := c.loadServerEnv(); err != nil {
		return err
	}

	if err := c.loadContentEnv(); err != nil {
		return err
	}

	return nil
}

// loadServerEnv loads server-related environment variables.
// APP_SERVER_PORT wins over PORT.
func (c *Config) loadServerEnv() error {
	for _, name := range []string{EnvPort, EnvServerPort} {
		if val := os.Getenv(name); val != "" {
			port, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", name, err)
			}
			c.ServerPort = port
		}
	}

	if val := os.Getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}

	if val := os.Getenv(EnvShutdownTimeout); val != "" {
		timeout, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvShutdownTimeout, err)
		}
		c.ShutdownTimeout = timeout
	}

	if val := os.Getenv(EnvMetricsEnabled); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMetricsEnabled, err)
		}
		c.MetricsEnabled = enabled
	}

	if val := os.Getenv(EnvCORSOrigins); val != "" {
		c.CORSAllowedOrigins = splitList(val)
	}

	return nil
}

// loadContentEnv loads the content-serving environment variables.
func (c *Config) loadContentEnv() error {
	if val := os.Getenv(EnvListDelayMin); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvListDelayMin, err)
		}
		c.ListDelayMin = d
	}

	if val := os.Getenv(EnvListDelayMax); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvListDelayMax, err)
		}
		c.ListDelayMax = d
	}

	if val := os.Getenv(EnvSeedFile); val != "" {
		c.SeedFile = val
	}

	if val := os.Getenv(EnvWebSocketEnabled); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvWebSocketEnabled, err)
		}
		c.WebSocketEnabled = enabled
	}

	return nil
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return ErrInvalidServerPort
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return ErrInvalidLogLevel
	}

	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}

	if c.ListDelayMin < 0 || c.ListDelayMax < 0 {
		return ErrInvalidListDelay
	}

	if c.ListDelayMax > 0 && c.ListDelayMin > c.ListDelayMax {
		return ErrInvalidListDelay
	}

	if len(c.CORSAllowedOrigins) == 0 {
		return ErrNoCORSOrigins
	}

	return nil
}

// Address returns the server address in host:port format.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

// splitList splits a comma separated value, dropping blanks.
func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
