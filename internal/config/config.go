// Package config provides unified configuration loading for the concierge
// service. Supports YAML files, environment variables, and programmatic
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the concierge service.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string          `yaml:"host"`
	Port               int             `yaml:"port"`
	ReadTimeout        time.Duration   `yaml:"read_timeout"`
	WriteTimeout       time.Duration   `yaml:"write_timeout"`
	IdleTimeout        time.Duration   `yaml:"idle_timeout"`
	RequestTimeout     time.Duration   `yaml:"request_timeout"`
	GracefulShutdown   time.Duration   `yaml:"graceful_shutdown"`
	CORSAllowedOrigins []string        `yaml:"cors_allowed_origins"`
	RateLimit          RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig holds per-client request throttling settings.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// CatalogConfig holds training data source settings.
type CatalogConfig struct {
	TrainingDataPath string `yaml:"training_data_path"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string        `yaml:"log_level"`
	LogFormat string        `yaml:"log_format"`
	LogFile   LogFileConfig `yaml:"log_file"`
}

// LogFileConfig holds optional rotating log file settings. Rotation kicks in
// only when Path is non-empty.
type LogFileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8000,
			ReadTimeout:        15 * time.Second,
			WriteTimeout:       30 * time.Second,
			IdleTimeout:        60 * time.Second,
			RequestTimeout:     60 * time.Second,
			GracefulShutdown:   10 * time.Second,
			CORSAllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerSecond: 10,
				Burst:             20,
			},
		},
		Catalog: CatalogConfig{
			TrainingDataPath: "training_data.json",
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "console",
			LogFile: LogFileConfig{
				MaxSizeMB:  100,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Observability.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Observability.LogLevel)
	}

	if c.Observability.LogFormat != "console" && c.Observability.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s", c.Observability.LogFormat)
	}

	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 ||
		c.Server.RequestTimeout < 0 || c.Server.GracefulShutdown < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}

	if c.Catalog.TrainingDataPath == "" {
		return fmt.Errorf("training data path must not be empty")
	}

	if c.Server.RateLimit.Enabled {
		if c.Server.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate limit requests_per_second must be positive")
		}
		if c.Server.RateLimit.Burst < 1 {
			return fmt.Errorf("rate limit burst must be at least 1")
		}
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Observability.LogFormat == "console"
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.Server.CORSAllowedOrigins = origins
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v == "true" {
		cfg.Server.RateLimit.Enabled = true
	}

	if v := os.Getenv("TRAINING_DATA_PATH"); v != "" {
		cfg.Catalog.TrainingDataPath = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}

	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Observability.LogFile.Path = v
	}
}

// ResolveRelativePath resolves a path relative to the config file location.
func ResolveRelativePath(configPath, targetPath string) string {
	if filepath.IsAbs(targetPath) {
		return targetPath
	}
	configDir := filepath.Dir(configPath)
	return filepath.Join(configDir, targetPath)
}
