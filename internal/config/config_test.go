package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, "training_data.json", cfg.Catalog.TrainingDataPath)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, "console", cfg.Observability.LogFormat)
	assert.Empty(t, cfg.Observability.LogFile.Path)

	require.NoError(t, cfg.Validate())
}

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_MalformedYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	raw := `
server:
  host: 127.0.0.1
  port: 9090
  cors_allowed_origins:
    - https://shop.example.com
  rate_limit:
    enabled: true
    requests_per_second: 5
    burst: 10
catalog:
  training_data_path: /data/perfumes.json
observability:
  log_level: debug
  log_format: json
  log_file:
    path: /var/log/concierge.log
    max_size_mb: 50
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, []string{"https://shop.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, 5.0, cfg.Server.RateLimit.RequestsPerSecond)
	assert.Equal(t, "/data/perfumes.json", cfg.Catalog.TrainingDataPath)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "/var/log/concierge.log", cfg.Observability.LogFile.Path)
	assert.Equal(t, 50, cfg.Observability.LogFile.MaxSizeMB)

	// Fields the file omits keep their defaults.
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3, cfg.Observability.LogFile.MaxBackups)
}

func TestLoad_EnvOverridesWin(t *testing.T) {
	raw := `
server:
  host: 127.0.0.1
  port: 9090
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("TRAINING_DATA_PATH", "/tmp/data.json")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "/tmp/concierge.log")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, "/tmp/data.json", cfg.Catalog.TrainingDataPath)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
	assert.Equal(t, "/tmp/concierge.log", cfg.Observability.LogFile.Path)
}

func TestLoad_InvalidPortEnvIgnored(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "port too low",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "invalid server port",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Observability.LogLevel = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Observability.LogFormat = "plain" },
			wantErr: "invalid log format",
		},
		{
			name:    "empty training data path",
			mutate:  func(c *Config) { c.Catalog.TrainingDataPath = "" },
			wantErr: "training data path",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = -time.Second },
			wantErr: "timeouts must not be negative",
		},
		{
			name: "rate limit without positive rps",
			mutate: func(c *Config) {
				c.Server.RateLimit.Enabled = true
				c.Server.RateLimit.RequestsPerSecond = 0
			},
			wantErr: "requests_per_second",
		},
		{
			name: "rate limit without burst",
			mutate: func(c *Config) {
				c.Server.RateLimit.Enabled = true
				c.Server.RateLimit.Burst = 0
			},
			wantErr: "burst",
		},
		{
			name: "disabled rate limit skips checks",
			mutate: func(c *Config) {
				c.Server.RateLimit.Enabled = false
				c.Server.RateLimit.RequestsPerSecond = 0
				c.Server.RateLimit.Burst = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestResolveRelativePath(t *testing.T) {
	assert.Equal(t, "/abs/data.json", ResolveRelativePath("/etc/concierge/config.yaml", "/abs/data.json"))
	assert.Equal(t, filepath.Join("/etc/concierge", "data.json"), ResolveRelativePath("/etc/concierge/config.yaml", "data.json"))
}
