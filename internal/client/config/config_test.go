package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "hub.db", c.StorePath)
	assert.Equal(t, BackendMock, c.Backend)
	assert.Equal(t, time.Second, c.Latency)
	assert.Empty(t, c.TokenSecret)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, "info", c.LogLevel)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_NoArgs(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, cfg)
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"store_path":   "from-file.db",
		"backend":      "local",
		"token_secret": "s3cret",
		"latency":      "250ms",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-a", "from-flag.db"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag.db", cfg.StorePath)
	assert.Equal(t, BackendLocal, cfg.Backend)
	assert.Equal(t, "s3cret", cfg.TokenSecret)
	assert.Equal(t, 250*time.Millisecond, cfg.Latency)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Backend = "grpc" }},
		{"local without secret", func(c *Config) { c.Backend = BackendLocal }},
		{"negative latency", func(c *Config) { c.Latency = -time.Second }},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }},
		{"empty store", func(c *Config) { c.StorePath = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadConfig_RejectsInvalid(t *testing.T) {
	_, err := LoadConfig([]string{"-b", "local"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
