package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())

	v, err := LoadConfig()
	require.NoError(t, err)

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "https://restcountries.com/v3.1", cfg.Upstream.CountriesBaseURL)
	assert.Equal(t, "https://worldtimeapi.org/api/timezone", cfg.Upstream.TimeBaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 1, cfg.Upstream.TimeConcurrency)
	assert.Equal(t, "public", cfg.Flags.PublicDir)
	assert.Equal(t, 250, cfg.Flags.MaxWidth)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9094"}, cfg.Kafka.Brokers)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: "9000"
  mode: "release"
upstream:
  time_concurrency: 4
flags:
  public_dir: "/tmp/flags"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0644))
	t.Setenv("CONFIG_PATH", dir)

	v, err := LoadConfig()
	require.NoError(t, err)

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 4, cfg.Upstream.TimeConcurrency)
	assert.Equal(t, "/tmp/flags", cfg.Flags.PublicDir)
	// untouched keys keep their defaults
	assert.Equal(t, 250, cfg.Flags.MaxWidth)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())
	t.Setenv("GATEWAY_SERVER_PORT", "7070")
	t.Setenv("GATEWAY_UPSTREAM_TIMEOUT", "3s")

	v, err := LoadConfig()
	require.NoError(t, err)

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
}

func TestParseConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "zero max width", key: "GATEWAY_FLAGS_MAX_WIDTH", val: "0"},
		{name: "zero time concurrency", key: "GATEWAY_UPSTREAM_TIME_CONCURRENCY", val: "0"},
		{name: "bad countries url", key: "GATEWAY_UPSTREAM_COUNTRIES_BASE_URL", val: "not a url"},
		{name: "unknown gin mode", key: "GATEWAY_SERVER_MODE", val: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_PATH", t.TempDir())
			t.Setenv(tt.key, tt.val)

			v, err := LoadConfig()
			require.NoError(t, err)

			_, err = ParseConfig(v)
			assert.Error(t, err)
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("GATEWAY_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("GATEWAY_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("GATEWAY_MISSING_KEY", "fallback"))
}
