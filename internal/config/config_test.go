package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/UnknownOlympus/geocoord/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "nominatim", cfg.ProviderType)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 50, cfg.RateLimit)
	assert.Equal(t, 4, cfg.Workers)
	assert.InDelta(t, 6371.0088, cfg.SphereRadius, 0)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Empty(t, cfg.MetricsFile)
}

func TestMustLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEOCOORD_ENV", "local")
	t.Setenv("GEOCOORD_PROVIDER_TYPE", "google")
	t.Setenv("GEOCOORD_PROVIDER_KEY", "testAPIKey")
	t.Setenv("GEOCOORD_RATE_LIMIT", "20")
	t.Setenv("GEOCOORD_WORKERS", "10")
	t.Setenv("GEOCOORD_SPHERE_RADIUS", "1")
	t.Setenv("GEOCOORD_TIMEOUT", "30s")
	t.Setenv("GEOCOORD_METRICS_FILE", "/tmp/geocoord.prom")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "google", cfg.ProviderType)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, 20, cfg.RateLimit)
	assert.Equal(t, 10, cfg.Workers)
	assert.InDelta(t, 1.0, cfg.SphereRadius, 0)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/geocoord.prom", cfg.MetricsFile)
}

func TestMustLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "env: development\nworkers: 8\nprovider_type: google\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "geocoord.yaml"), []byte(yaml), 0o600))
	t.Chdir(dir)
	t.Setenv("GEOCOORD_PROVIDER_TYPE", "nominatim")

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "nominatim", cfg.ProviderType, "environment overrides the file")
}

func TestMustLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
		msg   string
	}{
		{key: "GEOCOORD_RATE_LIMIT", value: "fast", msg: "failed to parse rate limit from configuration, must be an integer type"},
		{key: "GEOCOORD_WORKERS", value: "error_value", msg: "failed to parse workers from configuration, must be an integer type"},
		{key: "GEOCOORD_SPHERE_RADIUS", value: "big", msg: "failed to parse sphere radius from configuration, must be a non-negative number"},
		{key: "GEOCOORD_SPHERE_RADIUS", value: "-1", msg: "failed to parse sphere radius from configuration, must be a non-negative number"},
		{key: "GEOCOORD_TIMEOUT", value: "soon", msg: "failed to parse timeout from configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			assert.PanicsWithValue(t, tt.msg, func() {
				config.MustLoad()
			})
		})
	}
}

func TestMustLoad_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "geocoord.yaml"), []byte("workers: [\n"), 0o600))
	t.Chdir(dir)

	assert.PanicsWithValue(t, "failed to read configuration file", func() {
		config.MustLoad()
	})
}
