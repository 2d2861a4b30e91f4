package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "hello")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_INT64", "5242880")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_FLOAT", "20.5")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_BAD_DURATION", "soon")

	assert.Equal(t, "hello", GetEnv("TEST_STRING", "x"))
	assert.Equal(t, "x", GetEnv("TEST_MISSING", "x"))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("TEST_BAD_INT", 1))
	assert.Equal(t, 7, GetEnvAsInt("TEST_MISSING", 7))
	assert.Equal(t, int64(5242880), GetEnvAsInt64("TEST_INT64", 0))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.InDelta(t, 20.5, GetEnvAsFloat("TEST_FLOAT", 0), 1e-9)
	assert.Equal(t, 90*time.Second, GetEnvAsDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetEnvAsDuration("TEST_BAD_DURATION", time.Minute))
}

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, 20.0, cfg.Search.DefaultRadiusKm)
	assert.Equal(t, 50, cfg.Search.ResultLimit)
	assert.Equal(t, 24*time.Hour, cfg.Location.TTL)
	assert.Equal(t, "senyum_location", cfg.Location.CookieName)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "pgx", cfg.Database.Driver)
}

func TestInitConfig_LoadsEnvFileLocally(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	dir := t.TempDir()
	path := filepath.Join(dir, "directory.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_PORT=9123\nSEARCH_DEFAULT_RADIUS_KM=15\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("SEARCH_DEFAULT_RADIUS_KM")
	})

	cfg := InitConfig(path)

	assert.Equal(t, 9123, cfg.Server.Port)
	assert.Equal(t, 15.0, cfg.Search.DefaultRadiusKm)
}
