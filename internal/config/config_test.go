package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "completion", cfg.ExportOrder)
	assert.Empty(t, cfg.RedisURI)
	assert.Empty(t, cfg.MongoURI)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URI", "redis://cache:6379")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("EXPORT_ORDER", "video")
	t.Setenv("EXPORT_TIMEZONE", "Asia/Tokyo")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "cache:6379", cfg.RedisURI)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "video", cfg.ExportOrder)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}
