package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 6, cfg.Browse.Limit)
	assert.Equal(t, "dark", cfg.Browse.Theme)
	assert.Equal(t, "mpv", cfg.Player.Path)
	assert.False(t, cfg.Player.NoVideo)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("REELIUM_BACKEND_URL", "http://scraper:9000")
	t.Setenv("REELIUM_TIMEOUT", "5s")
	t.Setenv("REELIUM_LIMIT", "12")
	t.Setenv("REELIUM_NO_VIDEO", "true")
	t.Setenv("LOG_FILE", "/tmp/reelium.log")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "http://scraper:9000", cfg.Backend.URL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 12, cfg.Browse.Limit)
	assert.True(t, cfg.Player.NoVideo)
	assert.Equal(t, "/tmp/reelium.log", cfg.Log.File)
}

func TestNew_InvalidValue(t *testing.T) {
	t.Setenv("REELIUM_LIMIT", "many")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read configuration")
}
