package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.CheckTimeout)
	assert.Equal(t, 64, cfg.BroadcastQueueSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.WSAllowedOrigin)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("CHECK_TIMEOUT", "250ms")
	t.Setenv("BROADCAST_QUEUE_SIZE", "8")
	t.Setenv("WS_ALLOWED_ORIGIN", "https://app.example.com")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.CheckTimeout)
	assert.Equal(t, 8, cfg.BroadcastQueueSize)
	assert.Equal(t, "https://app.example.com", cfg.WSAllowedOrigin)
}

func TestLoadRejectsNonPositiveSizes(t *testing.T) {
	t.Setenv("BROADCAST_QUEUE_SIZE", "-1")
	t.Setenv("SHUTDOWN_TIMEOUT", "0s")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.BroadcastQueueSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
