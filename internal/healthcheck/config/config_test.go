package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = args
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.ProbeInterval)
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		withArgs(t, "healthcheck")
		c := LoadConfig()
		require.NotNil(t, c)
		assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
		assert.Equal(t, 3*time.Second, c.ProbeInterval)
	})

	t.Run("env overrides defaults", func(t *testing.T) {
		withArgs(t, "healthcheck")
		t.Setenv("AUTH_SERVICE_HOST", "auth.internal:50051")
		t.Setenv("AUTH_PROBE_INTERVAL", "10s")
		c := LoadConfig()
		assert.Equal(t, "auth.internal:50051", c.ServerEndpointAddr)
		assert.Equal(t, 10*time.Second, c.ProbeInterval)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		withArgs(t, "healthcheck", "-i", "500ms")
		t.Setenv("AUTH_PROBE_INTERVAL", "10s")
		c := LoadConfig()
		assert.Equal(t, 500*time.Millisecond, c.ProbeInterval)
	})
}

func TestParseJson_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"json.host:50051","probe_interval":"7s"}`), 0o600))

	withArgs(t, "healthcheck", "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "json.host:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 7*time.Second, cfg.ProbeInterval)
}
