package config

import (
	"flag"
	"os"
	"testing"

	"github.com/MateusHBR/auth-microservice/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, cryptox.DefaultIterations, c.HashIterations)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, cryptox.DefaultIterations, c.HashIterations)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server"}

	t.Setenv("AUTH_SERVICE_ADDR", "127.0.0.1:6000")
	t.Setenv("AUTH_HASH_ITERATIONS", "1000")

	c := LoadConfig()

	assert.Equal(t, "127.0.0.1:6000", c.EndpointAddrGRPC)
	assert.Equal(t, 1000, c.HashIterations)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "address and iterations",
			args: []string{"server", "-a", "127.0.0.1:9090", "-i", "2000"},
			expected: &Config{
				EndpointAddrGRPC: "127.0.0.1:9090",
				HashIterations:   2000,
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"server", "-a", "127.0.0.1:9090", "-x", "whatever"},
			expected: &Config{
				EndpointAddrGRPC: "127.0.0.1:9090",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })

			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}
