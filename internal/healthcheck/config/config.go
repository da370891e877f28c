// Package config handles configuration for the health probe, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the probe.
//
// ServerEndpointAddr is the host:port of the authentication gRPC endpoint.
// ProbeInterval is how long the probe sleeps between cycles.
type Config struct {
	ServerEndpointAddr string        `env:"AUTH_SERVICE_HOST"`
	ProbeInterval      time.Duration `env:"AUTH_PROBE_INTERVAL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.ProbeInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
