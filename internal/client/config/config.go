// Package config handles configuration for the operator CLI, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

// Config holds runtime settings for the CLI.
//
// ServerEndpointAddr is the host:port of the authentication gRPC endpoint.
// The AUTH_SERVICE_HOST environment variable overrides it, which is how
// deployments point the CLI at a remote instance.
type Config struct {
	ServerEndpointAddr string `env:"AUTH_SERVICE_HOST"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
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
