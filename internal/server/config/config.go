// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "github.com/MateusHBR/auth-microservice/internal/cryptox"

// Config holds runtime settings for the authentication server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - HashIterations: PBKDF2 work factor for newly created accounts.
//     Existing hashes carry their own parameters and keep verifying after
//     a change.
type Config struct {
	EndpointAddrGRPC string `env:"AUTH_SERVICE_ADDR"`
	HashIterations   int    `env:"AUTH_HASH_ITERATIONS"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.HashIterations = cryptox.DefaultIterations
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
