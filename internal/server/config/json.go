package config

import (
	"encoding/json"
	"os"

	"github.com/MateusHBR/auth-microservice/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	HashIterations   int    `json:"hash_iterations"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flags. When no file is given the function is a no-op; fields the
// file omits keep their current values. Read or unmarshal errors panic:
// a requested config file that cannot be used is a startup fault.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddrGRPC != "" {
		cfg.EndpointAddrGRPC = jc.EndpointAddrGRPC
	}
	if jc.HashIterations != 0 {
		cfg.HashIterations = jc.HashIterations
	}
}
