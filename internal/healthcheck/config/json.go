package config

import (
	"encoding/json"
	"os"

	"github.com/MateusHBR/auth-microservice/internal/flagx"
	"github.com/MateusHBR/auth-microservice/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	ProbeInterval      timex.Duration `json:"probe_interval"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config. No file means no overlay; fields the file omits keep their
// current values.
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

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.ProbeInterval.Duration != 0 {
		cfg.ProbeInterval = jc.ProbeInterval.Duration
	}
}
