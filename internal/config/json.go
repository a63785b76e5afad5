package config

import (
	"encoding/json"
	"os"
	"time"

	"cvterm/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is given in seconds; values are copied into the runtime Config.
type JsonConfig struct {
	ServerBaseURL  string `json:"server_base_url"`
	RequestTimeout int    `json:"request_timeout"`
	DatabasePath   string `json:"database_path"`
}

// parseJson overlays Config with values from a JSON file named by the
// -c/-config flags. When no file is given the Config is left untouched.
// Read and unmarshal errors panic; a broken config file should stop the
// program before it talks to the network.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
