// Package config assembles the runtime settings of the cvterm client from
// defaults, an optional JSON file and command-line flags, in that order of
// precedence.
package config

import "time"

// Config holds runtime settings for the cvterm client.
//
// Fields:
//   - ServerBaseURL: base URL of the CV platform REST service.
//   - RequestTimeout: bound applied to every API request.
//   - DatabasePath: path of the local SQLite database holding the session.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://efrei-api-rest-project-g2.onrender.com"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "cvterm.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
