package config

import "time"

// Config holds runtime settings for the planmate CLI.
//
// Fields:
//   - ServerBaseURL: single base URL for the API, including the /api prefix.
//     Both auth and domain calls go through it.
//   - SessionDBPath: sqlite file holding the persisted session pair.
//   - RequestTimeout: per-request HTTP timeout. Zero means no client-side
//     timeout; the environment's defaults apply.
type Config struct {
	ServerBaseURL  string
	SessionDBPath  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api"
	c.SessionDBPath = "planmate.db"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
