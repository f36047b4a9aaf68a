package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the shelter console.
//
// Fields:
//   - APIBaseURL: base URL of the shelter REST API.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - DataDir: directory holding the local session database.
//   - SearchDebounce: how long list search input must settle before a
//     request fires.
type Config struct {
	APIBaseURL     string
	DataDir        string
	RequestTimeout time.Duration
	SearchDebounce time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.DataDir = defaultDataDir()
	c.SearchDebounce = 300 * time.Millisecond
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".snout"
	}
	return filepath.Join(home, ".snout")
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
