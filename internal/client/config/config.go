package config

import (
	"time"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
)

// Config holds runtime settings for the FarmChainX CLI.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StateFile      string
	LogLevel       string
	LogFormat      string
	// StrictEmail restricts registration to @gmail.com addresses.
	StrictEmail bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = client.DefaultBaseURL
	c.RequestTimeout = client.DefaultTimeout
	c.StateFile = "farmchainx.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.StrictEmail = false
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (if any), then flags. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
