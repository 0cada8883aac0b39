package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/farmchainx/internal/flagx"
	"github.com/dmitrijs2005/farmchainx/internal/timex"
)

// jsonConfig is the on-disk shape. Pointer fields tell "absent" from zero.
type jsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	StateFile      *string         `json:"state_file"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
	StrictEmail    *bool           `json:"strict_email"`
}

// parseJSON overlays cfg with the file named by -c/-config. Without the flag
// it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StateFile != nil {
		cfg.StateFile = *jc.StateFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.StrictEmail != nil {
		cfg.StrictEmail = *jc.StrictEmail
	}
	return nil
}
