package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/learninghub/internal/flagx"
	"github.com/dmitrijs2005/learninghub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations go
// through timex.Duration, so "1500ms" and 1500000000 are both accepted.
// Pointer fields tell "absent" apart from "zero".
type JsonConfig struct {
	StorePath   string          `json:"store_path"`
	Backend     string          `json:"backend"`
	Latency     *timex.Duration `json:"latency"`
	TokenSecret string          `json:"token_secret"`
	TokenTTL    *timex.Duration `json:"token_ttl"`
	LogLevel    string          `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Only the
// fields present in the file are copied.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.Latency != nil {
		cfg.Latency = jc.Latency.Duration
	}
	if jc.TokenSecret != "" {
		cfg.TokenSecret = jc.TokenSecret
	}
	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
