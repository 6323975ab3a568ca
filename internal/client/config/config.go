package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	BackendMock  = "mock"
	BackendLocal = "local"
)

// Config holds runtime settings for the LearningHub CLI.
//
// Fields:
//   - StorePath: SQLite file holding the key-value store and local accounts.
//   - Backend: auth backend, "mock" or "local".
//   - Latency: artificial delay of every backend call.
//   - TokenSecret: HMAC secret for tokens issued by the local backend.
//   - TokenTTL: lifetime of tokens issued by the local backend.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	StorePath   string        `validate:"required"`
	Backend     string        `validate:"oneof=mock local"`
	Latency     time.Duration `validate:"min=0"`
	TokenSecret string        `validate:"required_if=Backend local"`
	TokenTTL    time.Duration `validate:"gt=0"`
	LogLevel    string        `validate:"oneof=debug info warn error"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "hub.db"
	c.Backend = BackendMock
	c.Latency = time.Second
	c.TokenSecret = ""
	c.TokenTTL = 24 * time.Hour
	c.LogLevel = "info"
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig applies defaults, then the JSON file named by -c/-config (if
// any), then the remaining flags. Later sources take precedence.
// args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
