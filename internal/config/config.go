// Package config provides configuration for the chess rules engine:
// automatic draw rules, logging, perft and game export settings.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Config holds all engine configuration, grouped into sub-configs.
type Config struct {
	// Rules controls which draws end a game automatically.
	Rules *RulesConfig `yaml:"rules" validate:"required"`

	// Log controls the zap logger built by the logging package.
	Log *LogConfig `yaml:"log" validate:"required"`

	// Perft controls the move-generator verification runner.
	Perft *PerftConfig `yaml:"perft" validate:"required"`

	// Output controls PGN and JSON export.
	Output *OutputConfig `yaml:"output" validate:"required"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:  NewRulesConfig(),
		Log:    NewLogConfig(),
		Perft:  NewPerftConfig(),
		Output: NewOutputConfig(),
	}
}

var validate = validator.New()

// Validate checks every field against its constraints. The returned error
// wraps errors.ErrInvalidConfig and lists each violation.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}

	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", fe.Namespace())
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s]", fe.Namespace(), fe.Param())
		case "min":
			fmt.Fprintf(&details, "%s must be at least %s", fe.Namespace(), fe.Param())
		case "max":
			fmt.Fprintf(&details, "%s must be at most %s", fe.Namespace(), fe.Param())
		default:
			fmt.Fprintf(&details, "%s failed %s validation", fe.Namespace(), fe.Tag())
		}
	}
	return errors.Wrap(errors.ErrInvalidConfig, details.String())
}

// Load reads a YAML configuration. Sections and fields that are absent
// keep their defaults; unknown fields are rejected.
func Load(r io.Reader) (*Config, error) {
	cfg := NewConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrInvalidConfig, fmt.Sprintf("decode yaml: %v", err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}
