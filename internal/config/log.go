package config

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	// Level is the minimum level written: debug, info, warn or error
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// Format selects the encoder: console or json
	Format string `yaml:"format" validate:"oneof=console json"`

	// Caller adds the calling file and line to each entry
	Caller bool `yaml:"caller"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: "console",
	}
}
