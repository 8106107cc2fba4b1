package config

// OutputConfig holds settings for exporting games as PGN or JSON.
type OutputConfig struct {
	// Notation selects the move text written: san or lan
	Notation string `yaml:"notation" validate:"oneof=san lan"`

	// MaxLineLength is the maximum line length for PGN movetext
	MaxLineLength int `yaml:"max_line_length" validate:"min=20,max=255"`

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool `yaml:"keep_move_numbers"`

	// TagFormat selects the tags written: all, seven (roster only) or none
	TagFormat string `yaml:"tag_format" validate:"oneof=all seven none"`

	// AddFENs adds the position after each move, as a PGN comment or a JSON field
	AddFENs bool `yaml:"add_fens"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:        "san",
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		TagFormat:       "all",
	}
}
