package config

// RulesConfig holds settings for draws that end a game without a claim.
// Checkmate and stalemate always end the game.
type RulesConfig struct {
	// FiftyMoveRule draws once the half-move clock reaches 100
	FiftyMoveRule bool `yaml:"fifty_move_rule"`

	// InsufficientMaterial draws when neither side can mate
	InsufficientMaterial bool `yaml:"insufficient_material"`

	// FivefoldRepetition draws when one position occurs five times
	FivefoldRepetition bool `yaml:"fivefold_repetition"`

	// RepetitionLimit is the occurrence count that triggers the repetition draw
	RepetitionLimit int `yaml:"repetition_limit" validate:"min=2,max=10"`
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		FiftyMoveRule:        true,
		InsufficientMaterial: true,
		FivefoldRepetition:   true,
		RepetitionLimit:      5,
	}
}
