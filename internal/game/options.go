package game

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
)

type settings struct {
	fen      string
	moves    []chess.Move
	moveText []string
	tags     map[string]string
	rules    *config.RulesConfig
	output   *config.OutputConfig
	logger   *zap.Logger
}

// Option configures a Game.
type Option func(*settings)

// WithFEN starts the game from a FEN position instead of the initial one.
func WithFEN(fen string) Option {
	return func(s *settings) {
		s.fen = fen
	}
}

// WithMoves replays moves after the starting position.
func WithMoves(moves ...chess.Move) Option {
	return func(s *settings) {
		s.moves = append(s.moves, moves...)
	}
}

// WithMoveText replays moves given as LAN or SAN after any WithMoves moves.
func WithMoveText(moves ...string) Option {
	return func(s *settings) {
		s.moveText = append(s.moveText, moves...)
	}
}

// WithTags sets PGN tags. Derived tags (Result, FEN, ...) are ignored.
func WithTags(tags map[string]string) Option {
	return func(s *settings) {
		for k, v := range tags {
			s.tags[k] = v
		}
	}
}

// WithRules sets which draws end the game automatically.
func WithRules(rules *config.RulesConfig) Option {
	return func(s *settings) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithOutput sets the PGN and JSON export settings.
func WithOutput(output *config.OutputConfig) Option {
	return func(s *settings) {
		if output != nil {
			s.output = output
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConfig applies the rules and output sections of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		if cfg == nil {
			return
		}
		WithRules(cfg.Rules)(s)
		WithOutput(cfg.Output)(s)
	}
}
