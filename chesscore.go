// Package chesscore is the public API of the chess rules engine: games,
// positions, moves and their text forms.
//
// A game is driven through its legal moves:
//
//	g, err := chesscore.NewGame()
//	...
//	moves := g.LegalMoves()
//	err = g.ApplyMove(moves[0])
//	fmt.Println(g.CurrentFEN(), g.Outcome(), g.Termination())
package chesscore

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/game"
	"github.com/lgbarn/chess-core-go/internal/logging"
	"github.com/lgbarn/chess-core-go/internal/output"
	"github.com/lgbarn/chess-core-go/internal/perft"
)

// Engine types, re-exported from the internal packages.
type (
	Game        = game.Game
	Option      = game.Option
	Position    = chess.Position
	Move        = chess.Move
	Square      = chess.Square
	Colour      = chess.Colour
	PieceType   = chess.PieceType
	Outcome     = chess.Outcome
	Termination = chess.Termination
	Config      = config.Config
	GameError   = errors.GameError
	ParseError  = errors.ParseError
	PerftResult = perft.Result
	GameWriter  = output.GameWriter
)

// InitialFEN is the standard starting position.
const InitialFEN = engine.InitialFEN

// Errors returned by the engine; test for them with errors.Is.
var (
	ErrInvalidFEN        = errors.ErrInvalidFEN
	ErrInvalidNotation   = errors.ErrInvalidNotation
	ErrIllegalMove       = errors.ErrIllegalMove
	ErrMismatchedContext = errors.ErrMismatchedContext
	ErrGameOver          = errors.ErrGameOver
	ErrInvalidConfig     = errors.ErrInvalidConfig
)

// IsRecoverable reports whether err rejected caller input and left the
// game or position unchanged.
func IsRecoverable(err error) bool {
	return errors.IsRecoverable(err)
}

// Game options.
var (
	WithFEN      = game.WithFEN
	WithMoves    = game.WithMoves
	WithMoveText = game.WithMoveText
	WithTags     = game.WithTags
	WithRules    = game.WithRules
	WithOutput   = game.WithOutput
	WithLogger   = game.WithLogger
	WithConfig   = game.WithConfig
)

// NewGame starts a game, from the initial position unless WithFEN is given.
func NewGame(opts ...Option) (*Game, error) {
	return game.New(opts...)
}

// ParseFEN parses a FEN string into a position.
func ParseFEN(fen string) (*Position, error) {
	return engine.NewPositionFromFEN(fen)
}

// FEN serializes a position.
func FEN(pos *Position) string {
	return engine.PositionToFEN(pos)
}

// LegalMoves returns the legal moves in pos.
func LegalMoves(pos *Position) []Move {
	return engine.LegalMoves(pos)
}

// LAN returns the coordinate form of a move, e.g. "e7e8q".
func LAN(m Move) string {
	return engine.LAN(m)
}

// SAN returns the standard algebraic form of a move legal in pos.
func SAN(pos *Position, m Move) string {
	return engine.SAN(pos, m)
}

// DecodeMove resolves LAN or SAN text to one of the legal moves in pos.
func DecodeMove(pos *Position, text string) (Move, error) {
	return engine.DecodeMove(pos, text)
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return config.NewConfig()
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	return config.LoadFile(path)
}

// NewLogger builds the logger described by cfg's log section.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg == nil {
		return logging.New(nil)
	}
	return logging.New(cfg.Log)
}

// Perft counts the leaf nodes depth plies below pos, split by root move.
func Perft(ctx context.Context, pos *Position, depth int, cfg *Config, logger *zap.Logger) (*PerftResult, error) {
	var pc *config.PerftConfig
	if cfg != nil {
		pc = cfg.Perft
	}
	return perft.NewRunner(pc, logger).Divide(ctx, pos, depth)
}

// NewGameWriter returns a writer that exports games as PGN, or as a JSON
// array when asJSON is set. A nil cfg uses the default output settings.
func NewGameWriter(w io.Writer, cfg *Config, asJSON bool) GameWriter {
	oc := config.NewOutputConfig()
	if cfg != nil && cfg.Output != nil {
		oc = cfg.Output
	}
	return output.NewGameWriter(w, oc, asJSON)
}
