// Package game tracks a chess game: the current position, the move
// history and how the game ended.
//
// A Game is not safe for concurrent use; hosts serialize access per game.
package game

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/hashing"
	"github.com/lgbarn/chess-core-go/internal/output"
)

// Game is one chess game.
type Game struct {
	id          uuid.UUID
	startFEN    string
	pos         *chess.Position
	moves       []chess.Move
	san         []string
	fens        []string
	tags        map[string]string
	outcome     chess.Outcome
	termination chess.Termination
	repetitions *hashing.RepetitionTable
	rules       *config.RulesConfig
	output      *config.OutputConfig
	logger      *zap.Logger
}

// New creates a game. Moves supplied through WithMoves and WithMoveText
// are replayed in order; if one fails no game is returned and the error
// is a *errors.GameError naming the failing ply.
func New(opts ...Option) (*Game, error) {
	s := &settings{
		fen:    engine.InitialFEN,
		tags:   make(map[string]string),
		rules:  config.NewRulesConfig(),
		output: config.NewOutputConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	pos, err := engine.NewPositionFromFEN(s.fen)
	if err != nil {
		return nil, err
	}

	g := &Game{
		id:          uuid.New(),
		startFEN:    engine.PositionToFEN(pos),
		pos:         pos,
		tags:        make(map[string]string, len(s.tags)),
		repetitions: hashing.NewRepetitionTable(),
		rules:       s.rules,
		output:      s.output,
	}
	g.logger = s.logger.With(zap.String("game_id", g.id.String()))
	for k, v := range s.tags {
		g.SetTag(k, v)
	}

	g.evaluate(g.repetitions.Add(pos))

	for _, m := range s.moves {
		if err := g.ApplyMove(m); err != nil {
			return nil, g.replayError(engine.LAN(m), err)
		}
	}
	for _, text := range s.moveText {
		if err := g.ApplyMoveText(text); err != nil {
			return nil, g.replayError(text, err)
		}
	}

	g.logger.Debug("game created",
		zap.String("fen", g.startFEN),
		zap.Int("replayed", len(g.moves)),
	)
	return g, nil
}

func (g *Game) replayError(text string, err error) error {
	return &chesserrors.GameError{
		Err:      err,
		GameID:   g.id.String(),
		PlyNum:   len(g.moves) + 1,
		MoveText: text,
	}
}

// ID returns the game's unique identifier.
func (g *Game) ID() string {
	return g.id.String()
}

// LegalMoves returns the legal moves of the side to move, or none once
// the game is over.
func (g *Game) LegalMoves() []chess.Move {
	if g.IsOver() {
		return nil
	}
	return engine.LegalMoves(g.pos)
}

// ApplyMove plays a move. The move must match one of LegalMoves
// structurally; its Check and Mate fields are ignored and recomputed.
// An illegal move returns an error wrapping errors.ErrIllegalMove and
// leaves the game unchanged.
func (g *Game) ApplyMove(move chess.Move) error {
	if g.IsOver() {
		return chesserrors.Wrapf(chesserrors.ErrGameOver, "game ended by %s", g.termination)
	}

	legal, ok := engine.IsLegal(g.pos, move)
	if !ok {
		err := chesserrors.Wrapf(chesserrors.ErrIllegalMove, "%s", describe(move))
		g.logger.Debug("illegal move rejected", zap.Error(err))
		return err
	}

	san := engine.SAN(g.pos, legal)
	if err := engine.ApplyMove(g.pos, legal); err != nil {
		if errors.Is(err, chesserrors.ErrMismatchedContext) {
			// A generated move that does not fit its own position means the
			// position is corrupt.
			panic(err)
		}
		return err
	}

	g.moves = append(g.moves, legal)
	g.san = append(g.san, san)
	fen := engine.PositionToFEN(g.pos)
	g.fens = append(g.fens, fen)

	g.logger.Debug("move applied",
		zap.Int("ply", len(g.moves)),
		zap.String("san", san),
		zap.String("fen", fen),
	)

	g.evaluate(g.repetitions.Add(g.pos))
	return nil
}

// describe formats a caller-supplied move for error messages.
func describe(m chess.Move) string {
	if !m.From.IsValid() || !m.To.IsValid() {
		return fmt.Sprintf("%s from %d to %d", m.PieceType, m.From, m.To)
	}
	return engine.LAN(m)
}

// ApplyMoveText plays a move given in LAN ("e2e4", "e7e8q") or SAN
// ("Nf3", "O-O", "exd8=Q+").
func (g *Game) ApplyMoveText(text string) error {
	if g.IsOver() {
		return chesserrors.Wrapf(chesserrors.ErrGameOver, "game ended by %s", g.termination)
	}
	m, err := engine.DecodeMove(g.pos, text)
	if err != nil {
		g.logger.Debug("move text rejected", zap.String("text", text), zap.Error(err))
		return err
	}
	return g.ApplyMove(m)
}

// evaluate ends the game if the current position is terminal. count is
// the number of times the position has now occurred.
func (g *Game) evaluate(count int) {
	pos := g.pos
	switch {
	case !engine.HasLegalMoves(pos):
		if engine.IsInCheck(pos, pos.ToMove) {
			g.end(chess.WinFor(pos.ToMove.Opposite()), chess.Checkmate)
		} else {
			g.end(chess.Draw, chess.Stalemate)
		}
	case g.rules.FiftyMoveRule && engine.IsFiftyMoveRule(pos):
		g.end(chess.Draw, chess.FiftyMoveRule)
	case g.rules.InsufficientMaterial && engine.HasInsufficientMaterial(pos):
		g.end(chess.Draw, chess.InsufficientMaterial)
	case g.rules.FivefoldRepetition && count >= g.rules.RepetitionLimit:
		if count >= 5 {
			g.end(chess.Draw, chess.FivefoldRepetition)
		} else {
			g.end(chess.Draw, chess.Repetition)
		}
	}
}

func (g *Game) end(outcome chess.Outcome, termination chess.Termination) {
	g.outcome = outcome
	g.termination = termination
	g.logger.Info("game over",
		zap.Stringer("result", outcome),
		zap.Stringer("termination", termination),
		zap.Int("plies", len(g.moves)),
	)
}

// Resign ends the game with colour resigning.
func (g *Game) Resign(colour chess.Colour) error {
	if g.IsOver() {
		return chesserrors.Wrapf(chesserrors.ErrGameOver, "game ended by %s", g.termination)
	}
	g.end(chess.WinFor(colour.Opposite()), chess.Resignation)
	return nil
}

// AgreeDraw ends the game as a draw by agreement.
func (g *Game) AgreeDraw() error {
	if g.IsOver() {
		return chesserrors.Wrapf(chesserrors.ErrGameOver, "game ended by %s", g.termination)
	}
	g.end(chess.Draw, chess.DrawByAgreement)
	return nil
}

// Timeout ends the game with colour's time expired. The game is drawn
// when the opponent has no material to mate with.
func (g *Game) Timeout(colour chess.Colour) error {
	if g.IsOver() {
		return chesserrors.Wrapf(chesserrors.ErrGameOver, "game ended by %s", g.termination)
	}
	if !engine.CanMate(g.pos, colour.Opposite()) {
		g.end(chess.Draw, chess.TimeoutVsInsufficientMaterial)
		return nil
	}
	g.end(chess.WinFor(colour.Opposite()), chess.Timeout)
	return nil
}

// CurrentFEN returns the FEN of the current position.
func (g *Game) CurrentFEN() string {
	return engine.PositionToFEN(g.pos)
}

// StartFEN returns the FEN of the starting position.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.pos.ToMove
}

// MoveHistory returns the moves played, oldest first.
func (g *Game) MoveHistory() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// SANHistory returns the SAN of the moves played, oldest first.
func (g *Game) SANHistory() []string {
	return append([]string(nil), g.san...)
}

// Outcome returns the result, NoOutcome while the game is in progress.
func (g *Game) Outcome() chess.Outcome {
	return g.outcome
}

// Termination returns how the game ended, NoTermination while in progress.
func (g *Game) Termination() chess.Termination {
	return g.termination
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.outcome != chess.NoOutcome
}

// RepetitionCount returns how often the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.repetitions.Count(g.pos)
}

// Tag returns the value of a PGN tag.
func (g *Game) Tag(name string) string {
	return g.tags[name]
}

// SetTag sets a PGN tag. Tags derived from the game itself (Result, FEN,
// SetUp, Termination, PlyCount) cannot be set and are ignored.
func (g *Game) SetTag(name, value string) {
	if name == "" || chess.IsDerivedTag(name) {
		return
	}
	g.tags[name] = value
}

// Record returns an export snapshot of the game.
func (g *Game) Record() *output.Record {
	tags := make(map[string]string, len(g.tags))
	for k, v := range g.tags {
		tags[k] = v
	}
	return &output.Record{
		Tags:        tags,
		StartFEN:    g.startFEN,
		Moves:       g.MoveHistory(),
		SAN:         g.SANHistory(),
		FENs:        append([]string(nil), g.fens...),
		Outcome:     g.outcome,
		Termination: g.termination,
	}
}

// PGN returns the game in PGN.
func (g *Game) PGN() string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer do not fail.
	_ = output.WritePGN(&buf, g.Record(), g.output)
	return buf.String()
}

// MarshalJSON encodes the game as an output.JSONGame.
func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(output.RecordToJSON(g.Record(), g.output))
}
