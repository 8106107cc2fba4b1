package chesscore_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	chesscore "github.com/lgbarn/chess-core-go"
)

func TestNewGame_PublicFlow(t *testing.T) {
	g, err := chesscore.NewGame()
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if g.CurrentFEN() != chesscore.InitialFEN {
		t.Errorf("CurrentFEN() = %q, want initial FEN", g.CurrentFEN())
	}

	for _, text := range []string{"f3", "e5", "g4"} {
		m, err := chesscore.DecodeMove(g.Position(), text)
		if err != nil {
			t.Fatalf("DecodeMove(%q) failed: %v", text, err)
		}
		if err := g.ApplyMove(m); err != nil {
			t.Fatalf("ApplyMove(%q) failed: %v", text, err)
		}
	}

	var mate chesscore.Move
	for _, m := range g.LegalMoves() {
		if chesscore.LAN(m) == "d8h4" {
			mate = m
		}
	}
	if err := g.ApplyMove(mate); err != nil {
		t.Fatalf("ApplyMove(d8h4) failed: %v", err)
	}
	if g.Outcome().String() != "0-1" || g.Termination().String() != "Checkmate" {
		t.Errorf("result = %v by %v, want 0-1 by Checkmate", g.Outcome(), g.Termination())
	}
	if err := g.ApplyMove(mate); !errors.Is(err, chesscore.ErrGameOver) {
		t.Errorf("ApplyMove after mate error = %v, want ErrGameOver", err)
	}
	if got := len(g.MoveHistory()); got != 4 {
		t.Errorf("len(MoveHistory()) = %d, want 4", got)
	}
}

func TestNewGame_ReplayFailure(t *testing.T) {
	_, err := chesscore.NewGame(chesscore.WithMoveText("e4", "e5", "Ke3"))
	var gerr *chesscore.GameError
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *GameError", err)
	}
	if gerr.PlyNum != 3 || !errors.Is(err, chesscore.ErrIllegalMove) {
		t.Errorf("GameError = %+v, want ply 3 wrapping ErrIllegalMove", gerr)
	}
}

func TestFENAndNotation(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	pos, err := chesscore.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := chesscore.FEN(pos); got != fen {
		t.Errorf("FEN() = %q, want %q", got, fen)
	}

	m, err := chesscore.DecodeMove(pos, "e1c1")
	if err != nil {
		t.Fatalf("DecodeMove failed: %v", err)
	}
	if got := chesscore.SAN(pos, m); got != "O-O-O" {
		t.Errorf("SAN(e1c1) = %q, want O-O-O", got)
	}

	if _, err := chesscore.ParseFEN("8/8/8 w - - 0 1"); !errors.Is(err, chesscore.ErrInvalidFEN) {
		t.Errorf("ParseFEN(short) error = %v, want ErrInvalidFEN", err)
	}
	var perr *chesscore.ParseError
	if _, err := chesscore.DecodeMove(pos, "Zz9"); !errors.As(err, &perr) {
		t.Errorf("DecodeMove(Zz9) error = %v, want *ParseError", err)
	}
}

func TestPerftAndExport(t *testing.T) {
	pos, err := chesscore.ParseFEN(chesscore.InitialFEN)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	res, err := chesscore.Perft(context.Background(), pos, 2, nil, nil)
	if err != nil {
		t.Fatalf("Perft failed: %v", err)
	}
	if res.Total != 400 || len(res.Moves) != 20 {
		t.Errorf("Perft(2) = %d over %d moves, want 400 over 20", res.Total, len(res.Moves))
	}

	g, err := chesscore.NewGame(
		chesscore.WithMoveText("e4", "c5"),
		chesscore.WithTags(map[string]string{"Event": "Casual"}),
	)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	var buf bytes.Buffer
	w := chesscore.NewGameWriter(&buf, nil, false)
	if err := w.WriteGame(g.Record()); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	for _, want := range []string{`[Event "Casual"]`, "1. e4 c5 *"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("PGN missing %q:\n%s", want, buf.String())
		}
	}
}

func TestConfigAndLogger(t *testing.T) {
	cfg := chesscore.NewConfig()
	logger, err := chesscore.NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}

	cfg.Log.Level = "loud"
	if _, err := chesscore.NewLogger(cfg); !errors.Is(err, chesscore.ErrInvalidConfig) {
		t.Errorf("NewLogger(loud) error = %v, want ErrInvalidConfig", err)
	}

	if _, err := chesscore.LoadConfig("does-not-exist.yaml"); err == nil {
		t.Error("LoadConfig of a missing file should fail")
	}
}

func ExampleNewGame() {
	g, _ := chesscore.NewGame(chesscore.WithMoveText("e4", "e5", "Nf3"))
	fmt.Println(g.SANHistory())
	fmt.Println(g.CurrentFEN())
	// Output:
	// [e4 e5 Nf3]
	// rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2
}
