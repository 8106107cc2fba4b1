package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-core-go/internal/errors"
)

// play decodes and applies each coordinate move in turn.
func play(t testing.TB, pos *chess.Position, lans ...string) {
	t.Helper()
	for _, lan := range lans {
		m, err := DecodeLAN(pos, lan)
		if err != nil {
			t.Fatalf("DecodeLAN(%q) in %q failed: %v", lan, PositionToFEN(pos), err)
		}
		if err := ApplyMove(pos, m); err != nil {
			t.Fatalf("ApplyMove(%q) failed: %v", lan, err)
		}
	}
}

func TestApplyMove_ResultingFEN(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name:  "double pawn push sets en passant",
			fen:   InitialFEN,
			moves: []string{"e2e4"},
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:  "en passant cleared by next move",
			fen:   InitialFEN,
			moves: []string{"e2e4", "g8f6"},
			want:  "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name:  "en passant capture removes the passed pawn",
			fen:   "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
			moves: []string{"f7f5", "e5f6"},
			want:  "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:  "white castles kingside",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moves: []string{"e1g1"},
			want:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name:  "black castles queenside",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			moves: []string{"e8c8"},
			want:  "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 1 2",
		},
		{
			name:  "rook move revokes one right",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moves: []string{"h1g1"},
			want:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K1R1 b Qkq - 1 1",
		},
		{
			name:  "rook returning home does not restore its right",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"h1g1", "e8d8", "g1h1"},
			want:  "r2k3r/8/8/8/8/8/8/R3K2R b Q - 3 2",
		},
		{
			name:  "rook captured at home revokes its right",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"h1h8"},
			want:  "r3k2R/8/8/8/8/8/8/R3K3 b Qq - 0 1",
		},
		{
			name:  "promotion to knight",
			fen:   "8/4P3/8/8/8/8/k7/4K3 w - - 5 40",
			moves: []string{"e7e8n"},
			want:  "4N3/8/8/8/8/8/k7/4K3 b - - 0 40",
		},
		{
			name:  "capture promotion",
			fen:   "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 40",
			moves: []string{"e7d8q"},
			want:  "3Q4/8/8/8/8/8/k7/4K3 b - - 0 40",
		},
		{
			name:  "fullmove number advances after black",
			fen:   InitialFEN,
			moves: []string{"g1f3", "g8f6", "f3g1", "f6g8"},
			want:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 4 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			play(t, pos, tt.moves...)
			if got := PositionToFEN(pos); got != tt.want {
				t.Errorf("FEN after %v = %q, want %q", tt.moves, got, tt.want)
			}
		})
	}
}

func TestApplyMove_PromotionKeepsPieceID(t *testing.T) {
	pos := mustFEN(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	m, err := DecodeLAN(pos, "e7e8q")
	if err != nil {
		t.Fatalf("DecodeLAN failed: %v", err)
	}
	if m.PieceType != chess.Pawn || m.Promotion != chess.Queen {
		t.Errorf("move = %s/%s, want Pawn/Queen", m.PieceType, m.Promotion)
	}
	if err := ApplyMove(pos, m); err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}
	piece, err := pos.Piece(m.Piece)
	if err != nil {
		t.Fatalf("Piece(%d) failed: %v", m.Piece, err)
	}
	if piece.Type != chess.Queen || piece.Square != chess.E8 {
		t.Errorf("promoted piece = %v, want Queen on e8", piece)
	}
}

func TestApplyMove_CapturedPieceRecordPersists(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	victim, _ := pos.PieceAt(mustSquare(t, "d5"))
	play(t, pos, "e4d5")

	rec, err := pos.Piece(victim.ID)
	if err != nil {
		t.Fatalf("Piece(%d) failed: %v", victim.ID, err)
	}
	if !rec.Captured || rec.Square != chess.NoSquare {
		t.Errorf("captured record = %+v, want Captured with NoSquare", rec)
	}
}

func TestApplyMove_MismatchedContext(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*chess.Move)
	}{
		{"wrong origin", func(m *chess.Move) { m.From = chess.E1 }},
		{"unknown piece", func(m *chess.Move) { m.Piece = 99 }},
		{"wrong piece type", func(m *chess.Move) { m.PieceType = chess.Queen }},
		{"wrong colour", func(m *chess.Move) { m.Colour = chess.Black }},
		{"bogus capture", func(m *chess.Move) { m.Captured = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, InitialFEN)
			m, err := DecodeLAN(pos, "e2e4")
			if err != nil {
				t.Fatalf("DecodeLAN failed: %v", err)
			}
			tt.mutate(&m)

			err = ApplyMove(pos, m)
			if !errors.Is(err, chesserrors.ErrMismatchedContext) {
				t.Errorf("ApplyMove() error = %v, want ErrMismatchedContext", err)
			}
			if got := PositionToFEN(pos); got != InitialFEN {
				t.Errorf("position changed after failed move: %q", got)
			}
		})
	}
}

func TestApplyMove_MoveFromOtherPosition(t *testing.T) {
	// A piece id that exists in both positions but stands elsewhere.
	src := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	dst := mustFEN(t, "4k3/8/8/8/8/8/8/4K2R w - - 0 1")

	m, err := DecodeLAN(src, "a1a8")
	if err != nil {
		t.Fatalf("DecodeLAN failed: %v", err)
	}
	if err := ApplyMove(dst, m); !errors.Is(err, chesserrors.ErrMismatchedContext) {
		t.Errorf("ApplyMove() error = %v, want ErrMismatchedContext", err)
	}
}

func TestApplyMove_HalfmoveClock(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/4P3/R3K3 w - - 0 1")
	play(t, pos, "a1a2")
	if pos.HalfmoveClock != 1 {
		t.Errorf("HalfmoveClock after rook move = %d, want 1", pos.HalfmoveClock)
	}
	play(t, pos, "e8d8", "e2e4")
	if pos.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock after pawn move = %d, want 0", pos.HalfmoveClock)
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, false},
		{"rook on file", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", chess.Black, true},
		{"blocked rook", "4k3/4p3/8/8/8/8/8/4R1K1 b - - 0 1", chess.Black, false},
		{"bishop diagonal", "4k3/8/8/b7/8/8/8/4K3 w - - 0 1", chess.White, true},
		{"knight", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"pawn attacks diagonally", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn does not attack forward", "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, false},
		{"white pawn attacks upward", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			if got := IsInCheck(pos, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%s) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true},
		{"not in check", "6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1", false},
		{"back rank mated", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", true},
		{"check with escape", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", false},
		{"initial", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			if got := IsCheckmate(pos); got != tt.want {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsStalemate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"king in corner", "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1", true},
		{"king boxed in by pawn and king", "8/8/8/8/8/5k2/5p2/5K2 w - - 0 1", true},
		{"king with moves", "k7/8/1K6/8/8/8/8/8 b - - 0 1", false},
		{"checkmate is not stalemate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			if got := IsStalemate(pos); got != tt.want {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.want)
			}
		})
	}
}
