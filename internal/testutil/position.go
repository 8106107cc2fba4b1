package testutil

import (
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// NewPosition builds a position from piece placements such as "Ke1" or
// "pd7": the letter's case gives the colour (uppercase White) and the
// square follows. The position has no castling rights or en-passant
// target. It calls t.Fatal on a malformed placement.
func NewPosition(t testing.TB, toMove chess.Colour, placements ...string) *chess.Position {
	t.Helper()
	pos := chess.NewPosition()
	pos.ToMove = toMove

	for _, p := range placements {
		if len(p) != 3 {
			t.Fatalf("placement %q: want a piece letter and a square", p)
		}
		colour := chess.White
		if p[0] >= 'a' && p[0] <= 'z' {
			colour = chess.Black
		}
		pieceType := chess.PieceTypeFromLetter(p[0])
		if pieceType == chess.NoPieceType {
			t.Fatalf("placement %q: unknown piece letter", p)
		}
		sq := MustSquare(t, p[1:])
		if _, err := pos.AddPiece(pieceType, colour, sq); err != nil {
			t.Fatalf("placement %q: %v", p, err)
		}
	}
	return pos
}

// MustSquare parses a square name or calls t.Fatal.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", name, err)
	}
	return sq
}

// FindMove returns the move in moves going from one square to another,
// calling t.Fatal when there is none. Promotions resolve to the first
// matching move, which is the queen promotion in generation order.
func FindMove(t testing.TB, moves []chess.Move, from, to string) chess.Move {
	t.Helper()
	f, dst := MustSquare(t, from), MustSquare(t, to)
	for _, m := range moves {
		if m.From == f && m.To == dst {
			return m
		}
	}
	t.Fatalf("no move %s%s among %v", from, to, Coordinates(moves))
	return chess.Move{}
}
