package chess

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Square identifies one of the 64 board squares by linear index:
// index = (rank-1)*8 + (file-1), so a1 = 0, h1 = 7, a8 = 56, h8 = 63.
type Square int8

// NoSquare marks the absence of a square (no en-passant target, captured piece).
const NoSquare Square = -1

// Named squares used by castling and the initial setup.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// NewSquare returns the square at the 1-based file and rank.
func NewSquare(file, rank int) (Square, error) {
	if file < FirstFile || file > LastFile || rank < FirstRank || rank > LastRank {
		return NoSquare, fmt.Errorf("file %d, rank %d: %w", file, rank, errors.ErrOutOfRange)
	}
	return Square((rank-1)*BoardSize + (file - 1)), nil
}

// ParseSquare converts algebraic text such as "e4" into a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, &errors.ParseError{Input: s, Expected: "square a1-h8", Err: errors.ErrInvalidNotation}
	}
	return Square(int(s[1]-RankBase)*BoardSize + int(s[0]-FileBase)), nil
}

// IsValid reports whether sq is on the board.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < NumSquares
}

// File returns the 1-based file (a=1 .. h=8).
func (sq Square) File() int {
	return int(sq)%BoardSize + 1
}

// Rank returns the 1-based rank.
func (sq Square) Rank() int {
	return int(sq)/BoardSize + 1
}

// FileChar returns the file letter 'a'..'h'.
func (sq Square) FileChar() byte {
	return byte(FileBase + sq.File() - 1)
}

// RankChar returns the rank digit '1'..'8'.
func (sq Square) RankChar() byte {
	return byte(RankBase + sq.Rank() - 1)
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{sq.FileChar(), sq.RankChar()})
}

// Offset returns the square df files and dr ranks away.
func (sq Square) Offset(df, dr int) (Square, error) {
	if !sq.IsValid() {
		return NoSquare, errors.ErrOutOfRange
	}
	return NewSquare(sq.File()+df, sq.Rank()+dr)
}

// Up returns the square n ranks towards rank 8.
func (sq Square) Up(n int) (Square, error) {
	return sq.Offset(0, n)
}

// Down returns the square n ranks towards rank 1.
func (sq Square) Down(n int) (Square, error) {
	return sq.Offset(0, -n)
}

// Left returns the square n files towards the a-file.
func (sq Square) Left(n int) (Square, error) {
	return sq.Offset(-n, 0)
}

// Right returns the square n files towards the h-file.
func (sq Square) Right(n int) (Square, error) {
	return sq.Offset(n, 0)
}

// Mirror reflects the square across the board's horizontal midline (e2 <-> e7).
func (sq Square) Mirror() Square {
	return Square((BoardSize-sq.Rank())*BoardSize + sq.File() - 1)
}

// RelativeRank returns the rank as seen from colour's side of the board,
// so a white pawn's home rank and a black pawn's home rank are both 2.
func (sq Square) RelativeRank(colour Colour) int {
	if colour == White {
		return sq.Rank()
	}
	return LastRank + 1 - sq.Rank()
}

// IsLight returns true if the square is a light square (h1 is light).
func (sq Square) IsLight() bool {
	return (sq.File()+sq.Rank())%2 == 1
}
