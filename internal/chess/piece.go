package chess

import "unicode"

// PieceID is the index of a piece in its owning Position's piece table.
type PieceID int16

// NoPiece marks an empty square or the absence of a captured piece.
const NoPiece PieceID = -1

// Piece is one piece record. Records are created when a position is set up
// and persist after capture so move history can keep referring to them.
// A promoted pawn keeps its record; only Type changes.
type Piece struct {
	ID       PieceID
	Type     PieceType
	Colour   Colour
	Square   Square // NoSquare once captured
	Captured bool
}

// Active reports whether the piece is still on the board.
func (p Piece) Active() bool {
	return !p.Captured
}

// Letter returns the FEN letter for the piece (uppercase for White).
func (p Piece) Letter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns a short description such as "White Knight on f3".
func (p Piece) String() string {
	where := "captured"
	if !p.Captured {
		where = "on " + p.Square.String()
	}
	return p.Colour.String() + " " + p.Type.String() + " " + where
}
