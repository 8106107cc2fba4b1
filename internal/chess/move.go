package chess

// Move is an immutable description of one ply. Moves are produced by the
// move generator or built by callers for validation; applying one is the
// engine's job.
type Move struct {
	// The piece being moved and its type before the move.
	Piece     PieceID
	PieceType PieceType
	Colour    Colour

	// Source and destination squares. For castling these are the king's.
	From Square
	To   Square

	// The piece captured (NoPiece if none) and its type.
	Captured     PieceID
	CapturedType PieceType

	// Whether the capture is en passant (the captured pawn is not on To).
	EnPassant bool

	// Castling or promotion.
	Special SpecialMove

	// The piece promoted to; NoPieceType unless Special is Promotion.
	Promotion PieceType

	// Whether the move gives check or checkmate. Filled in by the generator.
	Check bool
	Mate  bool
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Special == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Special {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// SameAs reports whether m and other describe the same move, ignoring the
// Check and Mate annotations.
func (m Move) SameAs(other Move) bool {
	return m.Piece == other.Piece &&
		m.PieceType == other.PieceType &&
		m.Colour == other.Colour &&
		m.From == other.From &&
		m.To == other.To &&
		m.Captured == other.Captured &&
		m.EnPassant == other.EnPassant &&
		m.Special == other.Special &&
		m.Promotion == other.Promotion
}
