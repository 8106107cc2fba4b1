// Package chess provides core chess types: colours, piece types, squares,
// the mutable Position aggregate and the Move value.
package chess

// Colour represents the colour of a piece or player.
type Colour int8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction in ranks).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceType represents a chess piece type regardless of colour.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionTypes lists the piece types a pawn may promote to, strongest first.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a piece type as used in SAN and FEN.
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may promote to t.
func (t PieceType) IsPromotionTarget() bool {
	switch t {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// PieceTypeFromLetter converts a letter (either case) to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	}
	return NoPieceType
}

// SpecialMove classifies moves that need handling beyond a plain relocation.
type SpecialMove int8

const (
	NoSpecial SpecialMove = iota
	KingsideCastle
	QueensideCastle
	Promotion
)

// String returns the string representation of a special move kind.
func (s SpecialMove) String() string {
	switch s {
	case KingsideCastle:
		return "KingsideCastle"
	case QueensideCastle:
		return "QueensideCastle"
	case Promotion:
		return "Promotion"
	}
	return "None"
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FirstFile = 1
	LastFile  = BoardSize
	FirstRank = 1
	LastRank  = BoardSize

	FileBase = 'a'
	RankBase = '1'
)
