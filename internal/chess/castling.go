package chess

import "strings"

// CastlingRights records the four independent castling permissions.
// A right, once revoked, is never restored during a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the castling state of the standard starting position.
var AllCastlingRights = CastlingRights{
	WhiteKingside:  true,
	WhiteQueenside: true,
	BlackKingside:  true,
	BlackQueenside: true,
}

// Kingside reports whether colour may still castle kingside.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports whether colour may still castle queenside.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// Any reports whether any castling right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// RevokeAll removes both rights of colour.
func (c *CastlingRights) RevokeAll(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
		c.WhiteQueenside = false
	} else {
		c.BlackKingside = false
		c.BlackQueenside = false
	}
}

// RevokeForSquare removes every right that depends on the piece originally
// standing on sq: the king's home square revokes both rights of that side,
// a rook's corner revokes the matching single right. Called with both the
// origin and destination of every move, so a rook moving away or being
// captured at home loses its right permanently.
func (c *CastlingRights) RevokeForSquare(sq Square) {
	switch sq {
	case E1:
		c.RevokeAll(White)
	case E8:
		c.RevokeAll(Black)
	case H1:
		c.WhiteKingside = false
	case A1:
		c.WhiteQueenside = false
	case H8:
		c.BlackKingside = false
	case A8:
		c.BlackQueenside = false
	}
}

// String returns the FEN castling field, "-" when no right remains.
func (c CastlingRights) String() string {
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
