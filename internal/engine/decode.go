package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// isCol returns true if c is a valid file character.
func isCol(c byte) bool {
	return c >= chess.FileBase && c < chess.FileBase+chess.BoardSize
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.RankBase && c < chess.RankBase+chess.BoardSize
}

// isCapture returns true if c is a capture marker.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check, mate or annotation suffix.
func isCheck(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// sanQuery holds what a SAN string says about a move. Zero values mean
// "not specified".
type sanQuery struct {
	castle    chess.SpecialMove
	piece     chess.PieceType
	fromFile  int
	fromRank  int
	capture   bool
	to        chess.Square
	promotion chess.PieceType
}

// notationError builds a ParseError for malformed move text.
func notationError(text, field, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidNotation,
		Input:    text,
		Field:    field,
		Expected: expected,
	}
}

// DecodeMove resolves move text in either LAN or SAN against the legal
// moves of pos. LAN is tried first.
func DecodeMove(pos *chess.Position, text string) (chess.Move, error) {
	if looksLikeLAN(text) {
		return DecodeLAN(pos, text)
	}
	return DecodeSAN(pos, text)
}

// looksLikeLAN reports whether text has the shape of a coordinate move.
func looksLikeLAN(text string) bool {
	return (len(text) == 4 || len(text) == 5) &&
		isCol(text[0]) && isRank(text[1]) && isCol(text[2]) && isRank(text[3])
}

// DecodeLAN resolves a coordinate move such as "e2e4" or "e7e8q".
func DecodeLAN(pos *chess.Position, text string) (chess.Move, error) {
	if !looksLikeLAN(text) {
		return chess.Move{}, notationError(text, "LAN", "origin and destination squares")
	}
	from, _ := chess.ParseSquare(text[0:2])
	to, _ := chess.ParseSquare(text[2:4])

	promotion := chess.NoPieceType
	if len(text) == 5 {
		promotion = chess.PieceTypeFromLetter(text[4])
		if !promotion.IsPromotionTarget() {
			return chess.Move{}, notationError(text, "LAN", "promotion letter q, r, b or n")
		}
	}

	for _, m := range LegalMoves(pos) {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%s: %w", text, errors.ErrIllegalMove)
}

// DecodeSAN resolves a standard algebraic move such as "Nf3", "exd5",
// "R1e2", "e8=Q+" or "O-O-O".
func DecodeSAN(pos *chess.Position, text string) (chess.Move, error) {
	q, err := parseSAN(text)
	if err != nil {
		return chess.Move{}, err
	}

	var found []chess.Move
	for _, m := range LegalMoves(pos) {
		if q.matches(m) {
			found = append(found, m)
		}
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return chess.Move{}, fmt.Errorf("%s: %w", text, errors.ErrIllegalMove)
	default:
		return chess.Move{}, fmt.Errorf("%s is ambiguous (%d candidates): %w", text, len(found), errors.ErrIllegalMove)
	}
}

// parseSAN splits SAN text into its parts without consulting a position.
func parseSAN(text string) (sanQuery, error) {
	q := sanQuery{}
	s := strings.TrimRightFunc(text, func(r rune) bool { return r < 0x80 && isCheck(byte(r)) })
	if s == "" {
		return q, notationError(text, "SAN", "a move")
	}

	if isCastlingChar(s[0]) {
		return parseCastling(text, s)
	}

	// Promotion suffix: "=Q" or a bare trailing piece letter.
	if n := len(s); n >= 3 {
		if t := chess.PieceTypeFromLetter(s[n-1]); t != chess.NoPieceType && s[n-1] >= 'A' && s[n-1] <= 'Z' {
			if !t.IsPromotionTarget() {
				return q, notationError(text, "SAN", "promotion to Q, R, B or N")
			}
			q.promotion = t
			s = strings.TrimSuffix(s[:n-1], "=")
		}
	}

	q.piece = chess.Pawn
	if c := s[0]; c >= 'A' && c <= 'Z' {
		q.piece = chess.PieceTypeFromLetter(c)
		if q.piece == chess.NoPieceType || q.piece == chess.Pawn {
			return q, notationError(text, "SAN", "piece letter K, Q, R, B or N")
		}
		s = s[1:]
	}

	if len(s) < 2 || !isCol(s[len(s)-2]) || !isRank(s[len(s)-1]) {
		return q, notationError(text, "SAN", "destination square")
	}
	q.to, _ = chess.ParseSquare(s[len(s)-2:])
	s = s[:len(s)-2]

	if n := len(s); n > 0 && isCapture(s[n-1]) {
		q.capture = true
		s = s[:n-1]
	}

	// Whatever is left disambiguates the origin.
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isCol(c) && q.fromFile == 0 && q.fromRank == 0:
			q.fromFile = int(c-chess.FileBase) + 1
		case isRank(c) && q.fromRank == 0:
			q.fromRank = int(c-chess.RankBase) + 1
		default:
			return q, notationError(text, "SAN", "origin file or rank")
		}
	}

	if q.piece == chess.Pawn && q.promotion != chess.NoPieceType && q.to.RelativeRank(chess.White) != chess.LastRank && q.to.RelativeRank(chess.Black) != chess.LastRank {
		return q, notationError(text, "SAN", "promotion on the last rank")
	}
	if q.piece != chess.Pawn && q.promotion != chess.NoPieceType {
		return q, notationError(text, "SAN", "promotion by a pawn")
	}
	return q, nil
}

// parseCastling accepts O-O and O-O-O, also written with zeros.
func parseCastling(text, s string) (sanQuery, error) {
	norm := strings.NewReplacer("0", "O", "o", "O").Replace(s)
	switch norm {
	case kingsideCastleSAN:
		return sanQuery{castle: chess.KingsideCastle}, nil
	case queensideCastleSAN:
		return sanQuery{castle: chess.QueensideCastle}, nil
	}
	return sanQuery{}, notationError(text, "SAN", "O-O or O-O-O")
}

// matches reports whether the legal move m fits the query.
func (q sanQuery) matches(m chess.Move) bool {
	if q.castle != chess.NoSpecial {
		return m.Special == q.castle
	}
	if m.IsCastle() || m.PieceType != q.piece || m.To != q.to {
		return false
	}
	if q.fromFile != 0 && m.From.File() != q.fromFile {
		return false
	}
	if q.fromRank != 0 && m.From.Rank() != q.fromRank {
		return false
	}
	if q.capture && !m.IsCapture() {
		return false
	}
	// A pawn capture must name its origin file.
	if q.piece == chess.Pawn && m.IsCapture() && q.fromFile == 0 {
		return false
	}
	return m.Promotion == q.promotion
}
