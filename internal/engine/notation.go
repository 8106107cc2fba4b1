package engine

import (
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// Castling tokens in SAN.
const (
	kingsideCastleSAN  = "O-O"
	queensideCastleSAN = "O-O-O"
)

// LAN returns the long algebraic (UCI) form of a move: origin square,
// destination square and a lowercase promotion letter, e.g. "e7e8q".
// Castling is written as the king's move, e.g. "e1g1".
func LAN(move chess.Move) string {
	var sb strings.Builder
	sb.WriteString(move.From.String())
	sb.WriteString(move.To.String())
	if move.IsPromotion() {
		sb.WriteByte(move.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// SAN returns the standard algebraic form of move, which must be a move of
// the side to move in pos (the position before the move). The check and
// mate suffix is computed from pos, whatever the move's own annotations say.
func SAN(pos *chess.Position, move chess.Move) string {
	var sb strings.Builder

	switch move.Special {
	case chess.KingsideCastle:
		sb.WriteString(kingsideCastleSAN)
	case chess.QueensideCastle:
		sb.WriteString(queensideCastleSAN)
	default:
		writeSANBody(&sb, pos, move)
	}

	check, mate := checkStatus(pos, move)
	switch {
	case mate:
		sb.WriteByte('#')
	case check:
		sb.WriteByte('+')
	}
	return sb.String()
}

// writeSANBody writes piece letter, disambiguation, capture marker,
// destination and promotion.
func writeSANBody(sb *strings.Builder, pos *chess.Position, move chess.Move) {
	if move.PieceType == chess.Pawn {
		if move.IsCapture() {
			sb.WriteByte(move.From.FileChar())
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if move.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(move.Promotion.Letter())
		}
		return
	}

	sb.WriteByte(move.PieceType.Letter())
	sb.WriteString(disambiguation(pos, move))
	if move.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())
}

// disambiguation returns the origin qualifier needed to tell move apart
// from moves of other same-type pieces to the same destination: the file
// when it is unique, else the rank when it is unique, else the full square.
func disambiguation(pos *chess.Position, move chess.Move) string {
	var rivals []chess.Square
	for _, m := range generateLegal(pos, false) {
		if m.PieceType == move.PieceType && m.To == move.To && m.Piece != move.Piece && !m.IsCastle() {
			rivals = append(rivals, m.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.File() == move.From.File() {
			sameFile = true
		}
		if sq.Rank() == move.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return string(move.From.FileChar())
	case !sameRank:
		return string(move.From.RankChar())
	default:
		return move.From.String()
	}
}

// checkStatus plays move on a copy and reports whether it gives check or mate.
func checkStatus(pos *chess.Position, move chess.Move) (check, mate bool) {
	after := pos.Copy()
	if err := applyMove(after, move); err != nil {
		return move.Check, move.Mate
	}
	if !IsInCheck(after, after.ToMove) {
		return false, false
	}
	return true, !HasLegalMoves(after)
}
