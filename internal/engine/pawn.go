package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// Relative ranks that drive pawn rules.
const (
	pawnHomeRank      = 2
	pawnPromotionRank = 8
)

// pawnMoves generates pushes, double pushes, captures, en passant and promotions.
func pawnMoves(pos *chess.Position, pawn chess.Piece, moves []chess.Move) []chess.Move {
	dir := pawn.Colour.Forward()

	if one, err := pawn.Square.Offset(0, dir); err == nil && pos.IsEmpty(one) {
		moves = appendPawnMove(moves, newMove(pos, pawn, one))

		if pawn.Square.RelativeRank(pawn.Colour) == pawnHomeRank {
			if two, err := one.Offset(0, dir); err == nil && pos.IsEmpty(two) {
				moves = append(moves, newMove(pos, pawn, two))
			}
		}
	}

	for _, df := range pawnCaptureDirs {
		to, err := pawn.Square.Offset(df, dir)
		if err != nil {
			continue
		}
		if target, ok := pos.PieceAt(to); ok {
			if target.Colour != pawn.Colour {
				moves = appendPawnMove(moves, newMove(pos, pawn, to))
			}
			continue
		}
		if to == pos.EnPassant {
			if m, ok := enPassantMove(pos, pawn, to); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// enPassantMove builds the en-passant capture onto target. It requires an
// enemy pawn directly behind the target, on the capturing pawn's rank.
func enPassantMove(pos *chess.Position, pawn chess.Piece, target chess.Square) (chess.Move, bool) {
	victimSq, err := target.Offset(0, -pawn.Colour.Forward())
	if err != nil {
		return chess.Move{}, false
	}
	victim, ok := pos.PieceAt(victimSq)
	if !ok || victim.Type != chess.Pawn || victim.Colour == pawn.Colour {
		return chess.Move{}, false
	}

	m := newMove(pos, pawn, target)
	m.Captured = victim.ID
	m.CapturedType = chess.Pawn
	m.EnPassant = true
	return m, true
}

// appendPawnMove appends m, expanding a move to the last rank into one move
// per promotion piece.
func appendPawnMove(moves []chess.Move, m chess.Move) []chess.Move {
	if m.To.RelativeRank(m.Colour) != pawnPromotionRank {
		return append(moves, m)
	}
	for _, t := range chess.PromotionTypes {
		promo := m
		promo.Special = chess.Promotion
		promo.Promotion = t
		moves = append(moves, promo)
	}
	return moves
}
