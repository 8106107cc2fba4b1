package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// FiftyMoveHalfmoves is the half-move clock value at which the fifty-move rule applies.
const FiftyMoveHalfmoves = 100

// IsFiftyMoveRule returns true once 50 moves by each side have been made
// without a pawn move or capture.
func IsFiftyMoveRule(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveHalfmoves
}

// HasInsufficientMaterial returns true if neither side has mating material.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B(s) vs K+B(s), all bishops on the same square colour
func HasInsufficientMaterial(pos *chess.Position) bool {
	var minors []chess.Piece

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, piece := range pos.ActivePieces(colour) {
			switch piece.Type {
			case chess.King:
				// Kings don't count for material
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			default:
				minors = append(minors, piece)
			}
		}
	}

	// K vs K, K+minor vs K
	if len(minors) <= 1 {
		return true
	}

	// Only bishops, all on the same square colour
	light := minors[0].Square.IsLight()
	for _, piece := range minors {
		if piece.Type != chess.Bishop || piece.Square.IsLight() != light {
			return false
		}
	}
	return true
}

// CanMate reports whether colour still has material that could in principle
// deliver mate. A lone king, or a king with a single minor piece, cannot.
// Used to decide a flag fall against a side without mating material.
func CanMate(pos *chess.Position, colour chess.Colour) bool {
	minors := 0
	for _, piece := range pos.ActivePieces(colour) {
		switch piece.Type {
		case chess.King:
		case chess.Pawn, chess.Rook, chess.Queen:
			return true
		default:
			minors++
		}
	}
	return minors >= 2
}
