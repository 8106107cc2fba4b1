package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

var (
	knightOffsets   = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs  = [8][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	pawnCaptureDirs = [2]int{-1, 1}
)

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.KingSquare(colour)
	if king == chess.NoSquare {
		return false // No king found
	}
	return IsSquareAttacked(pos, king, colour.Opposite())
}

// IsSquareAttacked returns true if any active piece of byColour attacks sq.
// Pawns attack diagonally only; occupancy of sq itself is irrelevant.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: look one rank back from the attacker's point of view.
	for _, df := range pawnCaptureDirs {
		from, err := sq.Offset(df, -byColour.Forward())
		if err != nil {
			continue
		}
		if isPiece(pos, from, byColour, chess.Pawn) {
			return true
		}
	}

	// Check knight attacks
	for _, off := range knightOffsets {
		from, err := sq.Offset(off[0], off[1])
		if err != nil {
			continue
		}
		if isPiece(pos, from, byColour, chess.Knight) {
			return true
		}
	}

	// Check king attacks
	for _, off := range kingOffsets {
		from, err := sq.Offset(off[0], off[1])
		if err != nil {
			continue
		}
		if isPiece(pos, from, byColour, chess.King) {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	if slidingAttack(pos, sq, byColour, diagonalDirs[:], chess.Bishop) {
		return true
	}
	return slidingAttack(pos, sq, byColour, straightDirs[:], chess.Rook)
}

// slidingAttack walks each ray from sq and reports whether the first piece
// met is an enemy slider (of the given type or a queen).
func slidingAttack(pos *chess.Position, sq chess.Square, byColour chess.Colour, dirs [][2]int, slider chess.PieceType) bool {
	for _, dir := range dirs {
		cur := sq
		for {
			next, err := cur.Offset(dir[0], dir[1])
			if err != nil {
				break
			}
			cur = next
			piece, ok := pos.PieceAt(cur)
			if !ok {
				continue
			}
			if piece.Colour == byColour && (piece.Type == slider || piece.Type == chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}

// isPiece reports whether sq holds a piece of the given colour and type.
func isPiece(pos *chess.Position, sq chess.Square, colour chess.Colour, t chess.PieceType) bool {
	piece, ok := pos.PieceAt(sq)
	return ok && piece.Colour == colour && piece.Type == t
}
