package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// LegalMoves returns every legal move for the side to move, ordered by
// origin square and then generation order. Each move carries its Check
// and Mate annotations (a mating move has both set).
func LegalMoves(pos *chess.Position) []chess.Move {
	return generateLegal(pos, true)
}

// LegalMovesForPiece returns the legal moves of one piece. It is empty
// when id is not an active piece of the side to move.
func LegalMovesForPiece(pos *chess.Position, id chess.PieceID) []chess.Move {
	piece, err := pos.Piece(id)
	if err != nil || piece.Captured || piece.Colour != pos.ToMove {
		return nil
	}
	return filterLegal(pos, pseudoLegalMoves(pos, piece, nil), true)
}

// GenerateMoves returns the legal moves like LegalMoves but without the
// Check and Mate annotations. It is the fast path for perft.
func GenerateMoves(pos *chess.Position) []chess.Move {
	return generateLegal(pos, false)
}

// generateLegal generates the legal moves, optionally annotating check and mate.
// Perft skips annotation since it only counts leaves.
func generateLegal(pos *chess.Position, annotate bool) []chess.Move {
	var pseudo []chess.Move
	for _, piece := range pos.ActivePieces(pos.ToMove) {
		pseudo = pseudoLegalMoves(pos, piece, pseudo)
	}
	return filterLegal(pos, pseudo, annotate)
}

// filterLegal drops the moves that leave the mover's king in check.
func filterLegal(pos *chess.Position, pseudo []chess.Move, annotate bool) []chess.Move {
	colour := pos.ToMove
	legal := make([]chess.Move, 0, len(pseudo))

	for _, m := range pseudo {
		after := pos.Copy()
		if err := applyMove(after, m); err != nil {
			continue
		}
		if IsInCheck(after, colour) {
			continue
		}
		if annotate && IsInCheck(after, after.ToMove) {
			m.Check = true
			m.Mate = !HasLegalMoves(after)
		}
		legal = append(legal, m)
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	colour := pos.ToMove
	for _, piece := range pos.ActivePieces(colour) {
		for _, m := range pseudoLegalMoves(pos, piece, nil) {
			if leavesKingSafe(pos, m) {
				return true
			}
		}
	}
	return false
}

// leavesKingSafe tries a move on a copy and checks the mover's king.
func leavesKingSafe(pos *chess.Position, m chess.Move) bool {
	after := pos.Copy()
	if err := applyMove(after, m); err != nil {
		return false
	}
	return !IsInCheck(after, m.Colour)
}

// IsLegal reports whether move matches one of the legal moves of pos,
// ignoring the Check and Mate annotations. The matching generated move is
// returned with its annotations filled in.
func IsLegal(pos *chess.Position, move chess.Move) (chess.Move, bool) {
	piece, err := pos.Piece(move.Piece)
	if err != nil || piece.Captured || piece.Colour != pos.ToMove {
		return chess.Move{}, false
	}
	for _, m := range LegalMovesForPiece(pos, move.Piece) {
		if m.SameAs(move) {
			return m, true
		}
	}
	return chess.Move{}, false
}
