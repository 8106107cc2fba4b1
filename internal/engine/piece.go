package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// newMove builds the plain move of piece to sq, recording any occupant of sq as captured.
func newMove(pos *chess.Position, piece chess.Piece, to chess.Square) chess.Move {
	m := chess.Move{
		Piece:     piece.ID,
		PieceType: piece.Type,
		Colour:    piece.Colour,
		From:      piece.Square,
		To:        to,
		Captured:  chess.NoPiece,
	}
	if target, ok := pos.PieceAt(to); ok {
		m.Captured = target.ID
		m.CapturedType = target.Type
	}
	return m
}

// pseudoLegalMoves appends the pattern moves of piece to moves, ignoring
// whether they leave the mover's own king in check.
func pseudoLegalMoves(pos *chess.Position, piece chess.Piece, moves []chess.Move) []chess.Move {
	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(pos, piece, moves)
	case chess.Knight:
		return stepMoves(pos, piece, knightOffsets[:], moves)
	case chess.King:
		moves = stepMoves(pos, piece, kingOffsets[:], moves)
		return castlingMoves(pos, piece, moves)
	case chess.Bishop:
		return slideMoves(pos, piece, diagonalDirs[:], moves)
	case chess.Rook:
		return slideMoves(pos, piece, straightDirs[:], moves)
	case chess.Queen:
		return slideMoves(pos, piece, allSlidingDirs[:], moves)
	}
	return moves
}

// stepMoves handles knights and kings: each offset is tried once.
func stepMoves(pos *chess.Position, piece chess.Piece, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to, err := piece.Square.Offset(off[0], off[1])
		if err != nil {
			continue // off the board: no such destination
		}
		if target, ok := pos.PieceAt(to); ok && target.Colour == piece.Colour {
			continue
		}
		moves = append(moves, newMove(pos, piece, to))
	}
	return moves
}

// slideMoves ray-casts in each direction until the edge or a blocker.
// An enemy blocker is included as a capture, a friendly one is not.
func slideMoves(pos *chess.Position, piece chess.Piece, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		cur := piece.Square
		for {
			next, err := cur.Offset(dir[0], dir[1])
			if err != nil {
				break
			}
			cur = next
			target, ok := pos.PieceAt(cur)
			if ok && target.Colour == piece.Colour {
				break
			}
			moves = append(moves, newMove(pos, piece, cur))
			if ok {
				break // Blocked
			}
		}
	}
	return moves
}
