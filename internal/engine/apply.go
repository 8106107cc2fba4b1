package engine

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// ApplyMove applies a move to the position and updates the position state.
// Legality is not checked; the move must however describe a piece of this
// position standing on move.From, otherwise an error wrapping
// errors.ErrMismatchedContext is returned and pos is left unchanged.
func ApplyMove(pos *chess.Position, move chess.Move) error {
	work := pos.Copy()
	if err := applyMove(work, move); err != nil {
		return err
	}
	*pos = *work
	return nil
}

// applyMove mutates pos in place. On error pos may be partially updated,
// so callers must own a scratch copy.
func applyMove(pos *chess.Position, move chess.Move) error {
	piece, err := pos.Piece(move.Piece)
	if err != nil {
		return err
	}
	if err := checkContext(pos, piece, move); err != nil {
		return err
	}

	if move.IsCastle() {
		err = applyCastle(pos, move)
	} else {
		err = applyPieceMove(pos, move)
	}
	if err != nil {
		return err
	}

	pos.Castling.RevokeForSquare(move.From)
	pos.Castling.RevokeForSquare(move.To)

	pos.EnPassant = chess.NoSquare
	if move.PieceType == chess.Pawn && abs(move.To.Rank()-move.From.Rank()) == 2 {
		pos.EnPassant, _ = move.From.Offset(0, move.Colour.Forward())
	}

	if move.PieceType == chess.Pawn || move.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if pos.ToMove == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = pos.ToMove.Opposite()
	return nil
}

// checkContext verifies that move refers to the live piece it claims to move.
func checkContext(pos *chess.Position, piece chess.Piece, move chess.Move) error {
	switch {
	case piece.Captured:
		return fmt.Errorf("piece %d has been captured: %w", move.Piece, errors.ErrMismatchedContext)
	case piece.Square != move.From:
		return fmt.Errorf("piece %d is on %s, not %s: %w", move.Piece, piece.Square, move.From, errors.ErrMismatchedContext)
	case piece.Type != move.PieceType || piece.Colour != move.Colour:
		return fmt.Errorf("piece %d is a %s %s, not a %s %s: %w",
			move.Piece, piece.Colour, piece.Type, move.Colour, move.PieceType, errors.ErrMismatchedContext)
	case piece.Colour != pos.ToMove:
		return fmt.Errorf("%s is not to move: %w", piece.Colour, errors.ErrMismatchedContext)
	}
	return nil
}

// applyPieceMove handles every non-castling move, pawn moves included.
func applyPieceMove(pos *chess.Position, move chess.Move) error {
	if move.IsCapture() {
		victim, err := pos.Piece(move.Captured)
		if err != nil {
			return err
		}
		if !move.EnPassant && victim.Square != move.To {
			return fmt.Errorf("captured piece %d is not on %s: %w", move.Captured, move.To, errors.ErrMismatchedContext)
		}
		if victim.Colour == move.Colour {
			return fmt.Errorf("cannot capture own %s: %w", victim.Type, errors.ErrMismatchedContext)
		}
		if err := pos.CapturePiece(move.Captured); err != nil {
			return err
		}
	}

	if err := pos.MovePieceTo(move.Piece, move.To); err != nil {
		return err
	}

	if move.IsPromotion() {
		return pos.PromotePiece(move.Piece, move.Promotion)
	}
	return nil
}

// applyCastle moves the king and its rook.
func applyCastle(pos *chess.Position, move chess.Move) error {
	path, ok := castlingPathFor(move.Colour, move.Special)
	if !ok || move.From != path.kingFrom || move.To != path.kingTo {
		return fmt.Errorf("%s %s from %s: %w", move.Colour, move.Special, move.From, errors.ErrMismatchedContext)
	}

	rook, ok := pos.PieceAt(path.rookFrom)
	if !ok || rook.Type != chess.Rook || rook.Colour != move.Colour {
		return fmt.Errorf("no %s rook on %s: %w", move.Colour, path.rookFrom, errors.ErrMismatchedContext)
	}

	if err := pos.MovePieceTo(move.Piece, path.kingTo); err != nil {
		return err
	}
	return pos.MovePieceTo(rook.ID, path.rookTo)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
