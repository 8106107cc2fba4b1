package chess

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Position represents a chess board with all state needed to continue play.
// It exclusively owns its square table and its piece records; pieces and
// squares refer to each other by index, never by pointer.
type Position struct {
	// Occupant of each square, NoPiece when empty.
	squares [NumSquares]PieceID

	// Every piece ever placed in this position, captured ones included.
	pieces []Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling permissions.
	Castling CastlingRights

	// En-passant target square, NoSquare when no double step just happened.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The full-move number, starting at 1 and incremented after Black moves.
	MoveNumber int
}

// NewPosition creates a new empty position with White to move.
func NewPosition() *Position {
	p := &Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
	for i := range p.squares {
		p.squares[i] = NoPiece
	}
	return p
}

// SetupInitialPosition places the standard starting pieces on an empty position.
func (p *Position) SetupInitialPosition() {
	*p = *NewPosition()

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := FirstFile; file <= LastFile; file++ {
		p.mustAdd(backRank[file-1], White, file, 1)
		p.mustAdd(Pawn, White, file, 2)
	}
	for file := FirstFile; file <= LastFile; file++ {
		p.mustAdd(Pawn, Black, file, 7)
		p.mustAdd(backRank[file-1], Black, file, 8)
	}
	p.Castling = AllCastlingRights
}

func (p *Position) mustAdd(t PieceType, c Colour, file, rank int) {
	sq, _ := NewSquare(file, rank)
	if _, err := p.AddPiece(t, c, sq); err != nil {
		panic(err)
	}
}

// AddPiece places a new piece on an empty square and returns its id.
func (p *Position) AddPiece(t PieceType, c Colour, sq Square) (PieceID, error) {
	if !sq.IsValid() {
		return NoPiece, errors.ErrOutOfRange
	}
	if p.squares[sq] != NoPiece {
		return NoPiece, fmt.Errorf("square %s already occupied: %w", sq, errors.ErrMismatchedContext)
	}
	id := PieceID(len(p.pieces))
	p.pieces = append(p.pieces, Piece{ID: id, Type: t, Colour: c, Square: sq})
	p.squares[sq] = id
	return id, nil
}

// PieceAt returns the active piece on sq, if any.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return Piece{}, false
	}
	id := p.squares[sq]
	if id == NoPiece {
		return Piece{}, false
	}
	return p.pieces[id], true
}

// IsEmpty reports whether sq holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return sq.IsValid() && p.squares[sq] == NoPiece
}

// Piece returns the record for id, which may be a captured piece.
func (p *Position) Piece(id PieceID) (Piece, error) {
	if id < 0 || int(id) >= len(p.pieces) {
		return Piece{}, fmt.Errorf("piece %d not in this position: %w", id, errors.ErrMismatchedContext)
	}
	return p.pieces[id], nil
}

// Pieces returns every piece record, including captured pieces.
func (p *Position) Pieces() []Piece {
	out := make([]Piece, len(p.pieces))
	copy(out, p.pieces)
	return out
}

// ActivePieces returns the pieces of colour still on the board, ordered by square.
func (p *Position) ActivePieces(colour Colour) []Piece {
	var out []Piece
	for sq := Square(0); sq < NumSquares; sq++ {
		if id := p.squares[sq]; id != NoPiece && p.pieces[id].Colour == colour {
			out = append(out, p.pieces[id])
		}
	}
	return out
}

// KingSquare returns the square of colour's king, or NoSquare if absent.
func (p *Position) KingSquare(colour Colour) Square {
	for _, piece := range p.pieces {
		if piece.Type == King && piece.Colour == colour && !piece.Captured {
			return piece.Square
		}
	}
	return NoSquare
}

// activePiece validates that id names a piece of this position still on the board.
func (p *Position) activePiece(id PieceID) (*Piece, error) {
	if id < 0 || int(id) >= len(p.pieces) {
		return nil, fmt.Errorf("piece %d not in this position: %w", id, errors.ErrMismatchedContext)
	}
	piece := &p.pieces[id]
	if piece.Captured || !piece.Square.IsValid() || p.squares[piece.Square] != id {
		return nil, fmt.Errorf("piece %d is not on the board: %w", id, errors.ErrMismatchedContext)
	}
	return piece, nil
}

// MovePieceTo relocates an active piece to an empty square (or its own square).
// Captures must be performed first with CapturePiece.
func (p *Position) MovePieceTo(id PieceID, sq Square) error {
	piece, err := p.activePiece(id)
	if err != nil {
		return err
	}
	if !sq.IsValid() {
		return fmt.Errorf("destination %d: %w", sq, errors.ErrMismatchedContext)
	}
	if occupant := p.squares[sq]; occupant != NoPiece && occupant != id {
		return fmt.Errorf("destination %s occupied: %w", sq, errors.ErrMismatchedContext)
	}
	p.squares[piece.Square] = NoPiece
	p.squares[sq] = id
	piece.Square = sq
	return nil
}

// CapturePiece removes an active piece from the board. The record stays.
func (p *Position) CapturePiece(id PieceID) error {
	piece, err := p.activePiece(id)
	if err != nil {
		return err
	}
	p.squares[piece.Square] = NoPiece
	piece.Square = NoSquare
	piece.Captured = true
	return nil
}

// PromotePiece changes the type of an active pawn in place.
func (p *Position) PromotePiece(id PieceID, t PieceType) error {
	piece, err := p.activePiece(id)
	if err != nil {
		return err
	}
	if piece.Type != Pawn || !t.IsPromotionTarget() {
		return fmt.Errorf("cannot promote %s to %s: %w", piece.Type, t, errors.ErrMismatchedContext)
	}
	piece.Type = t
	return nil
}

// Copy creates a deep copy of the position. Piece ids stay valid in the copy.
func (p *Position) Copy() *Position {
	c := *p
	c.pieces = make([]Piece, len(p.pieces))
	copy(c.pieces, p.pieces)
	return &c
}
