package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// castlingPath describes one castling option in standard chess.
type castlingPath struct {
	special  chess.SpecialMove
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	between  []chess.Square // must be empty
	transit  []chess.Square // must not be attacked (king's path incl. landing square)
}

var castlingPaths = map[chess.Colour][2]castlingPath{
	chess.White: {
		{
			special: chess.KingsideCastle, kingFrom: chess.E1, kingTo: chess.G1,
			rookFrom: chess.H1, rookTo: chess.F1,
			between: []chess.Square{chess.F1, chess.G1},
			transit: []chess.Square{chess.F1, chess.G1},
		},
		{
			special: chess.QueensideCastle, kingFrom: chess.E1, kingTo: chess.C1,
			rookFrom: chess.A1, rookTo: chess.D1,
			between: []chess.Square{chess.D1, chess.C1, chess.B1},
			transit: []chess.Square{chess.D1, chess.C1},
		},
	},
	chess.Black: {
		{
			special: chess.KingsideCastle, kingFrom: chess.E8, kingTo: chess.G8,
			rookFrom: chess.H8, rookTo: chess.F8,
			between: []chess.Square{chess.F8, chess.G8},
			transit: []chess.Square{chess.F8, chess.G8},
		},
		{
			special: chess.QueensideCastle, kingFrom: chess.E8, kingTo: chess.C8,
			rookFrom: chess.A8, rookTo: chess.D8,
			between: []chess.Square{chess.D8, chess.C8, chess.B8},
			transit: []chess.Square{chess.D8, chess.C8},
		},
	},
}

// castlingPathFor returns the path for colour and castling kind.
func castlingPathFor(colour chess.Colour, special chess.SpecialMove) (castlingPath, bool) {
	for _, path := range castlingPaths[colour] {
		if path.special == special {
			return path, true
		}
	}
	return castlingPath{}, false
}

// hasCastlingRight reports whether the rights record still allows path.
func hasCastlingRight(rights chess.CastlingRights, colour chess.Colour, special chess.SpecialMove) bool {
	if special == chess.KingsideCastle {
		return rights.Kingside(colour)
	}
	return rights.Queenside(colour)
}

// castlingMoves appends the castling moves available to king.
func castlingMoves(pos *chess.Position, king chess.Piece, moves []chess.Move) []chess.Move {
	colour := king.Colour
	opponent := colour.Opposite()

	for _, path := range castlingPaths[colour] {
		if !hasCastlingRight(pos.Castling, colour, path.special) {
			continue
		}
		if king.Square != path.kingFrom || !isPiece(pos, path.rookFrom, colour, chess.Rook) {
			continue
		}
		if !pathClear(pos, path.between) {
			continue
		}
		// Checked last: attack detection is the expensive part.
		if IsSquareAttacked(pos, path.kingFrom, opponent) || anyAttacked(pos, path.transit, opponent) {
			continue
		}
		moves = append(moves, chess.Move{
			Piece:     king.ID,
			PieceType: chess.King,
			Colour:    colour,
			From:      path.kingFrom,
			To:        path.kingTo,
			Captured:  chess.NoPiece,
			Special:   path.special,
		})
	}
	return moves
}

// pathClear reports whether every square is empty.
func pathClear(pos *chess.Position, squares []chess.Square) bool {
	for _, sq := range squares {
		if !pos.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// anyAttacked reports whether any of the squares is attacked by colour.
func anyAttacked(pos *chess.Position, squares []chess.Square, by chess.Colour) bool {
	for _, sq := range squares {
		if IsSquareAttacked(pos, sq, by) {
			return true
		}
	}
	return false
}
