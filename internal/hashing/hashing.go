// Package hashing provides Zobrist position hashing and repetition tracking.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// zobristKeys holds one random key per (colour, piece type, square) plus
// keys for side to move, each castling right and each en-passant file.
// The seed is fixed so hashes are stable across runs.
var zobristKeys = newZobristKeys(0x5eed_c0de, 0x0ddb_a11)

type zobristTable struct {
	pieces    [2][7][chess.NumSquares]uint64
	whiteMove uint64
	castling  [4]uint64
	epFile    [chess.BoardSize]uint64
}

func newZobristKeys(seed1, seed2 uint64) *zobristTable {
	rng := rand.New(rand.NewPCG(seed1, seed2))
	z := &zobristTable{}
	for c := range z.pieces {
		for t := range z.pieces[c] {
			for sq := range z.pieces[c][t] {
				z.pieces[c][t][sq] = rng.Uint64()
			}
		}
	}
	z.whiteMove = rng.Uint64()
	for i := range z.castling {
		z.castling[i] = rng.Uint64()
	}
	for i := range z.epFile {
		z.epFile[i] = rng.Uint64()
	}
	return z
}

// GenerateZobristHash returns the Zobrist hash of a position. Two positions
// hash equal when they have the same placement, side to move, castling
// rights and en-passant capture possibility; the clocks are ignored.
func GenerateZobristHash(pos *chess.Position) uint64 {
	var hash uint64

	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		for _, piece := range pos.ActivePieces(colour) {
			hash ^= zobristKeys.pieces[piece.Colour][piece.Type][piece.Square]
		}
	}

	if pos.ToMove == chess.White {
		hash ^= zobristKeys.whiteMove
	}

	rights := [4]bool{
		pos.Castling.WhiteKingside,
		pos.Castling.WhiteQueenside,
		pos.Castling.BlackKingside,
		pos.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= zobristKeys.castling[i]
		}
	}

	if enPassantCapturable(pos) {
		hash ^= zobristKeys.epFile[pos.EnPassant.File()-1]
	}
	return hash
}

// enPassantCapturable reports whether a pawn of the side to move stands
// next to the pawn that just double-stepped. A target nobody can use does
// not distinguish positions for repetition purposes.
func enPassantCapturable(pos *chess.Position) bool {
	if pos.EnPassant == chess.NoSquare {
		return false
	}
	behind := -pos.ToMove.Forward()
	for _, df := range []int{-1, 1} {
		sq, err := pos.EnPassant.Offset(df, behind)
		if err != nil {
			continue
		}
		if p, ok := pos.PieceAt(sq); ok && p.Type == chess.Pawn && p.Colour == pos.ToMove {
			return true
		}
	}
	return false
}

// RepetitionTable counts how often each position has occurred in a game.
type RepetitionTable struct {
	// counts maps Zobrist hash to occurrences
	counts map[uint64]int
	// maxCount is the highest count seen
	maxCount int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[uint64]int),
	}
}

// Add records an occurrence of pos and returns how often it has now occurred.
func (r *RepetitionTable) Add(pos *chess.Position) int {
	hash := GenerateZobristHash(pos)
	r.counts[hash]++
	n := r.counts[hash]
	if n > r.maxCount {
		r.maxCount = n
	}
	return n
}

// Count returns how often pos has occurred.
func (r *RepetitionTable) Count(pos *chess.Position) int {
	return r.counts[GenerateZobristHash(pos)]
}

// MaxCount returns the highest occurrence count of any position.
func (r *RepetitionTable) MaxCount() int {
	return r.maxCount
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTable) UniqueCount() int {
	return len(r.counts)
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[uint64]int)
	r.maxCount = 0
}
