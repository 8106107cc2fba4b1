package hashing

import (
	"testing"

	"github.com/lgbarn/chess-core-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial":   engine.InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			pos := mustPosition(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateZobristHash(pos)
			}
		})
	}
}

func BenchmarkRepetitionTable_Add(b *testing.B) {
	pos := mustPosition(b, benchFENPositions["Midgame"])
	table := NewRepetitionTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Add(pos)
	}
}

func BenchmarkNodeCache_Lookup(b *testing.B) {
	pos := mustPosition(b, benchFENPositions["Complex"])
	cache := NewNodeCache(0)
	cache.Store(pos, 3, 97862)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Lookup(pos, 3)
	}
}
