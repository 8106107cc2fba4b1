package engine

import (
	"testing"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   kiwipeteFEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewPositionFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewPositionFromFEN(fen)
			}
		})
	}
}

func BenchmarkPositionToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos := mustFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				PositionToFEN(pos)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos := mustFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(pos)
			}
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	pos := mustFEN(b, benchFENs["Midgame"])
	m, err := DecodeSAN(pos, "O-O")
	if err != nil {
		b.Fatalf("DecodeSAN failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ApplyMove(pos.Copy(), m)
	}
}

func BenchmarkSAN(b *testing.B) {
	pos := mustFEN(b, kiwipeteFEN)
	moves := LegalMoves(pos)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			SAN(pos, m)
		}
	}
}
