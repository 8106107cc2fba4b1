// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenError builds a ParseError for one FEN field.
func fenError(fen, field, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// NewPositionFromFEN creates a position from a FEN string.
// The half-move and full-move fields may be omitted; they default to "0 1".
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fenError(fen, "fields", "6 space-separated fields", strconv.Itoa(len(parts)))
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(pos, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, fen, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, fen, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, fen, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, fen, parts[4:]); err != nil {
		return nil, err
	}

	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "piece placement", "8 ranks", strconv.Itoa(len(ranks)))
	}

	kings := map[chess.Colour]int{}
	for i, rankText := range ranks {
		rank := chess.LastRank - i
		file := chess.FirstFile

		for _, c := range rankText {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece := chess.PieceTypeFromLetter(byte(c))
				if piece == chess.NoPieceType || c > unicode.MaxASCII {
					return fenError(fen, "piece placement", "piece letter or digit", fmt.Sprintf("%q", c))
				}
				if file > chess.LastFile {
					return fenError(fen, fmt.Sprintf("rank %d", rank), "8 files", "more")
				}
				if piece == chess.Pawn && (rank == chess.FirstRank || rank == chess.LastRank) {
					return fenError(fen, fmt.Sprintf("rank %d", rank), "no pawns on the first or last rank", "pawn")
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				sq, _ := chess.NewSquare(file, rank)
				if _, err := pos.AddPiece(piece, colour, sq); err != nil {
					return fenError(fen, fmt.Sprintf("rank %d", rank), "8 files", err.Error())
				}
				if piece == chess.King {
					kings[colour]++
				}
				file++
			}
		}

		if file != chess.LastFile+1 {
			return fenError(fen, fmt.Sprintf("rank %d", rank), "8 files", strconv.Itoa(file-1))
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return fenError(fen, "piece placement", "one "+strings.ToLower(colour.String())+" king", strconv.Itoa(kings[colour]))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, fen, side string) error {
	switch side {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fenError(fen, "side to move", "w or b", side)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, fen, field string) error {
	pos.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}

	seen := map[rune]bool{}
	for _, c := range field {
		if seen[c] {
			return fenError(fen, "castling", "each of KQkq at most once", string(c))
		}
		seen[c] = true

		switch c {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		default:
			return fenError(fen, "castling", "KQkq or -", string(c))
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
// The target must be empty and lie on the rank the side to move captures onto.
func parseEnPassant(pos *chess.Position, fen, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(fen, "en passant", "square or -", field)
	}
	if sq.RelativeRank(pos.ToMove) != 6 {
		return fenError(fen, "en passant", "target on rank 3 or 6 behind the side that just moved", field)
	}
	if !pos.IsEmpty(sq) {
		return fenError(fen, "en passant", "vacant target square", field)
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fen string, fields []string) error {
	pos.HalfmoveClock = 0
	pos.MoveNumber = 1

	if len(fields) >= 1 {
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return fenError(fen, "halfmove clock", "non-negative integer", fields[0])
		}
		pos.HalfmoveClock = n
	}
	if len(fields) >= 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return fenError(fen, "fullmove number", "positive integer", fields[1])
		}
		pos.MoveNumber = n
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sq, _ := chess.NewSquare(file, rank)
			piece, ok := pos.PieceAt(sq)
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *chess.Position {
	pos := chess.NewPosition()
	pos.SetupInitialPosition()
	return pos
}
