package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags        map[string]string `json:"tags"`
	Moves       []JSONMove        `json:"moves,omitempty"`
	Result      string            `json:"result"`
	Termination string            `json:"termination,omitempty"`
	PlyCount    int               `json:"plyCount"`
	InitialFEN  string            `json:"initialFEN"`
	FinalFEN    string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     string `json:"castle,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// RecordToJSON converts a game record to JSON format.
func RecordToJSON(rec *Record, cfg *config.OutputConfig) *JSONGame {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	jg := &JSONGame{
		Tags:       make(map[string]string, len(rec.Tags)+len(chess.SevenTagRoster)),
		Moves:      make([]JSONMove, 0, len(rec.Moves)),
		Result:     rec.Outcome.String(),
		PlyCount:   len(rec.Moves),
		InitialFEN: rec.StartFEN,
		FinalFEN:   rec.FinalFEN(),
	}
	if rec.Termination != chess.NoTermination {
		jg.Termination = rec.Termination.String()
	}
	for _, tag := range pgnTags(rec, false) {
		jg.Tags[tag[0]] = tag[1]
	}

	moveNum, isWhite := rec.startNumbering()
	for i, m := range rec.Moves {
		jm := convertMove(m, rec.SAN[i])
		jm.Color = colorName(isWhite)
		if isWhite {
			jm.MoveNumber = moveNum
		}
		if cfg.AddFENs && i < len(rec.FENs) {
			jm.FEN = rec.FENs[i]
		}
		jg.Moves = append(jg.Moves, jm)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	return jg
}

// convertMove converts a single move to JSON format.
func convertMove(m chess.Move, san string) JSONMove {
	jm := JSONMove{
		SAN:   san,
		UCI:   engine.LAN(m),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: pieceTypeName(m.PieceType),
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.CapturedType)
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	switch m.Special {
	case chess.KingsideCastle:
		jm.Castle = "kingside"
	case chess.QueensideCastle:
		jm.Castle = "queenside"
	}
	return jm
}

func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}

func pieceTypeName(t chess.PieceType) string {
	return strings.ToLower(t.String())
}

// WriteJSON writes a single record as indented JSON.
func WriteJSON(w io.Writer, rec *Record, cfg *config.OutputConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RecordToJSON(rec, cfg))
}
