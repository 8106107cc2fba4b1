// Package output exports game records as PGN or JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

// Record is a snapshot of a game for export.
type Record struct {
	Tags        map[string]string
	StartFEN    string
	Moves       []chess.Move
	SAN         []string
	FENs        []string // position after each move
	Outcome     chess.Outcome
	Termination chess.Termination
}

// FinalFEN returns the FEN after the last move.
func (r *Record) FinalFEN() string {
	if len(r.FENs) == 0 {
		return r.StartFEN
	}
	return r.FENs[len(r.FENs)-1]
}

// startNumbering returns the move number and side to move of the
// starting position.
func (r *Record) startNumbering() (int, bool) {
	pos, err := engine.NewPositionFromFEN(r.StartFEN)
	if err != nil {
		return 1, true
	}
	return pos.MoveNumber, pos.ToMove == chess.White
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Write writes a string, adding a space separator or a line break if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

// WritePGN writes a record as a PGN game: tags, a blank line, then movetext
// ending in the result token.
func WritePGN(w io.Writer, rec *Record, cfg *config.OutputConfig) error {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	ow := NewOutputWriter(w, cfg.MaxLineLength)

	if cfg.TagFormat != "none" {
		writeTags(ow, rec, cfg.TagFormat == "seven")
		ow.NewLine()
	}
	writeMoves(ow, rec, cfg)
	ow.NewLine()
	return ow.Err()
}

// pgnTags returns the tags of a record in export order: the seven tag
// roster, the set-up tags, the remaining derived tags, then caller tags
// sorted by name.
func pgnTags(rec *Record, sevenOnly bool) [][2]string {
	var tags [][2]string
	for _, tag := range chess.SevenTagRoster {
		value := rec.Tags[tag]
		if tag == chess.ResultTag {
			value = rec.Outcome.String()
		}
		if value == "" {
			value = "?"
		}
		tags = append(tags, [2]string{tag, value})
	}
	if sevenOnly {
		return tags
	}

	if rec.StartFEN != engine.InitialFEN {
		tags = append(tags,
			[2]string{chess.SetUpTag, "1"},
			[2]string{chess.FENTag, rec.StartFEN},
		)
	}
	if rec.Termination != chess.NoTermination {
		tags = append(tags, [2]string{chess.TerminationTag, rec.Termination.String()})
	}
	tags = append(tags, [2]string{chess.PlyCountTag, strconv.Itoa(len(rec.Moves))})

	extra := make([]string, 0, len(rec.Tags))
	for tag := range rec.Tags {
		if !chess.IsSevenTagRosterTag(tag) && !chess.IsDerivedTag(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		tags = append(tags, [2]string{tag, rec.Tags[tag]})
	}
	return tags
}

// writeTags outputs the game tags, one per line.
func writeTags(ow *OutputWriter, rec *Record, sevenOnly bool) {
	for _, tag := range pgnTags(rec, sevenOnly) {
		ow.print(fmt.Sprintf("[%s \"%s\"]\n", tag[0], escapeTagValue(tag[1])))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// moveText returns the text of move i in the configured notation.
func moveText(rec *Record, i int, notation string) string {
	if notation == "lan" {
		return engine.LAN(rec.Moves[i])
	}
	return rec.SAN[i]
}

// writeMoves outputs the movetext and the result token.
func writeMoves(ow *OutputWriter, rec *Record, cfg *config.OutputConfig) {
	moveNum, isWhite := rec.startNumbering()

	for i := range rec.Moves {
		if cfg.KeepMoveNumbers {
			if isWhite {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				// Black to move at start
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}
		ow.Write(moveText(rec, i, cfg.Notation))
		if cfg.AddFENs && i < len(rec.FENs) {
			ow.Write("{" + rec.FENs[i] + "}")
		}

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	ow.Write(rec.Outcome.String())
}
