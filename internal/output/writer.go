package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-core-go/internal/config"
)

// GameWriter writes game records in one export format. Output may be
// held back until Flush or Close.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns a JSON writer when asJSON is set, else a PGN writer.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig, asJSON bool) GameWriter {
	if asJSON {
		return NewJSONWriter(w, cfg)
	}
	return NewPGNWriter(w, cfg)
}

// PGNWriter writes games in PGN format through a buffer; output reaches
// the underlying writer on Flush or Close.
type PGNWriter struct {
	bw    *bufio.Writer
	cfg   *config.OutputConfig
	count int
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.OutputConfig) *PGNWriter {
	return &PGNWriter{
		bw:  bufio.NewWriter(w),
		cfg: cfg,
	}
}

// WriteGame writes a game in PGN format followed by a blank line.
func (pw *PGNWriter) WriteGame(rec *Record) error {
	if err := WritePGN(pw.bw, rec, pw.cfg); err != nil {
		return err
	}
	if err := pw.bw.WriteByte('\n'); err != nil {
		return err
	}
	pw.count++
	return nil
}

// Count returns the number of games written.
func (pw *PGNWriter) Count() int {
	return pw.count
}

// Flush writes buffered games to the underlying writer.
func (pw *PGNWriter) Flush() error {
	return pw.bw.Flush()
}

// Close flushes the PGN writer. The underlying writer is left open.
func (pw *PGNWriter) Close() error {
	return pw.Flush()
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.OutputConfig
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
// The record is converted at once, so later changes to the game are not seen.
func (jw *JSONWriter) WriteGame(rec *Record) error {
	if jw.single {
		return WriteJSON(jw.w, rec, jw.cfg)
	}
	jw.games = append(jw.games, RecordToJSON(rec, jw.cfg))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
