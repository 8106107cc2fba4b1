// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the failure kinds surfaced by position parsing, move validation and
// game orchestration, and structured error types that preserve context while
// allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidNotation indicates malformed move or square text (SAN, LAN, "e4").
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrIllegalMove indicates a move that is not in the legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOutOfRange indicates a coordinate computation that walked off the board.
	// The move generator treats it as "no such square"; it never reaches callers.
	ErrOutOfRange = errors.New("square out of range")

	// ErrMismatchedContext indicates a piece or square used against a position
	// it does not belong to. It signals caller misuse, not bad chess data.
	ErrMismatchedContext = errors.New("mismatched context")

	// ErrGameOver indicates an action on a game that has already terminated.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps errors with game context, including the game id,
// ply position and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Game identifier (if known)
	PlyNum   int    // 1-based ply where the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "game error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to decode textual input (FEN, SAN, LAN, squares).
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The full input being parsed
	Field    string // The part of the input that failed (e.g. "castling")
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns the input, the failing field and what was wrong, then the
// underlying error: `"e9e4": LAN: expected a square, got e9: invalid notation`.
func (e *ParseError) Error() string {
	var b strings.Builder
	add := func(s string) {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(s)
	}

	if e.Input != "" {
		add(fmt.Sprintf("%q", e.Input))
	}
	if e.Field != "" {
		add(e.Field)
	}
	switch {
	case e.Expected != "" && e.Got != "":
		add(fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		add("expected " + e.Expected)
	case e.Got != "":
		add("unexpected " + e.Got)
	}
	if e.Err != nil {
		add(e.Err.Error())
	}

	if b.Len() == 0 {
		return "parse error"
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsRecoverable reports whether err is a rejected input that left the game
// or position unchanged: a parse failure, an illegal move or a move after
// the game ended. ErrMismatchedContext and unknown errors are not.
func IsRecoverable(err error) bool {
	if err == nil || errors.Is(err, ErrMismatchedContext) {
		return false
	}
	return errors.Is(err, ErrInvalidFEN) ||
		errors.Is(err, ErrInvalidNotation) ||
		errors.Is(err, ErrIllegalMove) ||
		errors.Is(err, ErrGameOver)
}
