// Package testutil provides shared test utilities for the chess engine packages.
// It depends only on the chess model so any package's tests can use it.
package testutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// IgnoreAnnotations makes cmp ignore the Check and Mate fields of moves,
// which callers leave unset and the generator fills in.
var IgnoreAnnotations = cmpopts.IgnoreFields(chess.Move{}, "Check", "Mate")

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(t, formatMessage(msgAndArgs...), "mismatch (-want +got):\n"+diff)
	}
}

// AssertMovesEqual compares two move lists ignoring Check and Mate.
func AssertMovesEqual(t testing.TB, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, IgnoreAnnotations, cmpopts.EquateEmpty()); diff != "" {
		report(t, formatMessage(msgAndArgs...), "moves mismatch (-want +got):\n"+diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("unexpected error: %v", err))
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("error = %v, want %v", err, target))
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("%q does not contain %q", got, substr))
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		report(t, formatMessage(msgAndArgs...), "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		report(t, formatMessage(msgAndArgs...), "expected false but got true")
	}
}

func report(t testing.TB, msg, detail string) {
	t.Helper()
	if msg != "" {
		t.Errorf("%s: %s", msg, detail)
	} else {
		t.Error(detail)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}

// Coordinates returns the from-to pairs ("e2e4", "e7e8q") of moves, sorted.
// It mirrors LAN without depending on the engine.
func Coordinates(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		s := m.From.String() + m.To.String()
		if m.IsPromotion() {
			s += strings.ToLower(string(m.Promotion.Letter()))
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
