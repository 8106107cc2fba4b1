package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-core-go/internal/config"
	chesserrors "github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/output"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    map[string]string
		wantErr bool
	}{
		{"empty", "", map[string]string{}, false},
		{"single", "White=Tal", map[string]string{"White": "Tal"}, false},
		{"spaces", " White = Tal , Black=Botvinnik ", map[string]string{"White": "Tal", "Black": "Botvinnik"}, false},
		{"empty value", "Round=", map[string]string{"Round": ""}, false},
		{"trailing comma", "Event=Match,", map[string]string{"Event": "Match"}, false},
		{"missing equals", "White", nil, true},
		{"missing name", "=Tal", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTags(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTags(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseTags(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

// setFlag sets a flag variable for the duration of a test.
func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func TestApplyFlags(t *testing.T) {
	setFlag(t, outputFormat, "LAN")
	setFlag(t, lineLength, 60)
	setFlag(t, sevenTagOnly, true)
	setFlag(t, noMoveNums, true)
	setFlag(t, noFifty, true)
	setFlag(t, repetitions, 3)
	setFlag(t, workers, 0)
	setFlag(t, logLevel, "debug")

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Output.Notation != "lan" {
		t.Errorf("Notation = %q, want lan", cfg.Output.Notation)
	}
	if cfg.Output.MaxLineLength != 60 {
		t.Errorf("MaxLineLength = %d, want 60", cfg.Output.MaxLineLength)
	}
	if cfg.Output.TagFormat != "seven" {
		t.Errorf("TagFormat = %q, want seven", cfg.Output.TagFormat)
	}
	if cfg.Output.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be false")
	}
	if cfg.Rules.FiftyMoveRule {
		t.Error("FiftyMoveRule should be false")
	}
	if !cfg.Rules.InsufficientMaterial || !cfg.Rules.FivefoldRepetition {
		t.Error("untouched rules should keep their defaults")
	}
	if cfg.Rules.RepetitionLimit != 3 {
		t.Errorf("RepetitionLimit = %d, want 3", cfg.Rules.RepetitionLimit)
	}
	if cfg.Perft.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Perft.Workers)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestApplyFlags_NoTagsWins(t *testing.T) {
	setFlag(t, noTags, true)
	setFlag(t, sevenTagOnly, true)

	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.Output.TagFormat != "none" {
		t.Errorf("TagFormat = %q, want none", cfg.Output.TagFormat)
	}
}

func runRequest(t *testing.T, cfg *config.Config, req request) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(context.Background(), cfg, zap.NewNop(), &buf, req)
	return buf.String(), err
}

func TestRun_Export(t *testing.T) {
	cfg := config.NewConfigBuilder().WithNotation("lan").WithMoveNumbers(false).WithTagFormat("none").Build()
	got, err := runRequest(t, cfg, request{moves: []string{"f3", "e5", "g4", "Qh4#"}})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if want := "f2f3 e7e5 g2g4 d8h4 0-1\n\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_ExportJSON(t *testing.T) {
	req := request{
		moves:  []string{"e2e4", "e7e5"},
		tags:   map[string]string{"White": "Tal"},
		asJSON: true,
	}
	got, err := runRequest(t, config.NewConfig(), req)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var out output.JSONOutput
	if err := json.Unmarshal([]byte(got), &out); err != nil {
		t.Fatalf("json.Unmarshal failed: %v\n%s", err, got)
	}
	if len(out.Games) != 1 {
		t.Fatalf("games = %d, want 1", len(out.Games))
	}
	g := out.Games[0]
	if g.Tags["White"] != "Tal" || g.Result != "*" || g.PlyCount != 2 {
		t.Errorf("game = %+v, want White Tal, result *, 2 plies", g)
	}
}

func TestRun_Legal(t *testing.T) {
	got, err := runRequest(t, config.NewConfig(), request{
		fen: "4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		cmd: commandLegal,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"e1g1 O-O\n", "h1h8 Rh8+\n", "e1d1 Kd1\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	got, err = runRequest(t, config.NewConfig(), request{moves: strings.Fields("f3 e5 g4 Qh4"), cmd: commandLegal})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if want := "game over: 0-1 (Checkmate)\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_Perft(t *testing.T) {
	cfg := config.NewConfigBuilder().WithPerftWorkers(2).Build()
	got, err := runRequest(t, cfg, request{cmd: commandPerft, depth: 2})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 22 {
		t.Fatalf("lines = %d, want 20 moves, a blank line and the total:\n%s", len(lines), got)
	}
	if lines[len(lines)-1] != "Nodes searched: 400" {
		t.Errorf("total line = %q, want %q", lines[len(lines)-1], "Nodes searched: 400")
	}
	if !strings.Contains(got, "e2e4: 20\n") {
		t.Errorf("output missing e2e4: 20:\n%s", got)
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(context.Canceled); got != 1 {
		t.Errorf("exitCode(context.Canceled) = %d, want 1", got)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     request
		wantErr error
	}{
		{"invalid fen", request{fen: "not a fen"}, chesserrors.ErrInvalidFEN},
		{"illegal move", request{moves: []string{"e2e5"}}, chesserrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRequest(t, config.NewConfig(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
			if code := exitCode(err); code != 2 {
				t.Errorf("exitCode() = %d, want 2", code)
			}
		})
	}
}
