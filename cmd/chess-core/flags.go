// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/config"
)

var (
	// Input
	configFile = flag.String("config", "", "YAML configuration file")
	startFEN   = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	moveList   = flag.String("moves", "", "Moves to play in LAN or SAN, separated by spaces")
	tagList    = flag.String("tags", "", "PGN tags as Name=Value pairs, comma-separated")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	outputFormat = flag.String("W", "", "Move notation: san, lan")
	lineLength   = flag.Int("w", 0, "Maximum line length (0 = config value)")
	sevenTagOnly = flag.Bool("7", false, "Output only the seven tag roster")
	noTags       = flag.Bool("notags", false, "Don't output any tags")
	addFENs      = flag.Bool("fencomments", false, "Add a FEN comment after each move")
	noMoveNums   = flag.Bool("nomovenumbers", false, "Don't output move numbers")

	// Commands
	listMoves  = flag.Bool("legal", false, "List the legal moves of the final position")
	perftDepth = flag.Int("perft", 0, "Count nodes to depth N from the final position, per root move")

	// Draw rules
	noFifty      = flag.Bool("nofifty", false, "Don't end games by the fifty-move rule")
	noMaterial   = flag.Bool("nomaterial", false, "Don't end games on insufficient material")
	repetitions  = flag.Int("repetitions", 0, "Occurrences that end the game by repetition (0 = config value)")
	noRepetition = flag.Bool("norepetition", false, "Don't end games by repetition")

	// Perft tuning
	workers = flag.Int("workers", -1, "Perft worker goroutines (0 = one per CPU, -1 = config value)")

	// Logging
	logLevel  = flag.String("loglevel", "", "Log level: debug, info, warn, error")
	logFormat = flag.String("logformat", "", "Log format: console, json")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyRuleFlags(cfg)

	if *workers >= 0 {
		cfg.Perft.Workers = *workers
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
}

// applyOutputFlags applies output-related flags.
func applyOutputFlags(cfg *config.Config) {
	if *outputFormat != "" {
		cfg.Output.Notation = strings.ToLower(*outputFormat)
	}
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = *lineLength
	}
	switch {
	case *noTags:
		cfg.Output.TagFormat = "none"
	case *sevenTagOnly:
		cfg.Output.TagFormat = "seven"
	}
	if *addFENs {
		cfg.Output.AddFENs = true
	}
	if *noMoveNums {
		cfg.Output.KeepMoveNumbers = false
	}
}

// applyRuleFlags applies draw-rule flags.
func applyRuleFlags(cfg *config.Config) {
	if *noFifty {
		cfg.Rules.FiftyMoveRule = false
	}
	if *noMaterial {
		cfg.Rules.InsufficientMaterial = false
	}
	if *repetitions > 0 {
		cfg.Rules.RepetitionLimit = *repetitions
	}
	if *noRepetition {
		cfg.Rules.FivefoldRepetition = false
	}
}

// parseTags parses "Name=Value" pairs separated by commas.
func parseTags(s string) (map[string]string, error) {
	tags := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid tag %q: want Name=Value", pair)
		}
		tags[name] = strings.TrimSpace(value)
	}
	return tags, nil
}
