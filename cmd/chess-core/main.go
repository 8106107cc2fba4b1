// chess-core plays moves from a position and prints the game as PGN or
// JSON, lists legal moves, or runs perft.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/game"
	"github.com/lgbarn/chess-core-go/internal/logging"
	"github.com/lgbarn/chess-core-go/internal/output"
	"github.com/lgbarn/chess-core-go/internal/perft"
)

const programVersion = "0.1.0"

// command selects what run does with the replayed game.
type command int

const (
	commandExport command = iota
	commandLegal
	commandPerft
)

// request is everything run needs besides the configuration.
type request struct {
	fen    string
	moves  []string
	tags   map[string]string
	cmd    command
	depth  int
	asJSON bool
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-core version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := loadConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

	req, err := buildRequest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := setupOutputFile()
	defer out.Close() //nolint:errcheck,gosec // G104: cleanup on exit

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, out, req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for rejected input (bad FEN or move text) and 1 otherwise.
func exitCode(err error) int {
	if chesserrors.IsRecoverable(err) {
		return 2
	}
	return 1
}

// loadConfig reads the -config file or returns the defaults.
func loadConfig() *config.Config {
	if *configFile == "" {
		return config.NewConfig()
	}
	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// buildRequest collects the input and command flags.
func buildRequest() (request, error) {
	tags, err := parseTags(*tagList)
	if err != nil {
		return request{}, err
	}

	req := request{
		fen:    *startFEN,
		moves:  strings.Fields(*moveList),
		tags:   tags,
		asJSON: *jsonOutput,
	}
	switch {
	case *perftDepth > 0:
		req.cmd, req.depth = commandPerft, *perftDepth
	case *listMoves:
		req.cmd = commandLegal
	}
	return req, nil
}

// setupOutputFile opens the -o file, or wraps stdout.
func setupOutputFile() io.WriteCloser {
	if *outputFile == "" {
		return nopCloser{os.Stdout}
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	return file
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// run replays the requested game and performs the command on it.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, w io.Writer, req request) error {
	opts := []game.Option{
		game.WithConfig(cfg),
		game.WithLogger(logger),
		game.WithMoveText(req.moves...),
		game.WithTags(req.tags),
	}
	if req.fen != "" {
		opts = append(opts, game.WithFEN(req.fen))
	}

	g, err := game.New(opts...)
	if err != nil {
		return err
	}

	switch req.cmd {
	case commandPerft:
		return runPerft(ctx, cfg, logger, w, g.Position(), req.depth)
	case commandLegal:
		return writeLegalMoves(w, g)
	}

	gw := output.NewGameWriter(w, cfg.Output, req.asJSON)
	if err := gw.WriteGame(g.Record()); err != nil {
		return err
	}
	return gw.Close()
}

// writeLegalMoves prints one legal move per line as "LAN SAN".
func writeLegalMoves(w io.Writer, g *game.Game) error {
	pos := g.Position()
	for _, m := range g.LegalMoves() {
		if _, err := fmt.Fprintf(w, "%s %s\n", engine.LAN(m), engine.SAN(pos, m)); err != nil {
			return err
		}
	}
	if g.IsOver() {
		_, err := fmt.Fprintf(w, "game over: %s (%s)\n", g.Outcome(), g.Termination())
		return err
	}
	return nil
}

// runPerft prints the node count under each root move, then the total.
func runPerft(ctx context.Context, cfg *config.Config, logger *zap.Logger, w io.Writer, pos *chess.Position, depth int) error {
	res, err := perft.NewRunner(cfg.Perft, logger).Divide(ctx, pos, depth)
	if err != nil {
		return err
	}
	for _, mc := range res.Moves {
		if _, err := fmt.Fprintf(w, "%s: %d\n", mc.LAN, mc.Nodes); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "\nNodes searched: %d\n", res.Total)
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-core [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves from a position and prints the game, its legal moves or perft counts.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-core -moves \"e4 e5 Nf3\" -tags \"White=Kasparov,Black=Deep Blue\"\n")
	fmt.Fprintf(os.Stderr, "  chess-core -moves \"f3 e5 g4\" -legal\n")
	fmt.Fprintf(os.Stderr, "  chess-core -fen \"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1\" -perft 4\n")
}
