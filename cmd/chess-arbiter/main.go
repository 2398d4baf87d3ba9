// chess-arbiter plays a sequence of moves under the rules of chess, reports
// the resulting position and can count move paths from it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-arbiter version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(execute())
}

// execute runs the harness and returns the exit status: 2 for an invalid
// configuration, 1 for a failed run. Deferred cleanup runs before main exits.
func execute() int {
	cfg := config.NewConfig()
	applyFlags(cfg)

	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		return 1
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Ctrl-C abandons a long perft run.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile points cfg.LogFile at the -l file, if one was given. The
// returned function closes it.
func setupLogFile(cfg *config.Config) (func(), error) {
	if *logFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, err
	}
	cfg.LogFile = file
	return func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file %s: %v\n", *logFile, err)
		}
	}, nil
}

// logf writes a diagnostic line when the configured verbosity reaches level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity < level || cfg.LogFile == nil {
		return
	}
	fmt.Fprintf(cfg.LogFile, format+"\n", args...)
}

// run sets up the game, plays the configured moves, runs perft if requested
// and writes the report.
func run(ctx context.Context, cfg *config.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	moves, err := parseMoves(cfg.Game.Moves)
	if err != nil {
		return errors.Wrap(err, "parsing -moves")
	}

	if err := playMoves(cfg, g, moves); err != nil {
		return err
	}

	report := output.NewReport(g, cfg)
	if cfg.Perft.Enabled() {
		if report.Perft, err = runPerft(ctx, cfg, g); err != nil {
			return errors.Wrap(err, "perft")
		}
	}
	return output.NewReportWriter(cfg.OutputFile, cfg).WriteReport(report)
}

func newGame(cfg *config.Config) (*game.Game, error) {
	opts := []game.Option{game.WithStrictLegality(cfg.Game.StrictLegality)}
	if cfg.Game.StartFEN == "" {
		return game.New(opts...), nil
	}
	g, err := game.NewFromFEN(cfg.Game.StartFEN, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "parsing -fen")
	}
	return g, nil
}

// playMoves plays every move in order and stops at the first rejection.
func playMoves(cfg *config.Config, g *game.Game, moves []chess.Move) error {
	for _, m := range moves {
		mover := g.Turn()
		if err := g.PlayMove(m.From, m.To); err != nil {
			logf(cfg, 1, "Rejected %s for %s", output.FormatMove(m), mover)
			return err
		}
		logf(cfg, 2, "%s played %s", mover, output.FormatMove(m))
		if g.InCheck() {
			logf(cfg, 2, "%s is in check", g.Turn())
		}
	}
	logf(cfg, 1, "%d move(s) played", len(moves))
	return nil
}

// runPerft counts move paths from the current position.
func runPerft(ctx context.Context, cfg *config.Config, g *game.Game) (*output.PerftReport, error) {
	board := g.Board()
	depth := cfg.Perft.Depth
	start := time.Now()

	// table stays a nil interface when caching is off.
	var table engine.Table
	var shared *hashing.ThreadSafePerftTable
	if cfg.Perft.Cached() {
		shared = hashing.NewThreadSafePerftTable(cfg.Perft.HashEntries)
		table = shared
	}

	report := &output.PerftReport{Depth: depth}
	var err error
	if cfg.Perft.Divide {
		report.Divide, err = engine.PerftDivideContext(ctx, board, g.Turn(), depth, cfg.Perft.Workers, table)
		report.Nodes = engine.SumNodes(report.Divide)
	} else {
		report.Nodes, err = engine.PerftContext(ctx, board, g.Turn(), depth, table)
	}
	if err != nil {
		logf(cfg, 1, "perft(%d) abandoned after %v", depth, time.Since(start))
		return nil, err
	}

	logf(cfg, 1, "perft(%d) took %v with %d worker(s)", depth, time.Since(start), cfg.Perft.Workers)
	if shared != nil {
		logf(cfg, 2, "perft table: %d entries, %d hits", shared.Len(), shared.Hits())
	}
	return report, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-arbiter [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves under the rules of chess and reports the position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nSquares are zero-based row,col pairs; row 0 is White's back rank\n")
	fmt.Fprintf(os.Stderr, "and col 0 is the a-file. A move is from:to, e.g. 1,4:3,4.\n")
}
