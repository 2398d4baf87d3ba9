// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// defaultMoves opens with the king's pawn two squares.
const defaultMoves = "1,4:3,4"

var (
	// Game setup
	startFEN    = flag.String("fen", "", "Starting position in FEN (default: standard setup)")
	moveList    = flag.String("moves", defaultMoves, "Moves to play, e.g. \"1,4:3,4 6,4:4,4\"")
	strictMoves = flag.Bool("strict", false, "Reject moves that leave the mover in check")

	// Perft
	perftDepth  = flag.Int("perft", 0, "Count move paths to this depth after the moves are played")
	perftDivide = flag.Bool("divide", false, "Show the perft count below each root move")
	workers     = flag.Int("workers", 0, "Number of perft worker goroutines (0 = auto-detect based on CPU cores)")
	hashEntries = flag.Int("hash", 0, "Perft transposition table entries (0 = no table)")

	// Output options
	noBoard     = flag.Bool("noboard", false, "Don't print the board")
	listLegal   = flag.Bool("legal", false, "List the legal moves of the side to move")
	showHistory = flag.Bool("history", false, "Print the moves played")
	jsonOutput  = flag.Bool("J", false, "Write the report as JSON")
	lineLength  = flag.Int("w", 80, "Maximum line length for the legal move list")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summary, 2=every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyGameFlags configures the game to play.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.StartFEN = *startFEN
	cfg.Game.Moves = *moveList
	cfg.Game.StrictLegality = *strictMoves
}

// applyPerftFlags configures the perft run.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *perftDivide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.HashEntries = *hashEntries
}

// applyOutputFlags configures what gets printed.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ListLegalMoves = *listLegal
	cfg.Output.ShowHistory = *showHistory
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.MaxLineLength = *lineLength
}
