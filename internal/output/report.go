package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Report is a snapshot of a game ready to be written.
// Optional sections are nil or false when the configuration leaves them out.
type Report struct {
	Turn    chess.Colour
	Status  game.Status
	InCheck bool

	Winner    chess.Colour
	HasWinner bool

	Board   *chess.Board
	History []game.Ply

	ShowLegalMoves bool
	LegalMoves     []chess.Move

	Perft *PerftReport
}

// PerftReport is the outcome of a perft run.
type PerftReport struct {
	Depth  int
	Nodes  uint64
	Divide []engine.DivideResult // nil unless divided
}

// NewReport snapshots g, including the sections cfg.Output asks for.
func NewReport(g *game.Game, cfg *config.Config) *Report {
	r := &Report{
		Turn:    g.Turn(),
		Status:  g.Status(),
		InCheck: g.InCheck(),
	}
	r.Winner, r.HasWinner = g.Winner()

	if cfg.Output.ShowBoard {
		r.Board = g.Board()
	}
	if cfg.Output.ShowHistory {
		r.History = g.History()
	}
	if cfg.Output.ListLegalMoves {
		r.ShowLegalMoves = true
		r.LegalMoves = engine.AllLegalMoves(g.Board(), g.Turn())
	}
	return r
}
