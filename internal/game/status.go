package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Status is the state of the game from the point of view of the side to move.
type Status int

const (
	InProgress Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// IsOver reports whether the status ends the game.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// Status reports whether the side to move is checkmated, stalemated or
// still playing.
func (g *Game) Status() Status {
	if engine.HasLegalMoves(g.board, g.turn) {
		return InProgress
	}
	if engine.IsInCheck(g.board, g.turn) {
		return Checkmate
	}
	return Stalemate
}

// IsGameOver returns true if the side to move is checkmated or stalemated.
func (g *Game) IsGameOver() bool {
	return g.Status().IsOver()
}

// InCheck returns true if the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(g.board, g.turn)
}

// Winner returns the side that delivered mate. ok is false unless the game
// ended in checkmate.
func (g *Game) Winner() (winner chess.Colour, ok bool) {
	if g.Status() != Checkmate {
		return chess.White, false
	}
	return g.turn.Opposite(), true
}
