// Package game drives a two-player game on one live board: it enforces turn
// order, records the moves played and reports when the game has ended.
package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Ply is one half-move in the game record.
type Ply struct {
	Move  chess.Move
	Piece chess.Piece // Coloured piece that moved
}

// Game holds the live board, the side to move and the moves played so far.
// A Game is not safe for concurrent use; analyse copies obtained from Board.
type Game struct {
	board   *chess.Board
	turn    chess.Colour
	history []Ply

	start     *chess.Board
	startTurn chess.Colour

	strict bool
}

// Option configures a Game.
type Option func(*Game)

// WithStrictLegality makes PlayMove also reject moves that leave the mover's
// king in check and any move once the game is over. By default a move only
// needs to be pseudo-legal.
func WithStrictLegality(strict bool) Option {
	return func(g *Game) {
		g.strict = strict
	}
}

// New creates a game in the standard starting position with White to move.
func New(opts ...Option) *Game {
	return newGame(chess.NewInitialBoard(), chess.White, opts...)
}

// NewFromFEN creates a game from a FEN position.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(board, toMove, opts...), nil
}

func newGame(board *chess.Board, toMove chess.Colour, opts ...Option) *Game {
	g := &Game{
		board:     board,
		turn:      toMove,
		start:     board.Copy(),
		startTurn: toMove,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PlayTurn plays from-to for the side to move and reports whether it was
// accepted. A rejected move leaves the game unchanged.
func (g *Game) PlayTurn(from, to chess.Square) bool {
	return g.PlayMove(from, to) == nil
}

// PlayMove plays from-to for the side to move. The move is accepted when a
// piece of the side to move stands on from and to is one of its pseudo-legal
// destinations. On success the move is applied, recorded and the turn
// passes. Errors are *errors.MoveError values wrapping a sentinel.
func (g *Game) PlayMove(from, to chess.Square) error {
	if err := g.validate(from, to); err != nil {
		return &errors.MoveError{
			Err:   err,
			Ply:   len(g.history) + 1,
			From:  from,
			To:    to,
			Piece: g.board.Get(from),
		}
	}

	piece := g.board.Get(from)
	g.board.MovePiece(from, to)
	g.history = append(g.history, Ply{Move: chess.Move{From: from, To: to}, Piece: piece})
	g.turn = g.turn.Opposite()
	return nil
}

func (g *Game) validate(from, to chess.Square) error {
	if !chess.IsWithinBounds(from) || !chess.IsWithinBounds(to) {
		return errors.ErrOutOfBounds
	}
	piece := g.board.Get(from)
	if !chess.IsOccupant(piece) {
		return errors.ErrEmptySquare
	}
	if chess.ExtractColour(piece) != g.turn {
		return errors.ErrWrongTurn
	}
	if g.strict && g.IsGameOver() {
		return errors.ErrGameOver
	}
	if !engine.IsPseudoLegalMove(g.board, from, to) {
		return errors.ErrIllegalMove
	}
	if g.strict && !engine.IsLegalMove(g.board, from, to) {
		return errors.ErrLeavesKingInCheck
	}
	return nil
}

// Undo takes back the last ply by replaying the rest of the history from
// the starting position. It returns false when there is nothing to undo.
func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}

	board := g.start.Copy()
	turn := g.startTurn
	kept := g.history[:len(g.history)-1]
	for _, p := range kept {
		board.MovePiece(p.Move.From, p.Move.To)
		turn = turn.Opposite()
	}

	g.board = board
	g.turn = turn
	g.history = kept
	return true
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// History returns a copy of the moves played so far.
func (g *Game) History() []Ply {
	out := make([]Ply, len(g.history))
	copy(out, g.history)
	return out
}

// Board returns a copy of the live board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// PieceAt returns the coloured piece on s, Empty for an empty square and
// Off outside the board.
func (g *Game) PieceAt(s chess.Square) chess.Piece {
	return g.board.Get(s)
}

// Strict reports whether full legality is enforced.
func (g *Game) Strict() bool {
	return g.strict
}
