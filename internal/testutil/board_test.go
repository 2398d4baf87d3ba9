package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestBoardFromRows(t *testing.T) {
	b := BoardFromRows(t,
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	)

	AssertEqual(t, *b, *chess.NewInitialBoard(), "diagram of the initial position")
}

func TestMarkMoved(t *testing.T) {
	b := BoardFromRows(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R...K...",
	)
	MarkMoved(b, chess.Sq(0, 0))

	AssertTrue(t, b.HasMoved(chess.Sq(0, 0)), "rook flagged")
	AssertFalse(t, b.HasMoved(chess.Sq(0, 4)), "king untouched")
}
