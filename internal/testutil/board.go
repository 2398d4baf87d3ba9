package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// BoardFromRows builds a board from an eight-line diagram, top line first
// (row 7 down to row 0). Uppercase letters are White, lowercase Black and
// '.' an empty square. Every piece starts out unmoved.
func BoardFromRows(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("BoardFromRows: got %d rows; want %d", len(rows), chess.BoardSize)
	}

	b := chess.NewBoard()
	for i, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("BoardFromRows: row %d is %q; want %d squares", i, line, chess.BoardSize)
		}
		row := chess.BoardSize - 1 - i
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			piece, ok := pieceFromSymbol(c)
			if !ok {
				t.Fatalf("BoardFromRows: unknown piece %q in row %d", c, i)
			}
			b.Set(chess.Sq(row, col), piece)
		}
	}
	return b
}

// MarkMoved flags the pieces on the given squares as having moved.
func MarkMoved(b *chess.Board, squares ...chess.Square) {
	for _, s := range squares {
		b.SetMoved(s, true)
	}
}

func pieceFromSymbol(c byte) (chess.Piece, bool) {
	for piece := chess.Pawn; piece <= chess.King; piece++ {
		switch c {
		case chess.Symbol(chess.W(piece)):
			return chess.W(piece), true
		case chess.Symbol(chess.B(piece)):
			return chess.B(piece), true
		}
	}
	return chess.Empty, false
}
