package engine_test

import (
	"testing"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// dragontoothPerft walks dragontoothmg's legal move tree using its
// apply/unapply closures.
func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Promotion-free positions, so an engine that always promotes to a queen
// agrees with generators that enumerate every promotion piece.
func TestPerftAgreesWithReferenceGenerators(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
	}{
		{"initial", engine.InitialFEN, 3},
		{"en passant pin", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
		{"en passant capture", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 2},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1},
		{"open middlegame", "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.depth > 2 {
				t.Skip("deep perft in short mode")
			}

			board, toMove, err := engine.NewBoardFromFEN(tt.fen)
			require.NoError(t, err)
			ours := engine.Perft(board, toMove, tt.depth)

			dt := dragontoothmg.ParseFen(tt.fen)
			require.Equal(t, dragontoothPerft(&dt, tt.depth), ours, "dragontoothmg")

			gb, err := goosemg.ParseFEN(tt.fen)
			require.NoError(t, err)
			require.Equal(t, uint64(goosemg.Perft(gb, tt.depth)), ours, "goosemg")
		})
	}
}

func TestPerftDivideAgreesWithDragontooth(t *testing.T) {
	board, toMove, err := engine.NewBoardFromFEN(engine.InitialFEN)
	require.NoError(t, err)

	divide := engine.PerftDivide(board, toMove, 3, 4)
	require.Len(t, divide, 20)

	dt := dragontoothmg.ParseFen(engine.InitialFEN)
	require.Equal(t, dragontoothPerft(&dt, 3), engine.SumNodes(divide))
}
