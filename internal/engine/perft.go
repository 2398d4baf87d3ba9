package engine

import (
	"context"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Table caches perft subtotals by position key and depth. Tables shared by
// PerftDivide workers must be safe for concurrent use.
type Table interface {
	Probe(key uint64, depth int) (uint64, bool)
	Store(key uint64, depth int, nodes uint64)
}

// DivideResult is the perft node count below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf positions reachable in exactly depth legal moves
// with toMove moving first. Each move is played on a fresh copy.
func Perft(board *chess.Board, toMove chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board, toMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		next := board.Copy()
		next.MovePiece(m.From, m.To)
		nodes += Perft(next, toMove.Opposite(), depth-1)
	}
	return nodes
}

// CachedPerft is Perft with subtotals of two plies or more looked up in and
// stored to table. A nil table disables caching.
func CachedPerft(board *chess.Board, toMove chess.Colour, depth int, table Table) uint64 {
	if table == nil || depth < 2 {
		return Perft(board, toMove, depth)
	}
	return cachedPerft(context.Background(), board, toMove, depth, table)
}

// PerftContext is CachedPerft that gives up with ctx's error once ctx is
// done. table may be nil.
func PerftContext(ctx context.Context, board *chess.Board, toMove chess.Colour, depth int, table Table) (uint64, error) {
	nodes := cachedPerft(ctx, board, toMove, depth, table)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return nodes, nil
}

// cachedPerft returns a partial count once ctx is done and never stores one.
func cachedPerft(ctx context.Context, board *chess.Board, toMove chess.Colour, depth int, table Table) uint64 {
	if depth < 2 {
		return Perft(board, toMove, depth)
	}
	if ctx.Err() != nil {
		return 0
	}

	var key uint64
	if table != nil {
		key = hashing.Key(board, toMove)
		if nodes, ok := table.Probe(key, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range AllLegalMoves(board, toMove) {
		next := board.Copy()
		next.MovePiece(m.From, m.To)
		nodes += cachedPerft(ctx, next, toMove.Opposite(), depth-1, table)
	}
	if table != nil && ctx.Err() == nil {
		table.Store(key, depth, nodes)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move, computed
// across workers goroutines. Results are ordered as AllLegalMoves orders the
// root moves. The caller's board is only read.
func PerftDivide(board *chess.Board, toMove chess.Colour, depth, workers int) []DivideResult {
	return CachedPerftDivide(board, toMove, depth, workers, nil)
}

// CachedPerftDivide is PerftDivide with every worker sharing table.
func CachedPerftDivide(board *chess.Board, toMove chess.Colour, depth, workers int, table Table) []DivideResult {
	results, _ := PerftDivideContext(context.Background(), board, toMove, depth, workers, table)
	return results
}

// PerftDivideContext is CachedPerftDivide that stops the workers when ctx
// is done and then returns ctx's error instead of partial counts.
func PerftDivideContext(ctx context.Context, board *chess.Board, toMove chess.Colour, depth, workers int, table Table) ([]DivideResult, error) {
	if depth <= 0 {
		return nil, ctx.Err()
	}
	moves := AllLegalMoves(board, toMove)

	pool := worker.NewPool(workers, len(moves), func(jobCtx context.Context, item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: cachedPerft(jobCtx, item.Board, item.ToMove, item.Depth, table),
		}
	})
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()

	for i, m := range moves {
		next := board.Copy()
		next.MovePiece(m.From, m.To)
		pool.Submit(worker.WorkItem{
			Board:  next,
			ToMove: toMove.Opposite(),
			Move:   m,
			Depth:  depth - 1,
			Index:  i,
		})
	}
	go pool.Close()

	results := make([]DivideResult, len(moves))
	for r := range pool.Results() {
		results[r.Index] = DivideResult{Move: r.Move, Nodes: r.Nodes}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// SumNodes totals the node counts of a divide.
func SumNodes(results []DivideResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}
