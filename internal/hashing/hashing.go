// Package hashing provides Zobrist keys for board positions and a table
// that caches perft subtotals by position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const zobristSeed = 0x5EED1E55

// Coloured pieces encode as (piece<<PieceShift)|colour, so every value
// fits below maxColouredPiece.
const maxColouredPiece = int(chess.NumPieceValues) << chess.PieceShift

var (
	pieceKeys   [maxColouredPiece][chess.BoardSize][chess.BoardSize]uint64
	movedKeys   [chess.BoardSize][chess.BoardSize]uint64
	epKeys      [chess.BoardSize][chess.BoardSize]uint64
	blackToMove uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: keys need spread, not secrecy
	for p := range pieceKeys {
		for row := range pieceKeys[p] {
			for col := range pieceKeys[p][row] {
				pieceKeys[p][row][col] = rng.Uint64()
			}
		}
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			movedKeys[row][col] = rng.Uint64()
			epKeys[row][col] = rng.Uint64()
		}
	}
	blackToMove = rng.Uint64()
}

// Key returns the Zobrist key of a position. It covers everything move
// generation depends on: the pieces, the side to move, the en passant
// target and the moved flags of kings and rooks.
func Key(board *chess.Board, toMove chess.Colour) uint64 {
	var h uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if !chess.IsOccupant(piece) {
				continue
			}
			h ^= pieceKeys[piece][row][col]

			switch chess.ExtractPiece(piece) {
			case chess.King, chess.Rook:
				if board.Moved[row][col] {
					h ^= movedKeys[row][col]
				}
			}
		}
	}

	if ep, ok := board.EnPassantTarget(); ok && chess.IsWithinBounds(ep) {
		h ^= epKeys[ep.Row][ep.Col]
	}
	if toMove == chess.Black {
		h ^= blackToMove
	}
	return h
}

// tableKey identifies a cached subtotal.
type tableKey struct {
	Key   uint64
	Depth int
}

// PerftTable caches perft node counts by position key and depth.
// It is not safe for concurrent use; see ThreadSafePerftTable.
type PerftTable struct {
	entries map[tableKey]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewPerftTable creates an empty table.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Probe returns the cached node count for key at depth.
func (t *PerftTable) Probe(key uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[tableKey{Key: key, Depth: depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records the node count for key at depth. Once the table is full,
// new entries are dropped.
func (t *PerftTable) Store(key uint64, depth int, nodes uint64) {
	k := tableKey{Key: key, Depth: depth}
	if _, exists := t.entries[k]; !exists && t.IsFull() {
		return
	}
	t.entries[k] = nodes
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful probes.
func (t *PerftTable) Hits() int {
	return t.hits
}

// Misses returns the number of failed probes.
func (t *PerftTable) Misses() int {
	return t.misses
}

// Reset clears the table and its counters.
func (t *PerftTable) Reset() {
	t.entries = make(map[tableKey]uint64)
	t.hits = 0
	t.misses = 0
}
