// Package engine provides move generation, check detection and legality
// testing over a chess.Board.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// generator produces the pseudo-legal destinations for a piece of the given
// colour standing on from. Pseudo-legal moves ignore whether the mover's own
// king is left in check.
type generator func(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square

// stepGenerators holds one generator per piece kind. King castling is not
// part of the table: it needs the in-check test, which in turn uses the table.
var stepGenerators = map[chess.Piece]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingSteps,
}

// Offsets for the stepping pieces, as (row, col) deltas.
var (
	knightOffsets = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// PseudoLegalMoves returns the destinations the piece on from can reach
// according to its movement pattern and the board occupancy, including
// castling for an eligible king. An empty or off-board square yields nil.
func PseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if !chess.IsOccupant(piece) {
		return nil
	}
	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)

	moves := attackMoves(board, from, pieceType, colour)
	if pieceType == chess.King {
		moves = append(moves, castlingMoves(board, from, colour)...)
	}
	return moves
}

// attackMoves returns the pseudo-legal destinations without castling.
// Check detection uses this form so that testing a king's castling rights
// never recurses into another check test.
func attackMoves(board *chess.Board, from chess.Square, pieceType chess.Piece, colour chess.Colour) []chess.Square {
	gen, ok := stepGenerators[pieceType]
	if !ok {
		return nil
	}
	return gen(board, from, colour)
}

// IsPseudoLegalMove reports whether to is among the pseudo-legal
// destinations of the piece on from.
func IsPseudoLegalMove(board *chess.Board, from, to chess.Square) bool {
	for _, s := range PseudoLegalMoves(board, from) {
		if s == to {
			return true
		}
	}
	return false
}

// knightMoves returns the knight's L-shaped destinations.
func knightMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	return offsetMoves(board, from, colour, knightOffsets)
}

// kingSteps returns the king's one-square destinations.
func kingSteps(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	return offsetMoves(board, from, colour, kingOffsets)
}

// offsetMoves keeps each offset that lands on the board on an empty or
// enemy-occupied square.
func offsetMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !board.IsWithinBounds(to) {
			continue
		}
		if board.IsEmpty(to) || board.IsEnemy(to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}
