package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Ray directions for the sliding pieces, as (row, col) deltas.
var (
	straightDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

func rookMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	return slidingMoves(board, from, colour, straightDirs)
}

func bishopMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	return slidingMoves(board, from, colour, diagonalDirs)
}

func queenMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	return slidingMoves(board, from, colour, queenDirs)
}

// slidingMoves walks each ray outward from from. Empty squares are
// destinations and the walk continues; the first occupied square ends the
// ray and is a destination only when it holds an enemy piece.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for board.IsWithinBounds(to) {
			if !board.IsEmpty(to) {
				if board.IsEnemy(to, colour) {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
