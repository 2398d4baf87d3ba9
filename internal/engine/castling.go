package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castlingMoves returns the king's castling destinations. A side is
// available when the king has never moved and is not in check, the corner
// on that side holds a friendly rook that has never moved, and every square
// strictly between them is empty. The destination is two columns toward
// the rook.
func castlingMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	if board.HasMoved(from) || IsInCheck(board, colour) {
		return nil
	}

	rook := chess.MakeColouredPiece(colour, chess.Rook)
	var moves []chess.Square
	for _, rookCol := range []int{0, chess.BoardSize - 1} {
		rookSquare := chess.Sq(from.Row, rookCol)
		if board.Get(rookSquare) != rook || board.HasMoved(rookSquare) {
			continue
		}
		// The king needs room to land short of the rook.
		if abs(rookCol-from.Col) < 3 {
			continue
		}
		if isStraightClear(board, from, rookSquare) {
			moves = append(moves, from.Offset(0, 2*sign(rookCol-from.Col)))
		}
	}
	return moves
}

// isStraightClear checks that every square strictly between from and to
// along a row, column or diagonal is empty.
func isStraightClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	s := from.Offset(rowDir, colDir)
	for s != to {
		if !board.IsEmpty(s) {
			return false
		}
		s = s.Offset(rowDir, colDir)
	}
	return true
}
