package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves returns the pawn's forward steps, diagonal captures and en
// passant capture.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := chess.ColourOffset(colour)

	// Forward moves
	forward := from.Offset(dir, 0)
	if board.IsEmpty(forward) {
		moves = append(moves, forward)

		// Double step from the starting row
		if from.Row == chess.PawnRow(colour) {
			double := from.Offset(2*dir, 0)
			if board.IsEmpty(double) {
				moves = append(moves, double)
			}
		}
	}

	// Captures
	for _, dc := range []int{-1, 1} {
		capture := from.Offset(dir, dc)
		if board.IsEnemy(capture, colour) {
			moves = append(moves, capture)
		}
	}

	// En passant, only past an enemy pawn that has just double-stepped
	if target, ok := board.EnPassantTarget(); ok {
		if target.Row == from.Row+dir && abs(target.Col-from.Col) == 1 &&
			board.Get(chess.Sq(from.Row, target.Col)) == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
			moves = append(moves, target)
		}
	}

	return moves
}
