package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the pseudo-legal destinations of the piece on from that
// do not leave its own king in check.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if !chess.IsOccupant(piece) {
		return nil
	}
	colour := chess.ExtractColour(piece)

	var legal []chess.Square
	for _, to := range PseudoLegalMoves(board, from) {
		if tryMove(board, from, to, colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move for the given colour, scanning the
// board from row 0 upward.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	forEachPiece(board, colour, func(from chess.Square) bool {
		for _, to := range LegalMoves(board, from) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	forEachPiece(board, colour, func(from chess.Square) bool {
		for _, to := range PseudoLegalMoves(board, from) {
			if tryMove(board, from, to, colour) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// IsLegalMove reports whether moving the piece on from to to is pseudo-legal
// and keeps the mover's king out of check.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if !chess.IsOccupant(piece) || !IsPseudoLegalMove(board, from, to) {
		return false
	}
	return tryMove(board, from, to, chess.ExtractColour(piece))
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
// The live board is never modified.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := board.Copy()
	testBoard.MovePiece(from, to)
	return !IsInCheck(testBoard, colour)
}

// forEachPiece calls fn for every square holding a piece of colour until fn
// returns false.
func forEachPiece(board *chess.Board, colour chess.Colour, fn func(from chess.Square) bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			if !board.IsFriend(from, colour) {
				continue
			}
			if !fn(from) {
				return
			}
		}
	}
}
