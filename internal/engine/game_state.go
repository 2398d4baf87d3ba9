package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if colour is in check and every pseudo-legal move,
// simulated on a copy of the board, still leaves it in check.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no move that
// keeps its king out of check.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
