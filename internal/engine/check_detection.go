package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked, that is,
// if any enemy piece's pseudo-legal moves include the king's square.
// A board without a king of that colour is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return isSquareAttacked(board, king, colour.Opposite())
}

// isSquareAttacked returns true if any piece of byColour can move to target.
func isSquareAttacked(board *chess.Board, target chess.Square, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			piece := board.Get(from)
			if !chess.IsOccupant(piece) || chess.ExtractColour(piece) != byColour {
				continue
			}
			for _, to := range attackMoves(board, from, chess.ExtractPiece(piece), byColour) {
				if to == target {
					return true
				}
			}
		}
	}
	return false
}

// CheckStatusOf reports whether colour is not in check, in check, or checkmated.
func CheckStatusOf(board *chess.Board, colour chess.Colour) chess.CheckStatus {
	if !IsInCheck(board, colour) {
		return chess.NoCheck
	}
	if HasLegalMoves(board, colour) {
		return chess.Check
	}
	return chess.Checkmate
}
