// Package errors provides sentinel errors and error types for the rules engine.
// It defines the conditions under which a move or position is rejected and
// structured error types that preserve context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a destination the piece cannot reach.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptySquare indicates a move requested from an empty square.
	ErrEmptySquare = errors.New("no piece on source square")

	// ErrWrongTurn indicates a move of the side not on move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrOutOfBounds indicates a square outside the board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrLeavesKingInCheck indicates a move that exposes the mover's king.
	ErrLeavesKingInCheck = errors.New("move leaves king in check")

	// ErrGameOver indicates a move attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrMoveSyntax indicates malformed coordinate move text.
	ErrMoveSyntax = errors.New("malformed move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply at which the move was
// attempted, its squares and the piece moved. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error        // The underlying error
	Ply   int          // 1-based ply number (0 if not applicable)
	From  chess.Square // Source square
	To    chess.Square // Destination square
	Piece chess.Piece  // Coloured piece on the source square (Empty if none)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	move := fmt.Sprintf("move %v-%v", e.From, e.To)
	if chess.IsOccupant(e.Piece) {
		move = fmt.Sprintf("%s %s %v-%v",
			chess.ExtractColour(e.Piece), chess.ExtractPiece(e.Piece), e.From, e.To)
	}
	parts = append(parts, move)

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with position context.
// It's used for FEN and coordinate move text.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
