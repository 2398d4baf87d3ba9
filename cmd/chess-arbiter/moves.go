package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// parseMoves parses a whitespace separated list of "row,col:row,col" moves.
func parseMoves(text string) ([]chess.Move, error) {
	var moves []chess.Move
	for _, field := range strings.Fields(text) {
		m, err := parseMove(field)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// parseMove parses one "row,col:row,col" move, e.g. "1,4:3,4".
func parseMove(text string) (chess.Move, error) {
	from, to, ok := strings.Cut(text, ":")
	if !ok {
		return chess.Move{}, moveSyntaxError(text, len(text)+1, "':'", "end of move")
	}

	fromSq, err := parseSquare(text, from, 0)
	if err != nil {
		return chess.Move{}, err
	}
	toSq, err := parseSquare(text, to, len(from)+1)
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{From: fromSq, To: toSq}, nil
}

// parseSquare parses "row,col" found at offset within input.
func parseSquare(input, text string, offset int) (chess.Square, error) {
	rowText, colText, ok := strings.Cut(text, ",")
	if !ok {
		return chess.Square{}, moveSyntaxError(input, offset+len(text)+1, "','", fmt.Sprintf("%q", text))
	}

	row, err := parseCoordinate(input, rowText, offset)
	if err != nil {
		return chess.Square{}, err
	}
	col, err := parseCoordinate(input, colText, offset+len(rowText)+1)
	if err != nil {
		return chess.Square{}, err
	}
	return chess.Sq(row, col), nil
}

func parseCoordinate(input, text string, offset int) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 || n >= chess.BoardSize {
		return 0, moveSyntaxError(input, offset+1, "0..7", fmt.Sprintf("%q", text))
	}
	return n, nil
}

func moveSyntaxError(input string, column int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrMoveSyntax,
		Input:    input,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}
