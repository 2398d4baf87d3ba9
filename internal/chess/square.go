package chess

import "fmt"

// Square is a zero-based (row, column) board coordinate.
// Row 0 is White's back row, row 7 is Black's.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Offset returns the square shifted by the given row and column deltas.
// The result may lie outside the board.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// String returns the square as "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// IsWithinBounds returns true if both coordinates are in [0,7].
func IsWithinBounds(s Square) bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move as "(r,c)-(r,c)".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}
