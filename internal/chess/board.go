package chess

import "strings"

// Board represents a chess board with all state needed by the rules.
type Board struct {
	// The board squares, indexed [row][col].
	Squares [BoardSize][BoardSize]Piece

	// Moved records whether the piece currently on a square has ever moved.
	// The flag travels with the piece; only kings and rooks consult it.
	Moved [BoardSize][BoardSize]bool

	// Is EnPassant capture possible? If so then EPSquare holds the square
	// the last double-stepping pawn passed over.
	EnPassant bool
	EPSquare  Square
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	b.clear()
	return b
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

func (b *Board) clear() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Squares[row][col] = Empty
			b.Moved[row][col] = false
		}
	}
	b.EnPassant = false
	b.EPSquare = Square{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.clear()

	backRow := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[WhiteBackRow][col] = W(backRow[col])
		b.Squares[WhitePawnRow][col] = W(Pawn)
		b.Squares[BlackPawnRow][col] = B(Pawn)
		b.Squares[BlackBackRow][col] = B(backRow[col])
	}
}

// IsWithinBounds returns true if the square lies on the board.
func (b *Board) IsWithinBounds(s Square) bool {
	return IsWithinBounds(s)
}

// Get returns the piece on the square, or Off when the square is outside the board.
func (b *Board) Get(s Square) Piece {
	if !IsWithinBounds(s) {
		return Off
	}
	return b.Squares[s.Row][s.Col]
}

// Set places a piece on the square and resets its moved flag.
// Squares outside the board are ignored.
func (b *Board) Set(s Square, piece Piece) {
	if !IsWithinBounds(s) {
		return
	}
	b.Squares[s.Row][s.Col] = piece
	b.Moved[s.Row][s.Col] = false
}

// IsEmpty returns true if the square is on the board and unoccupied.
func (b *Board) IsEmpty(s Square) bool {
	return b.Get(s) == Empty
}

// IsEnemy returns true if the square is on the board and holds a piece
// whose colour differs from colour.
func (b *Board) IsEnemy(s Square, colour Colour) bool {
	p := b.Get(s)
	return IsOccupant(p) && ExtractColour(p) != colour
}

// IsFriend returns true if the square holds a piece of the given colour.
func (b *Board) IsFriend(s Square, colour Colour) bool {
	p := b.Get(s)
	return IsOccupant(p) && ExtractColour(p) == colour
}

// HasMoved reports whether the piece on the square has moved.
// Out of bounds squares report false.
func (b *Board) HasMoved(s Square) bool {
	if !IsWithinBounds(s) {
		return false
	}
	return b.Moved[s.Row][s.Col]
}

// SetMoved sets the moved flag for the piece on the square.
func (b *Board) SetMoved(s Square, moved bool) {
	if IsWithinBounds(s) {
		b.Moved[s.Row][s.Col] = moved
	}
}

// EnPassantTarget returns the en passant target square, if any.
func (b *Board) EnPassantTarget() (Square, bool) {
	return b.EPSquare, b.EnPassant
}

// SetEnPassantTarget records s as the en passant target square.
func (b *Board) SetEnPassantTarget(s Square) {
	b.EnPassant = true
	b.EPSquare = s
}

// ClearEnPassant removes any en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Square{}
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// Count returns how many copies of the coloured piece are on the board.
func (b *Board) Count(colouredPiece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == colouredPiece {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
// All board state is held in arrays, so a struct copy is sufficient.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String renders the board as an eight-line diagram with row 7 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteByte(byte('0' + row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(Symbol(b.Squares[row][col]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  01234567\n")
	return sb.String()
}
