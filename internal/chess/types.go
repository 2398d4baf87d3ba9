// Package chess provides the core board and piece types for the rules engine.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Off   Piece = iota // Outside the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Constants for board dimensions and home rows.
const (
	BoardSize = 8

	WhiteBackRow = 0
	BlackBackRow = BoardSize - 1
	WhitePawnRow = 1
	BlackPawnRow = BoardSize - 2
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnRow returns the row on which the colour's pawns start.
func PawnRow(colour Colour) int {
	if colour == White {
		return WhitePawnRow
	}
	return BlackPawnRow
}

// BackRow returns the colour's back row.
func BackRow(colour Colour) int {
	if colour == White {
		return WhiteBackRow
	}
	return BlackBackRow
}

// PromotionRow returns the farthest row for the colour's pawns.
func PromotionRow(colour Colour) int {
	return BackRow(colour.Opposite())
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsOccupant reports whether p is a coloured piece rather than Empty or Off.
func IsOccupant(p Piece) bool {
	return p != Empty && p != Off
}

// Symbol returns the diagram letter for a coloured piece: uppercase for
// White, lowercase for Black, '.' for an empty square.
func Symbol(colouredPiece Piece) byte {
	if !IsOccupant(colouredPiece) {
		return '.'
	}
	letter := ExtractPiece(colouredPiece).Letter()
	if ExtractColour(colouredPiece) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// CheckStatus indicates whether a side is in check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)
