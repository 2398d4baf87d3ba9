package chess

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("no en passant", func(t *testing.T) {
		if b.EnPassant {
			t.Error("EnPassant = true; want false")
		}
		if _, ok := b.EnPassantTarget(); ok {
			t.Error("EnPassantTarget() ok = true; want false")
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if got := b.Get(Sq(row, col)); got != Empty {
					t.Errorf("Get(%d, %d) = %v; want Empty", row, col, got)
				}
			}
		}
	})

	t.Run("outside squares are Off", func(t *testing.T) {
		for _, s := range []Square{Sq(-1, 0), Sq(0, -1), Sq(8, 0), Sq(0, 8), Sq(9, 9)} {
			if got := b.Get(s); got != Off {
				t.Errorf("Get(%v) = %v; want Off", s, got)
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name   string
		square Square
		piece  Piece
	}{
		// White back row
		{"white rook a1", Sq(0, 0), W(Rook)},
		{"white knight b1", Sq(0, 1), W(Knight)},
		{"white bishop c1", Sq(0, 2), W(Bishop)},
		{"white queen d1", Sq(0, 3), W(Queen)},
		{"white king e1", Sq(0, 4), W(King)},
		{"white bishop f1", Sq(0, 5), W(Bishop)},
		{"white knight g1", Sq(0, 6), W(Knight)},
		{"white rook h1", Sq(0, 7), W(Rook)},
		// Pawns
		{"white pawn a2", Sq(1, 0), W(Pawn)},
		{"white pawn e2", Sq(1, 4), W(Pawn)},
		{"black pawn a7", Sq(6, 0), B(Pawn)},
		{"black pawn h7", Sq(6, 7), B(Pawn)},
		// Black back row
		{"black rook a8", Sq(7, 0), B(Rook)},
		{"black queen d8", Sq(7, 3), B(Queen)},
		{"black king e8", Sq(7, 4), B(King)},
		{"black rook h8", Sq(7, 7), B(Rook)},
		// Middle
		{"empty e4", Sq(3, 4), Empty},
		{"empty d5", Sq(4, 3), Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.square); got != tt.piece {
				t.Errorf("Get(%v) = %v; want %v", tt.square, got, tt.piece)
			}
		})
	}

	t.Run("material", func(t *testing.T) {
		counts := map[Piece]int{
			Pawn: 8, Rook: 2, Knight: 2, Bishop: 2, Queen: 1, King: 1,
		}
		for piece, want := range counts {
			if got := b.Count(W(piece)); got != want {
				t.Errorf("Count(W(%v)) = %d; want %d", piece, got, want)
			}
			if got := b.Count(B(piece)); got != want {
				t.Errorf("Count(B(%v)) = %d; want %d", piece, got, want)
			}
		}
	})

	t.Run("nothing has moved", func(t *testing.T) {
		if b.HasMoved(Sq(0, 4)) || b.HasMoved(Sq(7, 0)) {
			t.Error("HasMoved() = true on the initial position")
		}
	})
}

func TestOccupancyQueries(t *testing.T) {
	b := NewBoard()
	b.Set(Sq(3, 3), W(Knight))
	b.Set(Sq(4, 4), B(Pawn))

	tests := []struct {
		name     string
		square   Square
		empty    bool
		enemyOfW bool
		enemyOfB bool
		inBounds bool
	}{
		{"white knight", Sq(3, 3), false, false, true, true},
		{"black pawn", Sq(4, 4), false, true, false, true},
		{"empty square", Sq(0, 0), true, false, false, true},
		{"below the board", Sq(-1, 3), false, false, false, false},
		{"right of the board", Sq(3, 8), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsEmpty(tt.square); got != tt.empty {
				t.Errorf("IsEmpty(%v) = %v; want %v", tt.square, got, tt.empty)
			}
			if got := b.IsEnemy(tt.square, White); got != tt.enemyOfW {
				t.Errorf("IsEnemy(%v, White) = %v; want %v", tt.square, got, tt.enemyOfW)
			}
			if got := b.IsEnemy(tt.square, Black); got != tt.enemyOfB {
				t.Errorf("IsEnemy(%v, Black) = %v; want %v", tt.square, got, tt.enemyOfB)
			}
			if got := b.IsWithinBounds(tt.square); got != tt.inBounds {
				t.Errorf("IsWithinBounds(%v) = %v; want %v", tt.square, got, tt.inBounds)
			}
		})
	}
}

func TestFindKing(t *testing.T) {
	b := NewInitialBoard()

	if got, ok := b.FindKing(White); !ok || got != Sq(0, 4) {
		t.Errorf("FindKing(White) = %v, %v; want (0,4), true", got, ok)
	}
	if got, ok := b.FindKing(Black); !ok || got != Sq(7, 4) {
		t.Errorf("FindKing(Black) = %v, %v; want (7,4), true", got, ok)
	}
	if _, ok := NewBoard().FindKing(White); ok {
		t.Error("FindKing(White) on empty board ok = true; want false")
	}
}

func TestCopy(t *testing.T) {
	b := NewInitialBoard()
	b.SetEnPassantTarget(Sq(2, 4))
	b.SetMoved(Sq(0, 0), true)

	c := b.Copy()
	c.MovePiece(Sq(1, 3), Sq(3, 3))

	if got := b.Get(Sq(1, 3)); got != W(Pawn) {
		t.Errorf("original Get(1,3) = %v after copy was mutated; want white Pawn", got)
	}
	if target, ok := b.EnPassantTarget(); !ok || target != Sq(2, 4) {
		t.Errorf("original EnPassantTarget() = %v, %v; want (2,4), true", target, ok)
	}
	if target, ok := c.EnPassantTarget(); !ok || target != Sq(2, 3) {
		t.Errorf("copy EnPassantTarget() = %v, %v; want (2,3), true", target, ok)
	}
	if !c.HasMoved(Sq(0, 0)) {
		t.Error("copy lost the moved flag on (0,0)")
	}
}

func TestBoardString(t *testing.T) {
	got := NewInitialBoard().String()
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("String() has %d lines; want 9", len(lines))
	}
	if lines[0] != "7 rnbqkbnr" {
		t.Errorf("top line = %q; want %q", lines[0], "7 rnbqkbnr")
	}
	if lines[7] != "0 RNBQKBNR" {
		t.Errorf("bottom row line = %q; want %q", lines[7], "0 RNBQKBNR")
	}
}

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if PromotionRow(White) != 7 || PromotionRow(Black) != 0 {
		t.Errorf("PromotionRow() = %d, %d; want 7, 0", PromotionRow(White), PromotionRow(Black))
	}
}

func TestColouredPieceEncoding(t *testing.T) {
	for piece := Pawn; piece <= King; piece++ {
		for _, colour := range []Colour{White, Black} {
			cp := MakeColouredPiece(colour, piece)
			if got := ExtractPiece(cp); got != piece {
				t.Errorf("ExtractPiece(%v %v) = %v", colour, piece, got)
			}
			if got := ExtractColour(cp); got != colour {
				t.Errorf("ExtractColour(%v %v) = %v", colour, piece, got)
			}
			if !IsOccupant(cp) {
				t.Errorf("IsOccupant(%v %v) = false", colour, piece)
			}
		}
	}
}
