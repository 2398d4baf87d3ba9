package chess

// MovePiece relocates the piece on from to to and resolves the side effects
// of special moves. Legality is the caller's responsibility; an empty from
// square or an off-board destination leaves the board untouched.
//
// Side effects, in order:
//  1. a pawn moving diagonally onto the empty en passant target removes the
//     enemy pawn beside its start square;
//  2. the piece is relocated and the en passant target is cleared;
//  3. a pawn double step sets a new target on the square passed over;
//  4. a pawn reaching its farthest row becomes a queen;
//  5. a king moving two columns brings the corner rook on that side across
//     to the square beside it.
func (b *Board) MovePiece(from, to Square) {
	piece := b.Get(from)
	if !IsOccupant(piece) || !IsWithinBounds(to) {
		return
	}
	colour := ExtractColour(piece)
	pieceType := ExtractPiece(piece)

	// A pawn moving diagonally onto the empty target square captures the
	// pawn that passed over it. Nothing else is ever removed.
	if pieceType == Pawn && b.EnPassant && to == b.EPSquare &&
		from.Col != to.Col && b.IsEmpty(to) {
		passed := Sq(from.Row, to.Col)
		if b.Get(passed) == MakeColouredPiece(colour.Opposite(), Pawn) {
			b.Set(passed, Empty)
		}
	}

	b.relocate(from, to)
	b.ClearEnPassant()

	switch pieceType {
	case Pawn:
		if abs(to.Row-from.Row) == 2 {
			b.SetEnPassantTarget(Sq((from.Row+to.Row)/2, from.Col))
		}
		if to.Row == PromotionRow(colour) {
			b.Squares[to.Row][to.Col] = MakeColouredPiece(colour, Queen)
		}
	case King:
		if abs(to.Col-from.Col) == 2 {
			b.applyCastleRook(from, to)
		}
	}
}

// applyCastleRook moves the rook that accompanies a castling king.
func (b *Board) applyCastleRook(kingFrom, kingTo Square) {
	rookFrom := Sq(kingFrom.Row, BoardSize-1)
	if kingTo.Col < kingFrom.Col {
		rookFrom = Sq(kingFrom.Row, 0)
	}
	rookTo := Sq(kingFrom.Row, (kingFrom.Col+kingTo.Col)/2)
	if IsOccupant(b.Get(rookFrom)) {
		b.relocate(rookFrom, rookTo)
	}
}

// relocate transfers the piece and marks it as moved.
func (b *Board) relocate(from, to Square) {
	b.Squares[to.Row][to.Col] = b.Squares[from.Row][from.Col]
	b.Moved[to.Row][to.Col] = true
	b.Squares[from.Row][from.Col] = Empty
	b.Moved[from.Row][from.Col] = false
}
