package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// NewBoardFromFEN sets up a board from a FEN string and returns it with the
// side to move. Only the placement field is required. A missing castling
// field grants every castle whose king and rook stand on their home squares;
// "-" grants none. The clock fields are ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, err
	}
	if err := parseEnPassant(board, toMove, parts); err != nil {
		return nil, chess.White, err
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row := chess.BoardSize - 1
	col := 0

	// Ranging over runes keeps error columns in characters, not bytes.
	for i, c := range []rune(positions) {
		switch {
		case c > unicode.MaxASCII:
			return placementError(positions, i, "piece letter", fmt.Sprintf("%q", c))
		case c == '/':
			if col != chess.BoardSize {
				return placementError(positions, i, "8 squares per row", fmt.Sprintf("%d", col))
			}
			row--
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			piece := ConvertFENCharToPiece(byte(c))
			if piece == chess.Empty {
				return placementError(positions, i, "piece letter", fmt.Sprintf("%q", c))
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			s := chess.Sq(row, col)
			if !chess.IsWithinBounds(s) {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			board.Set(s, chess.MakeColouredPiece(colour, piece))
			col++
		}
		if col > chess.BoardSize || row < 0 {
			return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
		}
	}
	if row != 0 || col != chess.BoardSize {
		return fmt.Errorf("incomplete placement %q: %w", positions, errors.ErrInvalidFEN)
	}
	return nil
}

func placementError(input string, index int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    input,
		Column:   index + 1,
		Expected: expected,
		Got:      got,
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights parses the castling availability field. Kings and
// rooks start out marked as moved; each granted right clears the flags on
// its king and rook when both stand on their home squares.
func parseCastlingRights(board *chess.Board, parts []string) error {
	rights := "KQkq"
	if len(parts) >= 3 {
		rights = parts[2]
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			s := chess.Sq(row, col)
			switch chess.ExtractPiece(board.Get(s)) {
			case chess.King, chess.Rook:
				board.SetMoved(s, true)
			}
		}
	}

	if rights == "-" {
		return nil
	}

	for _, c := range rights {
		switch c {
		case 'K':
			grantCastle(board, chess.White, chess.BoardSize-1)
		case 'Q':
			grantCastle(board, chess.White, 0)
		case 'k':
			grantCastle(board, chess.Black, chess.BoardSize-1)
		case 'q':
			grantCastle(board, chess.Black, 0)
		default:
			return fmt.Errorf("invalid castling rights: %s: %w", rights, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// grantCastle marks the king and the rook in rookCol as unmoved.
func grantCastle(board *chess.Board, colour chess.Colour, rookCol int) {
	row := chess.BackRow(colour)
	king := chess.Sq(row, 4)
	rook := chess.Sq(row, rookCol)
	if board.Get(king) != chess.MakeColouredPiece(colour, chess.King) ||
		board.Get(rook) != chess.MakeColouredPiece(colour, chess.Rook) {
		return
	}
	board.SetMoved(king, false)
	board.SetMoved(rook, false)
}

// parseEnPassant parses the en passant target square field, e.g. "e3".
// The target must lie behind an enemy pawn that could just have made a
// double step: row 5 with White to move, row 2 with Black to move.
func parseEnPassant(board *chess.Board, toMove chess.Colour, parts []string) error {
	board.ClearEnPassant()
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	field := parts[3]
	if len(field) != 2 || field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return fmt.Errorf("invalid en passant square: %s: %w", field, errors.ErrInvalidFEN)
	}
	target := chess.Sq(int(field[1]-'1'), int(field[0]-'a'))

	mover := toMove.Opposite()
	wantRow := chess.PawnRow(mover) + chess.ColourOffset(mover)
	if target.Row != wantRow {
		return fmt.Errorf("en passant square %s not on row %d: %w", field, wantRow, errors.ErrInvalidFEN)
	}
	if !board.IsEmpty(target) ||
		board.Get(target.Offset(chess.ColourOffset(mover), 0)) != chess.MakeColouredPiece(mover, chess.Pawn) {
		return fmt.Errorf("en passant square %s not behind a %s pawn: %w", field, mover, errors.ErrInvalidFEN)
	}
	board.SetEnPassantTarget(target)
	return nil
}
