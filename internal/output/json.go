package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// JSONReport represents a report in JSON format.
type JSONReport struct {
	Turn       string     `json:"turn"`
	Status     string     `json:"status"`
	Winner     string     `json:"winner,omitempty"`
	InCheck    bool       `json:"inCheck"`
	Board      []string   `json:"board,omitempty"` // row 7 first
	History    []JSONPly  `json:"history,omitempty"`
	LegalMoves []string   `json:"legalMoves,omitempty"`
	Perft      *JSONPerft `json:"perft,omitempty"`
}

// JSONPly represents one recorded half-move.
type JSONPly struct {
	Ply    int    `json:"ply"`
	Colour string `json:"colour"` // "white" or "black"
	Piece  string `json:"piece"`
	Move   string `json:"move"`
}

// JSONPerft represents a perft run.
type JSONPerft struct {
	Depth  int          `json:"depth"`
	Nodes  uint64       `json:"nodes"`
	Divide []JSONDivide `json:"divide,omitempty"`
}

// JSONDivide is the node count below one root move.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r *Report) *JSONReport {
	jr := &JSONReport{
		Turn:    colourName(r.Turn),
		Status:  r.Status.String(),
		InCheck: r.InCheck,
	}
	if r.HasWinner {
		jr.Winner = colourName(r.Winner)
	}

	if r.Board != nil {
		jr.Board = boardRows(r.Board)
	}

	for i, p := range r.History {
		jr.History = append(jr.History, JSONPly{
			Ply:    i + 1,
			Colour: colourName(chess.ExtractColour(p.Piece)),
			Piece:  pieceTypeName(chess.ExtractPiece(p.Piece)),
			Move:   FormatMove(p.Move),
		})
	}

	for _, m := range r.LegalMoves {
		jr.LegalMoves = append(jr.LegalMoves, FormatMove(m))
	}

	if r.Perft != nil {
		jr.Perft = &JSONPerft{Depth: r.Perft.Depth, Nodes: r.Perft.Nodes}
		for _, d := range r.Perft.Divide {
			jr.Perft.Divide = append(jr.Perft.Divide, JSONDivide{Move: FormatMove(d.Move), Nodes: d.Nodes})
		}
	}
	return jr
}

// boardRows renders the board as eight strings of diagram letters.
func boardRows(b *chess.Board) []string {
	rows := make([]string, 0, chess.BoardSize)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		line := make([]byte, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			line[col] = chess.Symbol(b.Squares[row][col])
		}
		rows = append(rows, string(line))
	}
	return rows
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
