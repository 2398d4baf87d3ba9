// Package output renders the state of a game, and any perft run made from
// it, as a text report or a JSON document.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, separated from the previous one by a space or, when
// the line would grow past the limit, by a line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatMove renders a move as "row,col:row,col", the form the harness
// reads moves in.
func FormatMove(m chess.Move) string {
	return fmt.Sprintf("%d,%d:%d,%d", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

// FormatPly renders one entry of the move record, e.g. "3. White Queen 0,3:4,7".
func FormatPly(number int, p game.Ply) string {
	return fmt.Sprintf("%d. %s %s %s", number,
		chess.ExtractColour(p.Piece), chess.ExtractPiece(p.Piece), FormatMove(p.Move))
}
