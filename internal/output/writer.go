package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error
}

// NewReportWriter returns the writer cfg.Output selects.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output.MaxLineLength)
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewTextWriter creates a new text writer that wraps move lists at
// maxLineLength.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// WriteReport writes the report in one piece.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder

	for i, p := range r.History {
		fmt.Fprintln(&sb, FormatPly(i+1, p))
	}

	if r.Board != nil {
		sb.WriteString(r.Board.String())
	}

	fmt.Fprintf(&sb, "Turn: %s\n", r.Turn)
	fmt.Fprintf(&sb, "Status: %s\n", r.Status)
	if r.HasWinner {
		fmt.Fprintf(&sb, "Winner: %s\n", r.Winner)
	} else if !r.Status.IsOver() && r.InCheck {
		fmt.Fprintf(&sb, "%s is in check\n", r.Turn)
	}

	if r.ShowLegalMoves {
		ow := NewOutputWriter(&sb, tw.maxLineLength)
		ow.Write(fmt.Sprintf("Legal moves (%d):", len(r.LegalMoves)))
		for _, m := range r.LegalMoves {
			ow.Write(FormatMove(m))
		}
		ow.NewLine()
	}

	if r.Perft != nil {
		for _, d := range r.Perft.Divide {
			fmt.Fprintf(&sb, "%s %d\n", FormatMove(d.Move), d.Nodes)
		}
		fmt.Fprintf(&sb, "perft(%d) = %d\n", r.Perft.Depth, r.Perft.Nodes)
	}

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// JSONWriter writes each report as an indented JSON document.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport encodes the report.
func (jw *JSONWriter) WriteReport(r *Report) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(r))
}
