package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultLineLength is where long move lists wrap.
const DefaultLineLength = 80

// OutputConfig holds settings related to what the harness prints.
type OutputConfig struct {
	// ShowBoard prints the board diagram after the moves are played
	ShowBoard bool

	// ListLegalMoves prints every legal move for the side to move
	ListLegalMoves bool

	// ShowHistory prints the moves played, one ply per line
	ShowHistory bool

	// JSONFormat replaces the text report with a JSON document
	JSONFormat bool

	// MaxLineLength wraps the legal move list in text reports
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:     true,
		MaxLineLength: DefaultLineLength,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < 1 {
		return fmt.Errorf("line length (%d) < 1: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
