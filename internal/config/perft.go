package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth the harness accepts.
const MaxPerftDepth = 7

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate; 0 disables perft
	Depth int

	// Divide reports the node count below each root move
	Divide bool

	// Workers is the number of goroutines used by divide
	Workers int

	// HashEntries caps the perft transposition table; 0 disables it
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
// Perft is off and divide uses one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Cached reports whether perft should use a transposition table.
func (p *PerftConfig) Cached() bool {
	return p.HashEntries > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w",
			p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("hash entries (%d) < 0: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Depth == 0 {
		return fmt.Errorf("divide requires a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
