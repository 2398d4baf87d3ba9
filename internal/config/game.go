package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// GameConfig holds settings for the game the harness plays.
type GameConfig struct {
	// StartFEN is the starting position; empty means the standard setup
	StartFEN string

	// Moves is a space separated list of "row,col:row,col" moves to play
	Moves string

	// StrictLegality rejects moves that leave the mover's king in check
	StrictLegality bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{}
}

// Validate checks that the game configuration is usable.
func (g *GameConfig) Validate() error {
	if g.StartFEN != "" && strings.TrimSpace(g.StartFEN) == "" {
		return fmt.Errorf("blank starting position: %w", errors.ErrInvalidConfig)
	}
	return nil
}
