// Package config holds the settings of the chess-arbiter harness: where it
// writes, how much it says, the game it sets up and the perft run it makes.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=quiet, 1=summary, 2=per-move commentary

	Game   GameConfig
	Perft  PerftConfig
	Output OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       *NewGameConfig(),
		Perft:      *NewPerftConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer that receives boards, status and perft tables.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer that receives diagnostics.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
