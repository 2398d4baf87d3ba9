package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithMoves sets the moves to play.
func (b *ConfigBuilder) WithMoves(moves string) *ConfigBuilder {
	b.cfg.Game.Moves = moves
	return b
}

// WithStrictLegality enables full legality checking of played moves.
func (b *ConfigBuilder) WithStrictLegality(enabled bool) *ConfigBuilder {
	b.cfg.Game.StrictLegality = enabled
	return b
}

// WithPerft requests a perft run, optionally divided by root move.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithHashEntries enables the perft transposition table with n entries.
func (b *ConfigBuilder) WithHashEntries(n int) *ConfigBuilder {
	b.cfg.Perft.HashEntries = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// ShowBoard controls whether the board diagram is printed.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// ListLegalMoves controls whether the legal moves are printed.
func (b *ConfigBuilder) ListLegalMoves(list bool) *ConfigBuilder {
	b.cfg.Output.ListLegalMoves = list
	return b
}

// ShowHistory controls whether the move record is printed.
func (b *ConfigBuilder) ShowHistory(show bool) *ConfigBuilder {
	b.cfg.Output.ShowHistory = show
	return b
}

// WithJSON switches the report to JSON.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithLineLength sets where the legal move list wraps.
func (b *ConfigBuilder) WithLineLength(n int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = n
	return b
}
