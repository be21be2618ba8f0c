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

// WithStrategy sets the search strategy and its depth.
func (b *ConfigBuilder) WithStrategy(s Strategy, depth int) *ConfigBuilder {
	b.cfg.Search.Strategy = s
	b.cfg.Search.Depth = depth
	return b
}

// WithDifficulty selects the strategy from a difficulty level.
func (b *ConfigBuilder) WithDifficulty(level int) *ConfigBuilder {
	b.cfg.Search.Strategy = StrategyAuto
	b.cfg.Search.Difficulty = level
	return b
}

// WithWorkers sets the number of root-move workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithSeed fixes the random seed used by ply search.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithMargin sets the near-best score window of ply search.
func (b *ConfigBuilder) WithMargin(margin int) *ConfigBuilder {
	b.cfg.Search.Margin = margin
	return b
}

// WithStrictDisambiguation enables strict SAN disambiguation.
func (b *ConfigBuilder) WithStrictDisambiguation(enabled bool) *ConfigBuilder {
	b.cfg.Notation.StrictDisambiguation = enabled
	return b
}

// WithOutputFormat sets the move output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Notation.Format = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
