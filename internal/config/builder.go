package config

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

// WithFiftyMoveRule enables the automatic fifty-move draw.
func (b *ConfigBuilder) WithFiftyMoveRule(enabled bool) *ConfigBuilder {
	b.cfg.Rules.FiftyMoveRule = enabled
	return b
}

// WithInsufficientMaterial enables the automatic insufficient-material draw.
func (b *ConfigBuilder) WithInsufficientMaterial(enabled bool) *ConfigBuilder {
	b.cfg.Rules.InsufficientMaterial = enabled
	return b
}

// WithRepetition enables the automatic repetition draw at the given count.
func (b *ConfigBuilder) WithRepetition(enabled bool, limit int) *ConfigBuilder {
	b.cfg.Rules.FivefoldRepetition = enabled
	b.cfg.Rules.RepetitionLimit = limit
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoder.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithPerftWorkers sets the perft worker count.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithPerftBufferSize sets the perft channel capacity.
func (b *ConfigBuilder) WithPerftBufferSize(n int) *ConfigBuilder {
	b.cfg.Perft.BufferSize = n
	return b
}

// WithPerftCacheSize sets the perft node-cache capacity.
func (b *ConfigBuilder) WithPerftCacheSize(n int) *ConfigBuilder {
	b.cfg.Perft.CacheSize = n
	return b
}

// WithNotation sets the exported move notation (san or lan).
func (b *ConfigBuilder) WithNotation(notation string) *ConfigBuilder {
	b.cfg.Output.Notation = notation
	return b
}

// WithMaxLineLength sets the PGN line length.
func (b *ConfigBuilder) WithMaxLineLength(n int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = n
	return b
}

// WithTagFormat sets which tags are exported (all, seven or none).
func (b *ConfigBuilder) WithTagFormat(format string) *ConfigBuilder {
	b.cfg.Output.TagFormat = format
	return b
}

// WithMoveNumbers controls move numbers in PGN movetext.
func (b *ConfigBuilder) WithMoveNumbers(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepMoveNumbers = keep
	return b
}

// WithFENs adds the FEN after each move to PGN and JSON output.
func (b *ConfigBuilder) WithFENs(add bool) *ConfigBuilder {
	b.cfg.Output.AddFENs = add
	return b
}
