package config

// PerftConfig holds settings for the perft runner.
type PerftConfig struct {
	// Workers is the number of goroutines splitting the root moves (0 = one per CPU)
	Workers int `yaml:"workers" validate:"min=0,max=256"`

	// BufferSize is the capacity of the work and result channels
	BufferSize int `yaml:"buffer_size" validate:"min=0"`

	// CacheSize caps the node-count cache entries (0 = unlimited)
	CacheSize int `yaml:"cache_size" validate:"min=0"`
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:    0,
		BufferSize: 64,
		CacheSize:  1 << 20,
	}
}
