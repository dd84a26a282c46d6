package config

type NET struct {
	// ReadBufferSize is the size of the buffer a connection is read into.
	// A request is read in a single call: whatever doesn't fit into the
	// buffer is truncated, never reassembled across reads.
	ReadBufferSize int
}

// Config holds the few knobs the engine exposes. Always start from
// Default() and override fields instead of constructing it manually.
type Config struct {
	NET NET
}

// Default returns the config the engine runs with unless tuned otherwise.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 4096,
		},
	}
}

// Fill backfills zero-valued fields with defaults. Passing nil yields
// Default().
func Fill(cfg *Config) *Config {
	if cfg == nil {
		return Default()
	}

	defaults := Default()

	if cfg.NET.ReadBufferSize == 0 {
		cfg.NET.ReadBufferSize = defaults.NET.ReadBufferSize
	}

	return cfg
}
