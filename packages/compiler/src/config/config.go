package config

// CompilerConfig represents the compiler configuration
type CompilerConfig struct {
	// Nested parses one construct instead of a single root, the mode used
	// when markup appears inside an expression block of other markup
	Nested bool
}

// NewCompilerConfig creates a new CompilerConfig with optional parameters
func NewCompilerConfig(opts ...CompilerConfigOption) *CompilerConfig {
	config := &CompilerConfig{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// CompilerConfigOption is a function that modifies CompilerConfig
type CompilerConfigOption func(*CompilerConfig)

// WithNested sets whether sources are parsed in nested mode
func WithNested(nested bool) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.Nested = nested
	}
}
