package crockford

import "github.com/AdeThorMiwa/crockford-uuid/pkg/entropy"

// Option configures identifier generation and parsing.
type Option func(*config)

type config struct {
	source entropy.Source
	size   int
}

func newConfig(opts ...Option) config {
	cfg := config{
		size:   DefaultSize,
		source: entropy.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSize sets the payload width in bytes. Values below 1 are ignored and
// the default width is kept.
func WithSize(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.size = n
		}
	}
}

// WithSource sets the entropy source used by New. Nil sources are ignored.
// Intended for tests that need deterministic or failing entropy.
func WithSource(src entropy.Source) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.source = src
		}
	}
}
