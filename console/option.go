package console

import (
	"io"

	"github.com/ardnew/consolecli/log"
)

// Option applies a configuration option to config.
type Option func(config) config

// config holds the collaborators of a Parser.
type config struct {
	output io.Writer
	logger *log.Logger
}

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithOutput returns a functional option that sets the destination of lines
// written by [Parser.Write], including diagnostics.
// If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithLogger returns a functional option that sets the structured logger
// used to record parse results and diagnostics.
//
// By default, the package-level logger of [log] is used as configured at
// the time of each record.
func WithLogger(l log.Logger) Option {
	return func(c config) config {
		c.logger = &l

		return c
	}
}
