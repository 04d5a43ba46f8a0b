package platform

import (
	"log/slog"

	"github.com/aretw0/scribe/pkg/core"
)

// options holds the internal configuration for a notebook.
type options struct {
	logger      *slog.Logger
	ids         core.IDGenerator
	idStrategy  string
	clock       core.Clock
	eventBuffer int
}

// Option defines a functional option for configuring scribe.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		idStrategy: core.StrategyMonotonic,
	}
}

// WithLogger sets the logger for the notebook.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIDStrategy selects how note identities are generated ("monotonic" or "timestamp").
// Ignored when WithIDGenerator is also given.
func WithIDStrategy(name string) Option {
	return func(o *options) {
		o.idStrategy = name
	}
}

// WithIDGenerator injects a custom identity generator.
func WithIDGenerator(g core.IDGenerator) Option {
	return func(o *options) {
		o.ids = g
	}
}

// WithClock overrides the wall clock used for identities and event timestamps.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithEventBuffer allows specifying the size of the event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}
