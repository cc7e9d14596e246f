package framestack

import (
	"io"
	"log/slog"
)

// DefaultCapacity is the initial number of entry slots reserved by a new stack.
const DefaultCapacity = 64

// discardLogger drops every record. Stacks log through it unless WithLogger is used.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type config struct {
	capacity   int
	maxEntries int
	logger     *slog.Logger
}

// Option configures a Stack, DictStack or SafeStack.
type Option func(*config)

// WithCapacity reserves room for n entries up front.
// If n <= 0, DefaultCapacity is used.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithMaxEntries caps the number of live entries across all frames. A push
// beyond the cap fails with ErrAllocationFailure. Zero means no cap.
func WithMaxEntries(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.maxEntries = n
	}
}

// WithLogger routes debug records (frame open/close, growth) and warnings
// (rejected closes) to l. A nil logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) config {
	c := config{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&c)
	}
	if c.capacity <= 0 {
		c.capacity = DefaultCapacity
	}
	if c.maxEntries > 0 && c.capacity > c.maxEntries {
		c.capacity = c.maxEntries
	}
	if c.logger == nil {
		c.logger = discardLogger
	}
	return c
}
