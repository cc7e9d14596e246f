package framestack

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// store is the single growable sequence holding the entries of every frame.
// Entries are addressed by slot index only; append may relocate entries.
type store[E any] struct {
	entries    []E
	maxEntries int
	peak       int // high-water mark of len(entries)
	grows      int // number of reallocations
	teardown   func(*E) error
	log        *slog.Logger
}

func newStore[E any](cfg config, teardown func(*E) error, log *slog.Logger) store[E] {
	return store[E]{
		entries:    make([]E, 0, cfg.capacity),
		maxEntries: cfg.maxEntries,
		teardown:   teardown,
		log:        log,
	}
}

// push appends e and returns its slot. On failure nothing is appended.
func (s *store[E]) push(e E) (int, error) {
	n := len(s.entries)
	if s.maxEntries > 0 && n >= s.maxEntries {
		return 0, fmt.Errorf("%w: limit of %d entries reached", ErrAllocationFailure, s.maxEntries)
	}
	oldCap := cap(s.entries)
	s.entries = append(s.entries, e)
	if newCap := cap(s.entries); newCap != oldCap {
		s.grows++
		s.log.Debug("backing store grew", "from", oldCap, "to", newCap)
	}
	if n+1 > s.peak {
		s.peak = n + 1
	}
	return n, nil
}

func (s *store[E]) len() int { return len(s.entries) }

func (s *store[E]) at(slot int) *E { return &s.entries[slot] }

// truncate drops every entry with slot >= to, newest first. Teardown errors
// are joined; the entries are removed regardless. The entries are detached
// before teardown runs, so a push made from a teardown callback lands at
// slot to and survives.
func (s *store[E]) truncate(to int) error {
	if to >= len(s.entries) {
		return nil
	}
	tail := append([]E(nil), s.entries[to:]...)
	// Let the GC reclaim whatever the dropped entries referenced.
	clear(s.entries[to:])
	s.entries = s.entries[:to]

	if s.teardown == nil {
		return nil
	}
	var errs []error
	for i := len(tail) - 1; i >= 0; i-- {
		if err := s.teardown(&tail[i]); err != nil {
			errs = append(errs, fmt.Errorf("slot %d: %w", to+i, err))
		}
	}
	return errors.Join(errs...)
}

// closeValue runs io.Closer teardown on v, if it has one.
func closeValue(v any) error {
	if c, ok := v.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
