package framestack

import (
	"fmt"
	"sync"
)

// Cell is a value with its own lock, for state that must change in place
// while several handles refer to it, as with DictStack values.
type Cell[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewCell returns a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Load returns the current value.
func (c *Cell[T]) Load() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

// Store replaces the value.
func (c *Cell[T]) Store(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
}

// Swap replaces the value and returns the previous one.
func (c *Cell[T]) Swap(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.v
	c.v = v
	return old
}

// Update applies fn to the value under the write lock.
func (c *Cell[T]) Update(fn func(v *T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.v)
}

func (c *Cell[T]) String() string {
	return fmt.Sprint(c.Load())
}
