package framestack

import (
	"errors"
	"io"
	"sync"
)

// SafeStack is a mutex-protected wrapper around Stack for concurrent access.
// Every operation is serialized, but frames are still shared by all
// goroutines: a frame opened by one goroutine must be closed before a frame
// opened earlier by another, or Close fails with ErrFrameOrder.
type SafeStack[V any] struct {
	mu sync.Mutex
	s  *Stack[V]
}

// SafeFrame is the guard for a frame opened through a SafeStack.
type SafeFrame[V any] struct {
	owner *SafeStack[V]
	f     *Frame
}

// NewSafeStack creates a new thread-safe stack.
func NewSafeStack[V any](opts ...Option) *SafeStack[V] {
	return &SafeStack[V]{s: NewStack[V](opts...)}
}

// OpenFrame thread-safely opens a new innermost frame.
func (s *SafeStack[V]) OpenFrame() *SafeFrame[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &SafeFrame[V]{owner: s, f: s.s.OpenFrame()}
}

// Close thread-safely closes the frame. See Frame.Close.
func (f *SafeFrame[V]) Close() error {
	f.owner.mu.Lock()
	defer f.owner.mu.Unlock()
	return f.f.Close()
}

// Depth returns the frame's depth.
func (f *SafeFrame[V]) Depth() int { return f.f.Depth() }

// Scope runs fn inside a new frame. The lock is not held while fn runs.
func (s *SafeStack[V]) Scope(fn func() error) (err error) {
	f := s.OpenFrame()
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return fn()
}

// Push thread-safely stores v in the innermost open frame.
func (s *SafeStack[V]) Push(v V) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Push(v)
}

// Get thread-safely returns a copy of the value h refers to.
func (s *SafeStack[V]) Get(h Handle) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Get(h)
}

// Update thread-safely applies fn to the value h refers to. fn runs with the
// lock held and must not call back into s.
func (s *SafeStack[V]) Update(h Handle, fn func(v *V)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Update(h, fn)
}

// Reset thread-safely empties the root frame.
func (s *SafeStack[V]) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Reset()
}

// Release thread-safely closes every frame and makes the stack unusable.
func (s *SafeStack[V]) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Release()
}

// Depth thread-safely returns the depth of the innermost open frame.
func (s *SafeStack[V]) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Depth()
}

// Len thread-safely returns the number of live entries.
func (s *SafeStack[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Len()
}

// Metrics thread-safely returns a snapshot of stack statistics.
func (s *SafeStack[V]) Metrics() StackMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Metrics()
}

// Dump thread-safely writes the stack listing to w.
func (s *SafeStack[V]) Dump(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Dump(w)
}

// String thread-safely returns the stack listing.
func (s *SafeStack[V]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.String()
}
