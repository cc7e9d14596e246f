package framestack

// valueEntry is one slot of a Stack.
type valueEntry[V any] struct {
	val      V
	borrowed bool
}

// Stack is a frame-scoped value allocator. Values are pushed onto the
// innermost open frame and freed together when that frame is closed.
// Not goroutine-safe; use SafeStack for concurrent access.
type Stack[V any] struct {
	core core[valueEntry[V]]
}

// NewStack creates an empty Stack whose root frame (depth 0) is open.
func NewStack[V any](opts ...Option) *Stack[V] {
	cfg := newConfig(opts)
	return &Stack[V]{
		core: newCore(cfg, func(e *valueEntry[V]) error {
			return closeValue(e.val)
		}),
	}
}

// OpenFrame opens a new innermost frame and returns its guard.
func (s *Stack[V]) OpenFrame() *Frame {
	return &Frame{owner: &s.core, desc: s.core.openFrame()}
}

// Scope runs fn inside a new frame that is closed when fn returns or panics.
func (s *Stack[V]) Scope(fn func() error) error {
	return runScope(s.OpenFrame, fn)
}

// Push stores v in the innermost open frame.
// It fails with ErrAllocationFailure, leaving the stack unchanged, when the
// configured entry limit has been reached.
func (s *Stack[V]) Push(v V) (Handle, error) {
	return s.core.push(valueEntry[V]{val: v})
}

// Get returns a copy of the value h refers to, or ErrStaleHandle once the
// value's frame has been closed.
func (s *Stack[V]) Get(h Handle) (V, error) {
	e, err := s.core.resolve(h)
	if err != nil {
		var zero V
		return zero, err
	}
	return e.val, nil
}

// Reset drops every value in the root frame while keeping the reserved
// capacity. Handles into the root frame become stale. It fails with
// ErrFrameOrder if any frame guard is still open.
func (s *Stack[V]) Reset() error {
	return s.core.reset()
}

// Release closes every frame, innermost first, and makes the stack unusable.
// Subsequent pushes and frame opens panic.
func (s *Stack[V]) Release() error {
	return s.core.release()
}

// Depth returns the depth of the innermost open frame (0 for the root frame).
func (s *Stack[V]) Depth() int {
	return s.core.depth()
}
