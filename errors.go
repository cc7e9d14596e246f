package framestack

import "errors"

var (
	// ErrFrameOrder indicates an attempt to close a frame while a frame opened
	// after it is still open. The stack is left unchanged.
	ErrFrameOrder = errors.New("framestack: frame closed out of order")

	// ErrFrameClosed indicates a Close on a frame guard that was already closed.
	ErrFrameClosed = errors.New("framestack: frame already closed")

	// ErrStaleHandle indicates a handle whose frame (or an ancestor of it) has
	// been closed, or a handle that was issued by a different stack.
	ErrStaleHandle = errors.New("framestack: stale handle")

	// ErrBorrowConflict indicates the slot is already exclusively borrowed.
	ErrBorrowConflict = errors.New("framestack: value already borrowed")

	// ErrAllocationFailure indicates the backing store cannot grow any further.
	ErrAllocationFailure = errors.New("framestack: backing store cannot grow")
)

const releasedPanic = "framestack: use after Release()"
