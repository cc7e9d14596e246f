package framestack

import "fmt"

// Handle references one entry of the stack that issued it. It records the
// entry's slot together with the depth and epoch of the frame that was
// topmost when the entry was pushed, so it stays meaningful when the backing
// store is reallocated and is rejected once that frame has been closed.
//
// Handles are plain values: copying one is free and several handles may name
// the same entry. The zero Handle never resolves.
type Handle struct {
	stack uint64
	slot  int
	depth int
	epoch uint64
}

// Slot returns the entry's index in the backing store.
func (h Handle) Slot() int { return h.slot }

// Depth returns the depth of the frame that owns the entry.
func (h Handle) Depth() int { return h.depth }

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h == Handle{} }

func (h Handle) String() string {
	if h.IsZero() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(slot=%d depth=%d epoch=%d)", h.slot, h.depth, h.epoch)
}
