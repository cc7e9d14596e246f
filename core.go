package framestack

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

var stackIDs atomic.Uint64

// core is the backing store and frame ledger pair shared by both stack
// variants. It is not goroutine-safe.
type core[E any] struct {
	id       uint64
	store    store[E]
	ledger   ledger
	log      *slog.Logger
	released bool

	// Variant hooks, run after a frame is opened or retired.
	onOpen   func(depth int)
	onRetire func(depth int)
}

func newCore[E any](cfg config, teardown func(*E) error) core[E] {
	id := stackIDs.Add(1)
	log := cfg.logger.With("stack", id)
	c := core[E]{
		id:    id,
		store: newStore[E](cfg, teardown, log),
		log:   log,
	}
	c.ledger.open(0)
	return c
}

func (c *core[E]) panicIfReleased() {
	if c.released {
		panic(releasedPanic)
	}
}

func (c *core[E]) openFrame() frameDesc {
	c.panicIfReleased()
	start := c.store.len()
	d := c.ledger.open(start)
	if c.onOpen != nil {
		c.onOpen(d.depth)
	}
	c.log.Debug("frame opened", "depth", d.depth, "start", start)
	return d
}

// closeFrame pops the frame d and everything pushed while it was topmost.
// If d is not the innermost open frame nothing changes.
func (c *core[E]) closeFrame(d frameDesc) error {
	if c.released {
		return fmt.Errorf("%w: stack released", ErrFrameClosed)
	}
	if err := c.ledger.check(d); err != nil {
		if errors.Is(err, ErrFrameOrder) {
			c.log.Warn("rejected frame close", "depth", d.depth, "top", c.ledger.top())
		}
		return err
	}
	return c.retireTop()
}

func (c *core[E]) retireTop() error {
	depth := c.ledger.top()
	m := c.ledger.retire()
	if c.onRetire != nil {
		c.onRetire(depth)
	}
	popped := c.store.len() - m.start
	err := c.store.truncate(m.start)
	c.log.Debug("frame closed", "depth", depth, "popped", popped)
	return err
}

func (c *core[E]) push(e E) (Handle, error) {
	c.panicIfReleased()
	slot, err := c.store.push(e)
	if err != nil {
		return Handle{}, err
	}
	top := c.ledger.topDesc()
	return Handle{stack: c.id, slot: slot, depth: top.depth, epoch: top.epoch}, nil
}

// handleAt builds a handle for a slot owned by the open frame at depth.
func (c *core[E]) handleAt(depth, slot int) Handle {
	return Handle{stack: c.id, slot: slot, depth: depth, epoch: c.ledger.frames[depth].epoch}
}

func (c *core[E]) resolve(h Handle) (*E, error) {
	if h.stack != c.id || c.released {
		return nil, fmt.Errorf("%w: %v", ErrStaleHandle, h)
	}
	if !c.ledger.live(h.depth, h.epoch) || h.slot < 0 || h.slot >= c.store.len() {
		return nil, fmt.Errorf("%w: %v", ErrStaleHandle, h)
	}
	return c.store.at(h.slot), nil
}

// reset empties the root frame. It requires that no other frame is open.
// The new root frame is open before teardown runs, so values pushed from a
// teardown callback land in it.
func (c *core[E]) reset() error {
	c.panicIfReleased()
	if top := c.ledger.top(); top != 0 {
		return fmt.Errorf("%w: reset with %d frame(s) open", ErrFrameOrder, top)
	}
	m := c.ledger.retire()
	if c.onRetire != nil {
		c.onRetire(0)
	}
	c.ledger.open(m.start)
	if c.onOpen != nil {
		c.onOpen(0)
	}
	popped := c.store.len() - m.start
	err := c.store.truncate(m.start)
	c.log.Debug("frame reset", "depth", 0, "popped", popped)
	return err
}

// release retires every frame, innermost first, and drops the backing store.
func (c *core[E]) release() error {
	if c.released {
		return nil
	}
	// Set first: a push from a teardown callback panics instead of
	// landing in a retired frame.
	c.released = true
	var errs []error
	for c.ledger.top() >= 0 {
		if err := c.retireTop(); err != nil {
			errs = append(errs, err)
		}
	}
	c.store.entries = nil
	return errors.Join(errs...)
}

// depth returns the depth of the innermost open frame; 0 when only the root
// frame is open or the stack has been released.
func (c *core[E]) depth() int {
	if c.released {
		return 0
	}
	return c.ledger.top()
}
