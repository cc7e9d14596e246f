package framestack

import "errors"

// dictEntry is one slot of a DictStack.
type dictEntry[K comparable, V any] struct {
	key K
	val V
}

// DictStack is the key-indexed variant of Stack. Every push records its key in
// the innermost frame, and lookups search frames innermost first, so a key
// pushed in an inner frame shadows the same key in outer frames until the
// inner frame closes. Within one frame the latest push of a key wins.
//
// Because an entry can be reached through its push handle and through any
// number of lookups, DictStack hands out copies only. Store a *Cell[T] when
// the value needs to change in place.
type DictStack[K comparable, V any] struct {
	core  core[dictEntry[K, V]]
	index []map[K]int // key -> slot, one map per open frame
}

// NewDictStack creates an empty DictStack whose root frame (depth 0) is open.
func NewDictStack[K comparable, V any](opts ...Option) *DictStack[K, V] {
	cfg := newConfig(opts)
	d := &DictStack[K, V]{index: make([]map[K]int, 1)}
	d.core = newCore(cfg, func(e *dictEntry[K, V]) error {
		return errors.Join(closeValue(e.val), closeValue(e.key))
	})
	d.core.onOpen = func(int) {
		d.index = append(d.index, nil)
	}
	d.core.onRetire = func(depth int) {
		d.index[depth] = nil
		d.index = d.index[:depth]
	}
	return d
}

// OpenFrame opens a new innermost frame and returns its guard.
func (d *DictStack[K, V]) OpenFrame() *Frame {
	return &Frame{owner: &d.core, desc: d.core.openFrame()}
}

// Scope runs fn inside a new frame that is closed when fn returns or panics.
func (d *DictStack[K, V]) Scope(fn func() error) error {
	return runScope(d.OpenFrame, fn)
}

// Push stores the pair in the innermost open frame and binds key to it there.
func (d *DictStack[K, V]) Push(key K, val V) (Handle, error) {
	h, err := d.core.push(dictEntry[K, V]{key: key, val: val})
	if err != nil {
		return Handle{}, err
	}
	m := d.index[h.depth]
	if m == nil {
		m = make(map[K]int)
		d.index[h.depth] = m
	}
	m[key] = h.slot
	return h, nil
}

// Get returns a copy of the value h refers to, or ErrStaleHandle once the
// value's frame has been closed.
func (d *DictStack[K, V]) Get(h Handle) (V, error) {
	e, err := d.core.resolve(h)
	if err != nil {
		var zero V
		return zero, err
	}
	return e.val, nil
}

// Lookup finds the binding of key visible from the innermost frame.
func (d *DictStack[K, V]) Lookup(key K) (Handle, bool) {
	if d.core.released {
		return Handle{}, false
	}
	for depth := len(d.index) - 1; depth >= 0; depth-- {
		if slot, ok := d.index[depth][key]; ok {
			return d.core.handleAt(depth, slot), true
		}
	}
	return Handle{}, false
}

// LookupInFrame is like Lookup but only searches the innermost frame.
func (d *DictStack[K, V]) LookupInFrame(key K) (Handle, bool) {
	if d.core.released {
		return Handle{}, false
	}
	top := len(d.index) - 1
	if slot, ok := d.index[top][key]; ok {
		return d.core.handleAt(top, slot), true
	}
	return Handle{}, false
}

// Value returns the value bound to key, if any.
func (d *DictStack[K, V]) Value(key K) (V, bool) {
	h, ok := d.Lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	v, err := d.Get(h)
	return v, err == nil
}

// Keys returns every key visible from the innermost frame, once each: the
// innermost frame's keys first, newest first within a frame.
func (d *DictStack[K, V]) Keys() []K {
	if d.core.released {
		return nil
	}
	seen := make(map[K]struct{})
	var keys []K
	for depth := d.core.ledger.top(); depth >= 0; depth-- {
		start, end := d.core.ledger.bounds(depth, d.core.store.len())
		for slot := end - 1; slot >= start; slot-- {
			k := d.core.store.at(slot).key
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// Bindings returns the value each visible key resolves to.
func (d *DictStack[K, V]) Bindings() map[K]V {
	out := make(map[K]V)
	if d.core.released {
		return out
	}
	for depth := range d.index {
		for k, slot := range d.index[depth] {
			out[k] = d.core.store.at(slot).val
		}
	}
	return out
}

// Reset drops every pair in the root frame while keeping the reserved
// capacity. It fails with ErrFrameOrder if any frame guard is still open.
func (d *DictStack[K, V]) Reset() error {
	return d.core.reset()
}

// Release closes every frame, innermost first, and makes the stack unusable.
func (d *DictStack[K, V]) Release() error {
	return d.core.release()
}

// Depth returns the depth of the innermost open frame (0 for the root frame).
func (d *DictStack[K, V]) Depth() int {
	return d.core.depth()
}
