package framestack

import "fmt"

// MutRef is an exclusive borrow of one Stack entry. While it is held, further
// BorrowMut calls for the same entry fail with ErrBorrowConflict. Reads and
// writes go through the stack by slot, so a MutRef stays correct when the
// backing store grows. Once the entry's frame closes every method reports
// ErrStaleHandle.
type MutRef[V any] struct {
	s        *Stack[V]
	h        Handle
	released bool
}

// BorrowMut takes the exclusive borrow of the entry h refers to.
func (s *Stack[V]) BorrowMut(h Handle) (*MutRef[V], error) {
	e, err := s.core.resolve(h)
	if err != nil {
		return nil, err
	}
	if e.borrowed {
		return nil, fmt.Errorf("%w: slot %d", ErrBorrowConflict, h.slot)
	}
	e.borrowed = true
	return &MutRef[V]{s: s, h: h}, nil
}

// Update borrows the entry h refers to, applies fn to a copy of its value and
// stores the result. fn must not push onto or close frames of s.
func (s *Stack[V]) Update(h Handle, fn func(v *V)) error {
	ref, err := s.BorrowMut(h)
	if err != nil {
		return err
	}
	defer ref.Release()

	v, err := ref.Load()
	if err != nil {
		return err
	}
	fn(&v)
	return ref.Store(v)
}

func (r *MutRef[V]) entry() (*valueEntry[V], error) {
	if r.released {
		return nil, fmt.Errorf("%w: borrow of slot %d already released", ErrStaleHandle, r.h.slot)
	}
	return r.s.core.resolve(r.h)
}

// Handle returns the handle the borrow was taken through.
func (r *MutRef[V]) Handle() Handle { return r.h }

// Load returns the current value.
func (r *MutRef[V]) Load() (V, error) {
	e, err := r.entry()
	if err != nil {
		var zero V
		return zero, err
	}
	return e.val, nil
}

// Store replaces the value.
func (r *MutRef[V]) Store(v V) error {
	e, err := r.entry()
	if err != nil {
		return err
	}
	e.val = v
	return nil
}

// Release gives the borrow back. It is safe to call more than once and after
// the entry's frame has closed.
func (r *MutRef[V]) Release() {
	if r.released {
		return
	}
	r.released = true
	if e, err := r.s.core.resolve(r.h); err == nil {
		e.borrowed = false
	}
}
