// Package framestack implements frame-scoped stack allocators for Go.
//
// # Overview
//
// A stack holds values in frames. Each frame belongs to a lexical scope:
// values are pushed onto the innermost open frame, and closing a frame frees
// everything pushed while it was innermost, in one step. Frames close in
// strict reverse order of opening. This is useful for:
//
//   - Interpreter and evaluator environments with nested scopes
//   - Request- or task-scoped state with bulk cleanup
//   - Tying the validity of references to the scope that created them
//
// Two variants share the same machinery:
//
//   - Stack[V] stores values.
//   - DictStack[K, V] stores key/value pairs and resolves keys innermost frame
//     first, so inner bindings shadow outer ones.
//
// # Basic Usage
//
//	s := framestack.NewStack[string]()
//	defer s.Release()
//
//	f := s.OpenFrame()
//	h, _ := s.Push("hello")
//	v, _ := s.Get(h) // "hello"
//	f.Close()
//	_, err := s.Get(h) // errors.Is(err, framestack.ErrStaleHandle)
//
// Scope wraps the same pattern around a callback:
//
//	err := s.Scope(func() error {
//		_, err := s.Push("temporary")
//		return err
//	})
//
// # Handles
//
// Push returns a Handle, not a pointer. A handle names a slot plus the epoch
// of the frame that owned it, so it keeps working when the backing store is
// reallocated and is rejected with ErrStaleHandle once its frame closes.
//
// Stack values can be changed through an exclusive borrow (BorrowMut or
// Update); a second borrow of the same entry fails with ErrBorrowConflict.
// DictStack only returns copies, since lookups can produce many handles to one
// entry. Use a *Cell[T] as the value type to share mutable state there.
//
// # Thread Safety
//
// Stack and DictStack are not thread-safe. For concurrent access, use SafeStack:
//
//	ss := framestack.NewSafeStack[int]()
//	defer ss.Release()
//
// # Teardown
//
// Values (and DictStack keys) implementing io.Closer are closed when their
// frame closes, newest first. Close errors are returned from Frame.Close,
// Reset or Release.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized
//   - Get: O(1)
//   - Lookup: O(number of open frames)
//   - Frame close: O(entries in the frame)
//
// # Metrics and Monitoring
//
//	m := s.Metrics()
//	fmt.Printf("Entries: %d (peak %d)\n", m.Len, m.Peak)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
package framestack
