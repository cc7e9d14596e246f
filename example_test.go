package framestack

import (
	"errors"
	"fmt"
	"os"
)

// Example demonstrates basic stack usage
func Example() {
	s := NewStack[string]()
	defer s.Release() // Always clean up

	// Values pushed before any frame opens live in the root frame
	root, _ := s.Push("root value")

	// Open a frame for a nested scope
	f := s.OpenFrame()
	inner, _ := s.Push("frame value")
	fmt.Printf("Depth: %d, entries: %d\n", s.Depth(), s.Len())

	// Closing the frame frees everything pushed inside it
	f.Close()
	_, err := s.Get(inner)
	fmt.Printf("Inner handle stale: %v\n", errors.Is(err, ErrStaleHandle))

	v, _ := s.Get(root)
	fmt.Printf("Root value: %s\n", v)

	// Output:
	// Depth: 1, entries: 2
	// Inner handle stale: true
	// Root value: root value
}

// ExampleDictStack demonstrates key shadowing across frames
func ExampleDictStack() {
	d := NewDictStack[string, int]()
	defer d.Release()

	outer := d.OpenFrame()
	d.Push("x", 1)

	d.Scope(func() error {
		d.Push("x", 2)
		v, _ := d.Value("x")
		fmt.Printf("inner x = %d\n", v)
		return nil
	})

	v, _ := d.Value("x")
	fmt.Printf("outer x = %d\n", v)

	outer.Close()
	_, ok := d.Lookup("x")
	fmt.Printf("x bound: %v\n", ok)

	// Output:
	// inner x = 2
	// outer x = 1
	// x bound: false
}

// ExampleStack_Dump demonstrates the diagnostic listing
func ExampleStack_Dump() {
	s := NewStack[int](WithCapacity(4))
	defer s.Release()

	s.Push(1)
	s.Push(2)
	f := s.OpenFrame()
	defer f.Close()
	s.Push(3)

	s.Dump(os.Stdout)

	// Output:
	// frame 0 (2 entries)
	//   [0] 1
	//   [1] 2
	// frame 1 (1 entries)
	//   [2] 3
	// 3 entries in 2 frame(s), capacity 4
}

// ExampleStack_Update demonstrates exclusive mutation through a handle
func ExampleStack_Update() {
	s := NewStack[[]string]()
	defer s.Release()

	h, _ := s.Push(nil)
	s.Update(h, func(v *[]string) { *v = append(*v, "a", "b") })

	ref, _ := s.BorrowMut(h)
	_, err := s.BorrowMut(h)
	fmt.Printf("second borrow: %v\n", errors.Is(err, ErrBorrowConflict))
	ref.Release()

	v, _ := s.Get(h)
	fmt.Printf("value: %v\n", v)

	// Output:
	// second borrow: true
	// value: [a b]
}

// ExampleStackMetrics demonstrates monitoring stack usage
func ExampleStackMetrics() {
	s := NewStack[int](WithCapacity(8))
	defer s.Release()

	for i := 0; i < 6; i++ {
		s.Push(i)
	}

	m := s.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Entries: %d\n", m.Len)
	fmt.Printf("  Capacity: %d\n", m.Capacity)
	fmt.Printf("  Depth: %d\n", m.Depth)
	fmt.Printf("  Utilization: %.1f%%\n", m.Utilization*100)

	// Output:
	// Metrics:
	//   Entries: 6
	//   Capacity: 8
	//   Depth: 0
	//   Utilization: 75.0%
}
