package framestack

import (
	"errors"
	"testing"
)

func TestStorePushTruncate(t *testing.T) {
	var order []int
	s := newStore[int](newConfig([]Option{WithCapacity(2)}), func(e *int) error {
		order = append(order, *e)
		return nil
	}, discardLogger)

	for i := 0; i < 5; i++ {
		slot, err := s.push(i * 10)
		if err != nil {
			t.Fatalf("push(%d) error: %v", i, err)
		}
		if slot != i {
			t.Errorf("push(%d) slot = %d, want %d", i, slot, i)
		}
	}
	if s.grows == 0 {
		t.Error("expected growth past initial capacity")
	}
	if s.peak != 5 {
		t.Errorf("peak = %d, want 5", s.peak)
	}

	if err := s.truncate(2); err != nil {
		t.Fatalf("truncate error: %v", err)
	}
	if s.len() != 2 {
		t.Errorf("len after truncate = %d, want 2", s.len())
	}
	want := []int{40, 30, 20}
	if len(order) != len(want) {
		t.Fatalf("teardown order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("teardown order = %v, want %v", order, want)
			break
		}
	}
	if s.peak != 5 {
		t.Errorf("peak after truncate = %d, want 5", s.peak)
	}

	// Truncated slots are zeroed behind len.
	if got := s.entries[:5][2]; got != 0 {
		t.Errorf("truncated slot holds %d, want 0", got)
	}
}

func TestStoreLimit(t *testing.T) {
	s := newStore[string](newConfig([]Option{WithMaxEntries(1)}), nil, discardLogger)
	if _, err := s.push("a"); err != nil {
		t.Fatalf("first push error: %v", err)
	}
	if _, err := s.push("b"); !errors.Is(err, ErrAllocationFailure) {
		t.Errorf("second push error = %v, want ErrAllocationFailure", err)
	}
	if s.len() != 1 {
		t.Errorf("len = %d, want 1", s.len())
	}
}

func TestStoreTruncateJoinsErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	s := newStore[error](newConfig(nil), func(e *error) error { return *e }, discardLogger)
	_, _ = s.push(errA)
	_, _ = s.push(nil)
	_, _ = s.push(errB)

	err := s.truncate(0)
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("truncate error = %v, want both errors joined", err)
	}
	if s.len() != 0 {
		t.Errorf("len = %d, want 0", s.len())
	}
}

func TestStoreTruncateReentrantPush(t *testing.T) {
	var s store[int]
	var torn []int
	s = newStore[int](newConfig(nil), func(e *int) error {
		torn = append(torn, *e)
		if *e > 0 {
			if _, err := s.push(-*e); err != nil {
				t.Errorf("push from teardown: %v", err)
			}
		}
		return nil
	}, discardLogger)
	_, _ = s.push(0)
	_, _ = s.push(1)
	_, _ = s.push(2)

	if err := s.truncate(1); err != nil {
		t.Fatalf("truncate error: %v", err)
	}
	if want := []int{2, 1}; len(torn) != 2 || torn[0] != want[0] || torn[1] != want[1] {
		t.Errorf("teardown order = %v, want %v", torn, want)
	}
	// Pushes made during teardown land above the truncation point.
	if want := []int{0, -2, -1}; len(s.entries) != 3 ||
		s.entries[0] != want[0] || s.entries[1] != want[1] || s.entries[2] != want[2] {
		t.Errorf("entries = %v, want %v", s.entries, want)
	}
}

func TestCloseValue(t *testing.T) {
	var closed []string
	if err := closeValue(closeRecorder{name: "x", log: &closed}); err != nil {
		t.Errorf("closeValue error: %v", err)
	}
	if len(closed) != 1 {
		t.Errorf("closer not called")
	}
	if err := closeValue(42); err != nil {
		t.Errorf("closeValue(42) = %v, want nil", err)
	}
}
