package framestack

// StackMetrics contains statistical information about a stack.
type StackMetrics struct {
	Len         int     `json:"len"`         // Live entries across all frames
	Capacity    int     `json:"capacity"`    // Reserved entry slots
	Depth       int     `json:"depth"`       // Depth of the innermost open frame
	Peak        int     `json:"peak"`        // Highest Len seen, including before Reset
	Grows       int     `json:"grows"`       // Backing store reallocations
	Utilization float64 `json:"utilization"` // Len/Capacity (0.0-1.0)
}

func (c *core[E]) metrics() StackMetrics {
	m := StackMetrics{
		Len:      c.store.len(),
		Capacity: cap(c.store.entries),
		Depth:    c.depth(),
		Peak:     c.store.peak,
		Grows:    c.store.grows,
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.Len) / float64(m.Capacity)
	}
	return m
}

// Len returns the number of live entries across all frames.
func (s *Stack[V]) Len() int { return s.core.store.len() }

// Cap returns the number of entry slots reserved by the backing store.
func (s *Stack[V]) Cap() int { return cap(s.core.store.entries) }

// Peak returns the highest number of live entries the stack has held.
func (s *Stack[V]) Peak() int { return s.core.store.peak }

// Utilization returns Len/Cap, or 0 if nothing is reserved.
func (s *Stack[V]) Utilization() float64 { return s.core.metrics().Utilization }

// Metrics returns a snapshot of stack statistics.
func (s *Stack[V]) Metrics() StackMetrics { return s.core.metrics() }

// Len returns the number of live pairs across all frames.
func (d *DictStack[K, V]) Len() int { return d.core.store.len() }

// Cap returns the number of entry slots reserved by the backing store.
func (d *DictStack[K, V]) Cap() int { return cap(d.core.store.entries) }

// Peak returns the highest number of live pairs the stack has held.
func (d *DictStack[K, V]) Peak() int { return d.core.store.peak }

// Utilization returns Len/Cap, or 0 if nothing is reserved.
func (d *DictStack[K, V]) Utilization() float64 { return d.core.metrics().Utilization }

// Metrics returns a snapshot of stack statistics.
func (d *DictStack[K, V]) Metrics() StackMetrics { return d.core.metrics() }
