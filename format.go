package framestack

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// dump writes the frames outermost first and, within each frame, its entries
// in insertion order. line renders one entry.
func (c *core[E]) dump(w io.Writer, line func(e *E) string) error {
	bw := bufio.NewWriter(w)
	if c.released {
		fmt.Fprintln(bw, "released")
		return bw.Flush()
	}
	n := c.store.len()
	for depth := 0; depth <= c.ledger.top(); depth++ {
		start, end := c.ledger.bounds(depth, n)
		fmt.Fprintf(bw, "frame %d (%d entries)\n", depth, end-start)
		for slot := start; slot < end; slot++ {
			fmt.Fprintf(bw, "  [%d] %s\n", slot, line(c.store.at(slot)))
		}
	}
	fmt.Fprintf(bw, "%d entries in %d frame(s), capacity %d\n", n, c.ledger.top()+1, cap(c.store.entries))
	return bw.Flush()
}

func (c *core[E]) string(line func(e *E) string) string {
	var sb strings.Builder
	_ = c.dump(&sb, line)
	return sb.String()
}

func (e *valueEntry[V]) line() string {
	return fmt.Sprint(e.val)
}

func (e *dictEntry[K, V]) line() string {
	return fmt.Sprintf("%v = %v", e.key, e.val)
}

// Dump writes a human-readable listing of every open frame and its values.
func (s *Stack[V]) Dump(w io.Writer) error {
	return s.core.dump(w, (*valueEntry[V]).line)
}

// String returns the Dump output.
func (s *Stack[V]) String() string {
	return s.core.string((*valueEntry[V]).line)
}

// Dump writes a human-readable listing of every open frame and its pairs.
func (d *DictStack[K, V]) Dump(w io.Writer) error {
	return d.core.dump(w, (*dictEntry[K, V]).line)
}

// String returns the Dump output.
func (d *DictStack[K, V]) String() string {
	return d.core.string((*dictEntry[K, V]).line)
}
