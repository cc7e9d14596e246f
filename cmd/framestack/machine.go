package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pavanmanishd/framestack"
	"github.com/pavanmanishd/framestack/internal/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// machine executes script operations against one stack.
type machine struct {
	p       *printer
	values  *framestack.Stack[string]
	pairs   *framestack.DictStack[string, string]
	frames  []*framestack.Frame
	handles []framestack.Handle
}

func newMachine(p *printer, dict bool, opts ...framestack.Option) *machine {
	m := &machine{p: p}
	if dict {
		m.pairs = framestack.NewDictStack[string, string](opts...)
	} else {
		m.values = framestack.NewStack[string](opts...)
	}
	return m
}

func (m *machine) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		logger.L.Debug("exec", "line", line, "op", fields[0])
		if err := m.exec(fields[0], fields[1:]); err != nil {
			return fmt.Errorf("line %d: %s: %w", line, fields[0], err)
		}
	}
	return sc.Err()
}

// finish closes the frames the script left open, innermost first, and
// releases the stack.
func (m *machine) finish() error {
	var errs []error
	for i := len(m.frames) - 1; i >= 0; i-- {
		errs = append(errs, m.frames[i].Close())
	}
	m.frames = nil
	if m.pairs != nil {
		errs = append(errs, m.pairs.Release())
	} else {
		errs = append(errs, m.values.Release())
	}
	return errors.Join(errs...)
}

func (m *machine) exec(op string, args []string) error {
	switch op {
	case "open":
		return m.open()
	case "close":
		return m.close(args)
	case "push":
		return m.push(args)
	case "get":
		return m.get(args)
	case "lookup":
		return m.lookup(args)
	case "keys":
		return m.keys()
	case "dump":
		m.p.dump(m.stack().String())
		return nil
	case "stats":
		return m.stats()
	case "reset":
		if err := m.stack().Reset(); err != nil {
			return err
		}
		m.p.infof("reset\n")
		return nil
	default:
		return fmt.Errorf("unknown operation")
	}
}

// stack is the variant-independent surface used by several operations.
type stack interface {
	OpenFrame() *framestack.Frame
	Reset() error
	String() string
	Metrics() framestack.StackMetrics
}

func (m *machine) stack() stack {
	if m.pairs != nil {
		return m.pairs
	}
	return m.values
}

func (m *machine) open() error {
	f := m.stack().OpenFrame()
	m.frames = append(m.frames, f)
	m.p.infof("open frame %d\n", f.Depth())
	return nil
}

func (m *machine) close(args []string) error {
	if len(m.frames) == 0 {
		return fmt.Errorf("no open frame")
	}
	i := len(m.frames) - 1
	if len(args) > 0 {
		n, err := m.index(args[0], len(m.frames))
		if err != nil {
			return err
		}
		i = n
	}
	f := m.frames[i]
	if err := f.Close(); err != nil {
		return err
	}
	// Close only succeeds for the innermost frame.
	m.frames = m.frames[:i]
	m.p.infof("close frame %d\n", f.Depth())
	return nil
}

func (m *machine) push(args []string) error {
	var (
		h   framestack.Handle
		err error
	)
	if m.pairs != nil {
		if len(args) < 2 {
			return fmt.Errorf("usage: push <key> <value>")
		}
		h, err = m.pairs.Push(args[0], strings.Join(args[1:], " "))
	} else {
		if len(args) < 1 {
			return fmt.Errorf("usage: push <value>")
		}
		h, err = m.values.Push(strings.Join(args, " "))
	}
	if err != nil {
		return err
	}
	m.handles = append(m.handles, h)
	m.p.infof("#%d %v\n", len(m.handles)-1, h)
	return nil
}

func (m *machine) get(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <n>")
	}
	n, err := m.index(args[0], len(m.handles))
	if err != nil {
		return err
	}
	var v string
	if m.pairs != nil {
		v, err = m.pairs.Get(m.handles[n])
	} else {
		v, err = m.values.Get(m.handles[n])
	}
	if errors.Is(err, framestack.ErrStaleHandle) {
		m.p.resultf("#%d: %s\n", n, m.p.stale("stale"))
		return nil
	}
	if err != nil {
		return err
	}
	m.p.resultf("#%d: %s\n", n, v)
	return nil
}

func (m *machine) lookup(args []string) error {
	if m.pairs == nil {
		return fmt.Errorf("requires --dict")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: lookup <key>")
	}
	h, ok := m.pairs.Lookup(args[0])
	if !ok {
		m.p.resultf("%s: not found\n", args[0])
		return nil
	}
	v, err := m.pairs.Get(h)
	if err != nil {
		return err
	}
	m.handles = append(m.handles, h)
	m.p.resultf("%s = %s (#%d)\n", args[0], v, len(m.handles)-1)
	return nil
}

func (m *machine) keys() error {
	if m.pairs == nil {
		return fmt.Errorf("requires --dict")
	}
	keys := maps.Keys(m.pairs.Bindings())
	slices.Sort(keys)
	m.p.resultf("keys: %s\n", strings.Join(keys, " "))
	return nil
}

func (m *machine) stats() error {
	s := m.stack().Metrics()
	if m.p.jsonOut {
		return m.p.printJSON(s)
	}
	m.p.resultf("entries=%d capacity=%d depth=%d peak=%d grows=%d\n",
		s.Len, s.Capacity, s.Depth, s.Peak, s.Grows)
	return nil
}

func (m *machine) index(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %d out of range [0,%d)", i, n)
	}
	return i, nil
}
