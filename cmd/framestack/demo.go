package main

import (
	"github.com/pavanmanishd/framestack"
	"github.com/pavanmanishd/framestack/internal/logger"
	"github.com/spf13/cobra"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	var dict bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through nested frames, dumping the stack after each push",
		Long: `The demo command pushes values onto the root frame, opens a frame, opens a
frame inside that one, and then unwinds, printing the stack after every push.

Example:
  framestack demo
  framestack demo --dict
  framestack demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts.printer(cmd), dict)
		},
	}
	cmd.Flags().BoolVar(&dict, "dict", false, "Use the key-indexed variant")
	return cmd
}

// demoStack adapts both variants to the walkthrough.
type demoStack interface {
	push(name string, n int) error
	scope(fn func() error) error
	String() string
	Metrics() framestack.StackMetrics
	Release() error
}

type valueDemo struct {
	*framestack.Stack[string]
}

func (d valueDemo) push(name string, _ int) error {
	_, err := d.Push(name)
	return err
}

func (d valueDemo) scope(fn func() error) error { return d.Scope(fn) }

type dictDemo struct {
	*framestack.DictStack[string, int]
}

func (d dictDemo) push(name string, n int) error {
	_, err := d.Push(name, n)
	return err
}

func (d dictDemo) scope(fn func() error) error { return d.Scope(fn) }

type demoPush struct {
	name string
	n    int
}

func runDemo(p *printer, dict bool) error {
	var s demoStack
	if dict {
		s = dictDemo{framestack.NewDictStack[string, int](framestack.WithLogger(logger.L))}
	} else {
		s = valueDemo{framestack.NewStack[string](framestack.WithLogger(logger.L))}
	}

	pushAll := func(items ...demoPush) error {
		for _, it := range items {
			if err := s.push(it.name, it.n); err != nil {
				return err
			}
			if !p.jsonOut && !p.quiet {
				p.dump(s.String())
				p.infof("\n")
			}
		}
		return nil
	}

	err := pushAll(demoPush{"I", 1}, demoPush{"II", 2}, demoPush{"III", 3})
	if err == nil {
		err = s.scope(func() error {
			if err := pushAll(demoPush{"a", 10}, demoPush{"b", 20}); err != nil {
				return err
			}
			err := s.scope(func() error {
				return pushAll(
					demoPush{"1", 100}, demoPush{"2", 200}, demoPush{"3", 300},
					demoPush{"4", 400}, demoPush{"5", 500},
				)
			})
			if err != nil {
				return err
			}
			return pushAll(demoPush{"c", 30})
		})
	}
	if err == nil {
		err = pushAll(demoPush{"IV", 4}, demoPush{"V", 5}, demoPush{"VI", 6})
	}
	if err != nil {
		s.Release()
		return err
	}

	m := s.Metrics()
	if err := s.Release(); err != nil {
		return err
	}
	if p.jsonOut {
		return p.printJSON(m)
	}
	p.resultf("peak of %d entries, %d reallocation(s)\n", m.Peak, m.Grows)
	return nil
}
