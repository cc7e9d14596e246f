package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pavanmanishd/framestack"
	"github.com/pavanmanishd/framestack/internal/logger"
	"github.com/spf13/cobra"
)

// runOptions holds the run command's flags.
type runOptions struct {
	dict       bool
	capacity   int
	maxEntries int
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	ro := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <script|->",
		Short: "Execute a script of frame operations",
		Long: `The run command executes one operation per line:

  open               open a frame
  close [n]          close the innermost frame, or the n-th open frame (0 = first opened)
  push <value>       push a value (value stack)
  push <key> <value> push a pair (--dict)
  get <n>            print the value behind the n-th handle issued
  lookup <key>       resolve a key, innermost frame first (--dict)
  keys               list visible keys (--dict)
  dump               print every open frame
  stats              print allocator metrics
  reset              empty the root frame

Blank lines and lines starting with # are ignored. Frames still open at the
end of the script are closed innermost first.

Example:
  framestack run ops.txt
  framestack run --dict - < ops.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, opts.printer(cmd), ro, args[0])
		},
	}
	cmd.Flags().BoolVar(&ro.dict, "dict", false, "Use the key-indexed variant")
	cmd.Flags().IntVar(&ro.capacity, "capacity", 0, "Initial entry capacity (0 = default)")
	cmd.Flags().IntVar(&ro.maxEntries, "max-entries", 0, "Maximum live entries (0 = unlimited)")
	return cmd
}

func runScript(cmd *cobra.Command, p *printer, ro *runOptions, path string) (err error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	m := newMachine(p, ro.dict,
		framestack.WithCapacity(ro.capacity),
		framestack.WithMaxEntries(ro.maxEntries),
		framestack.WithLogger(logger.L),
	)
	defer func() {
		if cerr := m.finish(); err == nil {
			err = cerr
		}
	}()
	return m.run(r)
}
