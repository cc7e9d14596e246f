package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pavanmanishd/framestack/internal/logger"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootOptions holds the global flags.
type rootOptions struct {
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	logJSON bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "framestack",
		Short: "Drive frame-scoped stack allocators from the command line",
		Long: `framestack pushes values onto nested frames and pops whole frames at once.
It can replay a walkthrough of nested scopes or execute a script of
open/push/close operations, printing the stack as it goes.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logger.Options{
				Enabled: opts.verbose || opts.logJSON,
				JSON:    opts.logJSON,
				Level:   slog.LevelDebug,
				Writer:  cmd.ErrOrStderr(),
			})
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log allocator events to stderr")
	cmd.PersistentFlags().
		BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all output except results and errors")
	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Output metrics in JSON format")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Log allocator events as JSON")

	cmd.AddCommand(newDemoCmd(opts), newRunCmd(opts), newVersionCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printer writes command output according to the global flags.
type printer struct {
	out     io.Writer
	quiet   bool
	jsonOut bool
	color   bool
}

func (o *rootOptions) printer(cmd *cobra.Command) *printer {
	return &printer{
		out:     cmd.OutOrStdout(),
		quiet:   o.quiet,
		jsonOut: o.jsonOut,
		color:   !o.noColor,
	}
}

// infof prints an info message if not in quiet mode
func (p *printer) infof(format string, args ...any) {
	if !p.quiet {
		fmt.Fprintf(p.out, format, args...)
	}
}

// resultf prints a result regardless of quiet mode
func (p *printer) resultf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// dump prints a stack listing
func (p *printer) dump(listing string) {
	if p.color {
		listing = styleDump(listing)
	}
	fmt.Fprint(p.out, listing)
}

// printJSON outputs data as JSON
func (p *printer) printJSON(v any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
