// Command cash is the cash language's command-line entry point: a bare
// invocation starts the interactive REPL; passed a file, it interprets
// the file, prints its final value unless none, and then enters the
// REPL against the same root context. The --pool flag selects the
// worker pool backend async/await jobs run on.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/cash/internal/runtime"
	"github.com/conneroisu/cash/internal/value"
)

var (
	verbose bool
	pool    string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cash [file]",
		Short:         "cash - a small dynamically-typed shell scripting language",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&pool, "pool", "workerpool", `worker pool backend for async/await jobs: "workerpool" or "ants"`)
	cmd.AddCommand(newRunCmd())
	return cmd
}

// newRunCmd offers "cash run <file>" as a cobra-idiomatic alternative to
// the bare positional-argument form, for scripts that prefer an explicit
// subcommand.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "interpret a cash file, then enter the REPL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(args []string) error {
	log := newLogger()

	if len(args) == 1 {
		if _, err := os.Stat(args[0]); err != nil {
			return fmt.Errorf("cash: %w", err)
		}
	}

	rt, err := runtime.NewWithPool(log, pool)
	if err != nil {
		return fmt.Errorf("cash: %w", err)
	}
	defer rt.Close()

	if len(args) == 1 {
		v, err := rt.RunFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else if _, isNone := v.(value.None); !isNone {
			fmt.Println(v.String())
		}
	}

	return rt.REPL(os.Stdin, os.Stdout)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
