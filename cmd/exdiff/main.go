// Package main provides the CLI entry point for exdiff.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	exitOK          = 0
	exitError       = 1
	exitDifferences = 2
)

// errDifferences is returned by compare --fail-on-diff when the workbooks differ.
var errDifferences = errors.New("workbooks differ")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	rootCmd := newRootCmd(out, errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errDifferences):
		return exitDifferences
	default:
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitError
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exdiff",
		Short: "Compare Excel workbooks cell by cell",
		Long: `exdiff reads the formulas and cached values of .xlsx workbooks
and reports which sheets and cells differ between two of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().String("config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log per-sheet progress")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")

	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newDumpCmd())

	return rootCmd
}
