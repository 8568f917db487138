// Package main provides the ticketcount CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/richinex/ticketcount/cli"
	"github.com/richinex/ticketcount/config"
	"github.com/richinex/ticketcount/counter"
	"github.com/richinex/ticketcount/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	settings, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		settings = config.Default()
	}

	logger := logging.New(os.Stderr, settings.Log).With("run", uuid.NewString())

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes one invocation with args (program name excluded).
// cobra routes a first argument of __complete or __completeNoDesc to its
// hidden shell completion command, so those are counted directly.
func run(args []string, out io.Writer, logger *slog.Logger) error {
	if len(args) > 0 && isCompletionRequest(args[0]) {
		return cli.Count(context.Background(), args, out, logger)
	}

	cmd := newRootCmd(logger)
	cmd.SetOut(out)
	cmd.SetArgs(append([]string{}, args...))
	return cmd.Execute()
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var markers strings.Builder
	for _, p := range counter.Patterns() {
		markers.WriteString("- " + p + "\n")
	}

	return &cobra.Command{
		Use:   "ticketcount <file_name> <count>",
		Short: "Count reservation status markers in a backend log file",
		Long: `Count the reservation status markers written by the ticketing backend.

Reports non-overlapping occurrences of:
` + markers.String() + `
The <count> argument is the expected total from the load tester and is
echoed first on the Total line for manual comparison.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Count(cmd.Context(), args, cmd.OutOrStdout(), logger)
		},
	}
}
