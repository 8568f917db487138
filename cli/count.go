// Command execution for the count command.
//
// Information Hiding:
// - Argument checking hidden
// - Failure classification hidden
// - Output formatting hidden

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/richinex/ticketcount/counter"
)

// UsageLine is printed when the argument count is wrong.
const UsageLine = "Usage: python count.py <file_name> <count>"

// Count runs one counting invocation: args are the positional arguments
// after the program name, expected to be <file_name> <count>.
//
// Usage and file failures are reported on out and are not errors.
// The returned error is non-nil only when writing to out fails.
func Count(ctx context.Context, args []string, out io.Writer, logger *slog.Logger) error {
	if len(args) != 2 {
		logger.DebugContext(ctx, "wrong argument count", "got", len(args), "want", 2)
		return writeLine(out, UsageLine)
	}

	fileName, reference := args[0], args[1]

	content, err := counter.Load(fileName)
	if err != nil {
		logger.InfoContext(ctx, "count failed", "file", fileName, "err", err)
		return writeLine(out, FailureMessage(fileName, err))
	}
	logger.DebugContext(ctx, "file loaded", "file", fileName, "bytes", len(content))

	tallies := counter.Count(content)

	for _, t := range tallies {
		logger.DebugContext(ctx, "tally", "pattern", t.Pattern, "count", t.Count)
	}
	logger.InfoContext(ctx, "count finished", "file", fileName, "reference", reference)

	_, err = out.Write(FormatReport(tallies, reference))
	return err
}

// FailureMessage renders the single line reported for a failed count.
func FailureMessage(fileName string, err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Sprintf("Error: File '%s' not found.", fileName)
	}
	return fmt.Sprintf("An error occurred: %v", err)
}

// FormatReport renders one occurrence line per tally, followed by the
// Total line: reference first, then the counts in tally order.
func FormatReport(tallies []counter.Tally, reference string) []byte {
	var buf bytes.Buffer
	for _, t := range tallies {
		fmt.Fprintf(&buf, "Occurrences of '%s': %d\n", t.Pattern, t.Count)
	}

	buf.WriteString("Total: ")
	buf.WriteString(reference)
	for _, t := range tallies {
		fmt.Fprintf(&buf, ",%d", t.Count)
	}
	buf.WriteByte('\n')

	return buf.Bytes()
}

func writeLine(out io.Writer, line string) error {
	_, err := io.WriteString(out, line+"\n")
	return err
}
