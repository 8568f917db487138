package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/richinex/ticketcount/config"
	"github.com/richinex/ticketcount/counter"
	"github.com/richinex/ticketcount/internal/logging"
)

func runCount(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	if err := Count(context.Background(), args, &out, logging.Discard()); err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	return out.String()
}

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestCountScenario(t *testing.T) {
	path := writeLog(t, `{"status":"success"}{"status":"seat_conflict"}{"status":"success"}`)

	got := runCount(t, path, "3")
	want := `Occurrences of '"status":"success"': 2
Occurrences of '"status":"seat_conflict"': 1
Occurrences of '"error":"Error 1040: Too many connections"': 0
Total: 3,2,1,0
`
	if got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestCountEmptyFile(t *testing.T) {
	path := writeLog(t, "")

	got := runCount(t, path, "5000")
	if !strings.HasSuffix(got, "Total: 5000,0,0,0\n") {
		t.Errorf("expected zero totals, got %q", got)
	}
	if n := strings.Count(got, "\n"); n != 4 {
		t.Errorf("expected 4 lines, got %d", n)
	}
}

func TestCountReferenceEchoedVerbatim(t *testing.T) {
	path := writeLog(t, "")

	got := runCount(t, path, "not a number, really")
	if !strings.Contains(got, "Total: not a number, really,0,0,0\n") {
		t.Errorf("reference not echoed verbatim: %q", got)
	}
}

func TestCountUsage(t *testing.T) {
	cases := [][]string{
		nil,
		{"file.txt"},
		{"file.txt", "3", "extra"},
		{"a", "b", "c", "d"},
	}

	for _, args := range cases {
		got := runCount(t, args...)
		if got != UsageLine+"\n" {
			t.Errorf("args %q: expected usage line only, got %q", args, got)
		}
	}
}

func TestCountMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.log")

	got := runCount(t, path, "3")
	want := "Error: File '" + path + "' not found.\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCountDirectoryIsGenericError(t *testing.T) {
	dir := t.TempDir()

	got := runCount(t, dir, "3")
	if !strings.HasPrefix(got, "An error occurred: ") {
		t.Errorf("expected generic error line, got %q", got)
	}
	if strings.Contains(got, "Occurrences") || strings.Count(got, "\n") != 1 {
		t.Errorf("expected a single line with no partial output, got %q", got)
	}
}

func TestCountInvalidEncoding(t *testing.T) {
	path := writeLog(t, "{\"status\":\"success\"}\xfe")

	got := runCount(t, path, "1")
	if !strings.HasPrefix(got, "An error occurred: ") || !strings.Contains(got, "invalid UTF-8") {
		t.Errorf("expected decode failure line, got %q", got)
	}
}

func TestCountIdempotent(t *testing.T) {
	path := writeLog(t, strings.Repeat(`{"error":"Error 1040: Too many connections"}`+"\n", 4))

	first := runCount(t, path, "4")
	second := runCount(t, path, "4")
	if first != second {
		t.Errorf("outputs differ:\n%s\n%s", first, second)
	}
	if !strings.HasSuffix(first, "Total: 4,0,0,4\n") {
		t.Errorf("unexpected totals: %q", first)
	}
}

func TestFailureMessage(t *testing.T) {
	if got := FailureMessage("x.log", os.ErrNotExist); got != "Error: File 'x.log' not found." {
		t.Errorf("unexpected not-found message %q", got)
	}
	if got := FailureMessage("x.log", errors.New("boom")); got != "An error occurred: boom" {
		t.Errorf("unexpected generic message %q", got)
	}
}

func TestFormatReport(t *testing.T) {
	got := string(FormatReport([]counter.Tally{
		{Pattern: "a", Count: 1},
		{Pattern: "b", Count: 0},
	}, "7"))
	want := "Occurrences of 'a': 1\nOccurrences of 'b': 0\nTotal: 7,1,0\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestCountWriteFailure(t *testing.T) {
	path := writeLog(t, "")

	err := Count(context.Background(), []string{path, "1"}, failingWriter{}, logging.Discard())
	if err == nil {
		t.Error("expected write error to be returned")
	}
}

func TestCountLogsLoadedSize(t *testing.T) {
	path := writeLog(t, `{"status":"success"}`)

	cfg := config.Default().Log
	cfg.Level = slog.LevelDebug
	var logs, out bytes.Buffer
	if err := Count(context.Background(), []string{path, "1"}, &out, logging.New(&logs, cfg)); err != nil {
		t.Fatalf("Count returned error: %v", err)
	}

	if !strings.Contains(logs.String(), "bytes=20") {
		t.Errorf("expected loaded byte size in debug log, got %q", logs.String())
	}
	if strings.Contains(out.String(), "bytes=") {
		t.Errorf("diagnostics leaked to standard output: %q", out.String())
	}
}
