// Package counter counts reservation status markers in backend log files.
//
// Information Hiding:
// - Pattern set fixed at compile time
// - File loading and encoding checks hidden behind Load
// - Matching strategy hidden behind Occurrences

package counter

import (
	"strings"
)

// Status markers written by the reservation backend.
const (
	PatternSuccess            = `"status":"success"`
	PatternSeatConflict       = `"status":"seat_conflict"`
	PatternTooManyConnections = `"error":"Error 1040: Too many connections"`
)

// patterns is the report order.
var patterns = [...]string{
	PatternSuccess,
	PatternSeatConflict,
	PatternTooManyConnections,
}

// Patterns returns the fixed markers in report order.
func Patterns() []string {
	out := make([]string, len(patterns))
	copy(out, patterns[:])
	return out
}

// Tally is the number of occurrences of one pattern.
type Tally struct {
	Pattern string
	Count   int
}

// Occurrences returns the number of non-overlapping occurrences of pattern in
// content, scanning left to right. Scanning resumes right after each match,
// so characters consumed by one match are never part of another.
// An empty pattern never matches.
func Occurrences(content, pattern string) int {
	if pattern == "" {
		return 0
	}
	return strings.Count(content, pattern)
}

// Count tallies every fixed pattern in content.
func Count(content string) []Tally {
	tallies := make([]Tally, 0, len(patterns))
	for _, p := range patterns {
		tallies = append(tallies, Tally{Pattern: p, Count: Occurrences(content, p)})
	}
	return tallies
}
