package history

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	// Capacity is the maximum number of entries kept in a Log.
	Capacity = 12

	// SummaryLimit is the longest summary kept verbatim.
	SummaryLimit = 140

	// Placeholder stands in for an empty answer.
	Placeholder = "No answer recorded."

	ellipsis = "..."
)

// ErrEmptyHistory is returned by Export when there is nothing to export.
var ErrEmptyHistory = errors.New("history is empty")

// Entry is one submitted answer as recorded in the log.
type Entry struct {
	TrackLabel    string
	QuestionTitle string
	Summary       string
}

// Log is a bounded, insertion-ordered list of entries. The zero value is
// ready to use.
type Log struct {
	entries []Entry
}

// Append adds e to the end of the log, evicting the oldest entry once the
// log exceeds Capacity.
func (l *Log) Append(e Entry) {
	l.entries = append(l.entries, e)
	if len(l.entries) > Capacity {
		// Shift down in place so the backing array never grows past Capacity+1.
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:Capacity]
	}
}

func (l *Log) Len() int { return len(l.entries) }

// Entries returns a copy of the log in insertion order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// View returns a copy of the log with the most recent entry first.
func (l *Log) View() []Entry {
	return lo.Reverse(l.Entries())
}

// Export renders the log as plain text in insertion order. Each entry is
// numbered by its position in that order, starting at 1.
func (l *Log) Export() (string, error) {
	if len(l.entries) == 0 {
		return "", ErrEmptyHistory
	}

	blocks := lo.Map(l.entries, func(e Entry, i int) string {
		return fmt.Sprintf("#%d [%s] %s\n%s\n", i+1, e.TrackLabel, e.QuestionTitle, e.Summary)
	})
	return strings.Join(blocks, "\n"), nil
}

// Summarize shortens a raw answer for storage in an Entry. Lengths are
// counted in characters, not bytes.
func Summarize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Placeholder
	}
	if utf8.RuneCountInString(trimmed) <= SummaryLimit {
		return trimmed
	}
	runes := []rune(trimmed)
	return string(runes[:SummaryLimit-len(ellipsis)]) + ellipsis
}
