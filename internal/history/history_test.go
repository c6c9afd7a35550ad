package history

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(i int) Entry {
	return Entry{
		TrackLabel:    "Track",
		QuestionTitle: fmt.Sprintf("Q%d", i),
		Summary:       fmt.Sprintf("answer %d", i),
	}
}

func titles(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.QuestionTitle
	}
	return out
}

func TestAppendEvictsOldest(t *testing.T) {
	var l Log
	for i := 1; i <= 13; i++ {
		l.Append(entry(i))
	}

	require.Equal(t, Capacity, l.Len())
	got := titles(l.Entries())
	assert.Equal(t, "Q2", got[0])
	assert.Equal(t, "Q13", got[11])
	for i, title := range got {
		assert.Equal(t, fmt.Sprintf("Q%d", i+2), title)
	}
}

func TestAppendManyStaysBounded(t *testing.T) {
	var l Log
	for i := 1; i <= 100; i++ {
		l.Append(entry(i))
		assert.LessOrEqual(t, l.Len(), Capacity)
	}
	assert.Equal(t, "Q89", l.Entries()[0].QuestionTitle)
}

func TestViewIsMostRecentFirst(t *testing.T) {
	var l Log
	for i := 1; i <= 3; i++ {
		l.Append(entry(i))
	}

	assert.Equal(t, []string{"Q3", "Q2", "Q1"}, titles(l.View()))
	// View does not disturb the log.
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, titles(l.Entries()))
}

func TestEntriesReturnsCopy(t *testing.T) {
	var l Log
	l.Append(entry(1))
	got := l.Entries()
	got[0].Summary = "mutated"
	assert.Equal(t, "answer 1", l.Entries()[0].Summary)
}

func TestExport(t *testing.T) {
	var l Log
	l.Append(Entry{TrackLabel: "Privacy & PIAs", QuestionTitle: "PIA Under Pressure", Summary: "first"})
	l.Append(Entry{TrackLabel: "Bias & Fairness", QuestionTitle: "Metric Trade-Off", Summary: "second"})

	out, err := l.Export()
	require.NoError(t, err)

	want := "#1 [Privacy & PIAs] PIA Under Pressure\nfirst\n" +
		"\n" +
		"#2 [Bias & Fairness] Metric Trade-Off\nsecond\n"
	assert.Equal(t, want, out)
}

func TestExportNumbersFollowRetainedOrder(t *testing.T) {
	var l Log
	for i := 1; i <= 14; i++ {
		l.Append(entry(i))
	}
	out, err := l.Export()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "#1 [Track] Q3\n"))
	assert.Contains(t, out, "#12 [Track] Q14\n")
	assert.NotContains(t, out, "#13")
}

func TestExportEmpty(t *testing.T) {
	var l Log
	_, err := l.Export()
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantLen int
	}{
		{name: "empty", in: "", want: Placeholder},
		{name: "whitespace", in: " \n\t ", want: Placeholder},
		{name: "short", in: "  keep me  ", want: "keep me"},
		{name: "exactly 140", in: strings.Repeat("x", 140), want: strings.Repeat("x", 140)},
		{name: "141", in: strings.Repeat("x", 141), want: strings.Repeat("x", 137) + "..."},
		{name: "200", in: strings.Repeat("y", 200), wantLen: 140},
		{name: "multibyte", in: strings.Repeat("é", 150), want: strings.Repeat("é", 137) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.in)
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
			if tt.wantLen != 0 {
				assert.Equal(t, tt.wantLen, utf8.RuneCountInString(got))
				assert.True(t, strings.HasSuffix(got, "..."))
			}
		})
	}
}
