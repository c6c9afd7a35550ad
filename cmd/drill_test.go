package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/clipboard"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/config"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/scoring"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/selector"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/session"
)

func newTestREPL(t *testing.T) (*repl, *bytes.Buffer) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	var out bytes.Buffer
	ctrl, err := session.New(session.Options{
		Catalog:  cat,
		Selector: selector.NewSeeded(7),
		Surface:  linePrinter{w: &out},
	})
	require.NoError(t, err)
	return &repl{ctrl: ctrl, catalog: cat, out: &out}, &out
}

func TestREPLAnswerAndNotes(t *testing.T) {
	r, out := newTestREPL(t)
	ctx := context.Background()

	r.startTrack(ctx, "privacy")
	assert.Contains(t, out.String(), "[SESSION: Privacy & PIAs — live.]")
	assert.Contains(t, out.String(), "Question ID: PRIVACY-")

	in := strings.NewReader("too short\n:notes\n:quit\nnever read\n")
	require.NoError(t, r.run(ctx, in))

	got := out.String()
	assert.Contains(t, got, "✗ Coach: "+scoring.MsgShort)
	assert.Contains(t, got, "[Privacy & PIAs]")
	assert.Contains(t, got, "  too short")
	assert.Equal(t, 1, r.ctrl.State().Notes)
}

func TestREPLWithoutTrack(t *testing.T) {
	r, out := newTestREPL(t)

	in := strings.NewReader(":next\nan answer\n:replay\n:notes\n:copy\n")
	require.NoError(t, r.run(context.Background(), in))

	got := out.String()
	assert.Contains(t, got, "✗ "+session.LineChooseTrack)
	assert.Contains(t, got, "✗ "+session.LineNoQuestion)
	assert.Contains(t, got, session.NotesPlaceholder)
	assert.Contains(t, got, "✗ "+session.LineNoNotes)
	assert.NotContains(t, got, "error:")
}

func TestREPLUnknownTrackSuggests(t *testing.T) {
	r, out := newTestREPL(t)
	r.startTrack(context.Background(), "priv")

	assert.Contains(t, out.String(), `No track "priv". Did you mean: privacy?`)
	assert.False(t, r.ctrl.State().HasTrack())
}

func TestREPLUnknownCommand(t *testing.T) {
	r, out := newTestREPL(t)
	require.NoError(t, r.run(context.Background(), strings.NewReader(":dance\n")))
	assert.Contains(t, out.String(), "unknown command :dance")
}

func TestREPLToggleSpeechWithoutBackend(t *testing.T) {
	r, out := newTestREPL(t)
	require.NoError(t, r.run(context.Background(), strings.NewReader(":tts\n")))
	assert.Contains(t, out.String(), "["+session.LineTTSMissing+"]")
}

func TestPrintTracks(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	var short, long bytes.Buffer
	printTracks(&short, cat, false)
	printTracks(&long, cat, true)

	assert.Contains(t, short.String(), "Privacy & PIAs (3 questions)")
	assert.Contains(t, short.String(), "5 tracks, 15 questions")
	assert.NotContains(t, short.String(), "keys:")
	assert.Contains(t, long.String(), "keys: privacy, pia, consent")
}

func TestNewSelector(t *testing.T) {
	_, ok := newSelector(config.Config{NoRepeat: true}).(*selector.NoRepeat)
	assert.True(t, ok)
	_, ok = newSelector(config.Config{Seed: 3}).(*selector.Random)
	assert.True(t, ok)
}

func TestNewClipboardAppendsExportFile(t *testing.T) {
	sink := newClipboard(config.Config{ExportFile: "notes.txt"})
	multi, ok := sink.(clipboard.Multi)
	require.True(t, ok)
	require.Len(t, multi, 2)
	assert.Equal(t, clipboard.File{Path: "notes.txt"}, multi[1])
}

func TestREPLScoresAnswerLongerThanScannerLimit(t *testing.T) {
	r, out := newTestREPL(t)
	ctx := context.Background()
	r.startTrack(ctx, "privacy")

	answer := strings.Repeat("consent ", 9000)
	require.Greater(t, len(answer), 64*1024)

	in := strings.NewReader(answer + "\n:notes\n")
	require.NoError(t, r.run(ctx, in))

	assert.Equal(t, 1, r.ctrl.State().Notes)
	assert.Contains(t, out.String(), "consent c...")
}

func TestREPLLastLineWithoutNewline(t *testing.T) {
	r, _ := newTestREPL(t)
	ctx := context.Background()
	r.startTrack(ctx, "privacy")

	require.NoError(t, r.run(ctx, strings.NewReader("final answer")))
	assert.Equal(t, 1, r.ctrl.State().Notes)
}

func TestDrillCommandReadsCommandInput(t *testing.T) {
	t.Setenv("ETHICSCOACH_TELEMETRY", "off")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("a short answer\n:notes\n:quit\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"drill", "privacy", "--log-dir", t.TempDir(), "--no-tts"})
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	got := out.String()
	assert.Contains(t, got, "[SESSION: Privacy & PIAs — live.]")
	assert.Contains(t, got, "✗ Coach: "+scoring.MsgShort)
	assert.Contains(t, got, "  a short answer")
}
