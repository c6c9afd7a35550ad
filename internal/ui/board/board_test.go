package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/history"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/scoring"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/session"
)

func TestShow(t *testing.T) {
	b := New()
	assert.Equal(t, session.LineListening, b.Coach)

	b.Show(session.Event{Kind: session.EventBrief, Text: "brief"})
	b.Show(session.Event{Kind: session.EventStatus, Text: "SESSION: X — live."})
	b.Show(session.Event{
		Kind:     session.EventQuestion,
		Question: catalog.Question{ID: "x-1", Title: "T", Prompt: "P"},
		Meta:     "X · Question ID: X-1",
	})

	assert.Equal(t, "brief", b.Brief)
	assert.Equal(t, "SESSION: X — live.", b.Status)
	assert.True(t, b.HasQuestion)
	assert.Equal(t, "P", b.Question.Prompt)
	assert.Equal(t, "X · Question ID: X-1", b.Meta)

	fb := scoring.Feedback{Tone: scoring.ToneMedium, Hits: 2, Total: 5}
	b.Show(session.Event{Kind: session.EventFeedback, Text: "Coach: ok", Tone: fb.Tone, Feedback: fb})
	assert.Equal(t, "Coach: ok", b.Coach)
	assert.Equal(t, scoring.ToneMedium, b.CoachTone)
	assert.True(t, b.HasFeedback)

	// A new question hides stale feedback.
	b.Show(session.Event{Kind: session.EventQuestion, Question: catalog.Question{ID: "x-2"}})
	assert.False(t, b.HasFeedback)

	b.Show(session.Event{Kind: session.EventHistory, History: []history.Entry{{QuestionTitle: "T"}}})
	assert.Len(t, b.Notes, 1)
}

func TestTakeClear(t *testing.T) {
	b := New()
	assert.False(t, b.TakeClear())

	b.Show(session.Event{Kind: session.EventClearInput})
	assert.True(t, b.TakeClear())
	assert.False(t, b.TakeClear())
}

func TestSessionLineSurvivesSpeechToggle(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	b := New()
	ctrl, err := session.New(session.Options{Catalog: cat, Surface: b})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, ctrl.StartTrack(ctx, "privacy"))
	assert.Equal(t, "SESSION: Privacy & PIAs — live.", b.Status)

	ctrl.ToggleSpeech(ctx)
	assert.Equal(t, "SESSION: Privacy & PIAs — live.", b.Status)
	assert.Equal(t, session.LineTTSMissing, b.Speech)
}
