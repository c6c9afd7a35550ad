package board

import (
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/history"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/scoring"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/session"
)

// Board is the text shown by the TUI, updated from session events. Screens
// share one Board and read it when rendering.
type Board struct {
	Brief     string
	BriefTone scoring.Tone

	Status string

	// Speech is the last speech toggle label.
	Speech string

	Question    catalog.Question
	Meta        string
	HasQuestion bool

	Coach     string
	CoachTone scoring.Tone

	// Feedback is the last scored answer, kept for the keyword readout.
	Feedback    scoring.Feedback
	HasFeedback bool

	Notes []history.Entry

	clearInput bool
}

var _ session.Surface = (*Board)(nil)

// New returns a board with the initial prompts.
func New() *Board {
	return &Board{
		Brief:  "Pick a track to load its brief.",
		Status: "SESSION: idle.",
		Coach:  session.LineListening,
	}
}

// Show applies an event.
func (b *Board) Show(e session.Event) {
	switch e.Kind {
	case session.EventBrief:
		b.Brief, b.BriefTone = e.Text, e.Tone
	case session.EventStatus:
		b.Status = e.Text
	case session.EventQuestion:
		b.Question = e.Question
		b.Meta = e.Meta
		b.HasQuestion = true
		b.HasFeedback = false
	case session.EventCoach:
		b.Coach, b.CoachTone = e.Text, e.Tone
	case session.EventFeedback:
		b.Coach, b.CoachTone = e.Text, e.Tone
		b.Feedback = e.Feedback
		b.HasFeedback = true
	case session.EventClearInput:
		b.clearInput = true
	case session.EventHistory:
		b.Notes = e.History
	case session.EventSpeech:
		b.Speech = e.Text
	}
}

// TakeClear reports whether the answer input should be emptied, and
// resets the request.
func (b *Board) TakeClear() bool {
	c := b.clearInput
	b.clearInput = false
	return c
}
