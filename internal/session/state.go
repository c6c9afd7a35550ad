package session

import (
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
)

// Phase represents where the session is in the drill loop.
type Phase int

const (
	PhaseIdle           Phase = iota // No track selected
	PhaseTrackActive                 // Track selected, question not yet drawn
	PhaseQuestionActive              // A question is loaded and awaits an answer
	PhaseAnswered                    // Feedback produced for the current question
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTrackActive:
		return "track-active"
	case PhaseQuestionActive:
		return "question-active"
	case PhaseAnswered:
		return "answered"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of a Controller.
type State struct {
	Phase Phase

	// Track is the zero value until a track is started.
	Track catalog.Track

	// Question is nil unless Phase is PhaseQuestionActive or PhaseAnswered.
	Question *catalog.Question

	SpeechAvailable bool
	SpeechEnabled   bool

	// Notes is the number of history entries.
	Notes int
}

// HasTrack reports whether a track is selected.
func (s State) HasTrack() bool { return s.Track.ID != "" }

// HasQuestion reports whether a question is loaded.
func (s State) HasQuestion() bool { return s.Question != nil }
