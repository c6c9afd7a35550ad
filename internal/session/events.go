package session

import (
	"strings"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/history"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/scoring"
)

// EventKind identifies which part of the surface an Event updates.
type EventKind int

const (
	EventBrief      EventKind = iota // Track brief, or a prompt to choose a track
	EventStatus                      // Session status line
	EventQuestion                    // A new question was loaded
	EventCoach                       // A coach line in the feedback area
	EventFeedback                    // Scored feedback for a submitted answer
	EventClearInput                  // The answer input should be emptied
	EventHistory                     // The notes list changed
	EventSpeech                      // Speech output was switched on or off
)

func (k EventKind) String() string {
	switch k {
	case EventBrief:
		return "brief"
	case EventStatus:
		return "status"
	case EventQuestion:
		return "question"
	case EventCoach:
		return "coach"
	case EventFeedback:
		return "feedback"
	case EventClearInput:
		return "clear-input"
	case EventHistory:
		return "history"
	case EventSpeech:
		return "speech"
	default:
		return "unknown"
	}
}

// Event is one update pushed to the Surface.
type Event struct {
	Kind EventKind
	Text string

	// Tone is set on coach and feedback events. Empty means neutral.
	Tone scoring.Tone

	// Meta is the question meta line for EventQuestion.
	Meta     string
	Question catalog.Question

	Feedback scoring.Feedback

	// History is the notes view, most recent first, for EventHistory.
	History []history.Entry
}

// Surface renders events. Implementations must not call back into the
// Controller from Show.
type Surface interface {
	Show(Event)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(Event)

func (f SurfaceFunc) Show(e Event) { f(e) }

type discardSurface struct{}

func (discardSurface) Show(Event) {}

// Coach lines shown on the surface.
const (
	CoachIntro = "I am the AI Ethics Coach for Flame Division Academy. " +
		"I’m not here to scare you — I’m here to keep your systems from quietly harming people. " +
		"Answer like you’re in front of an ethics board that actually has veto power. " +
		"No buzzword clouds, no ‘move fast and break things’."

	LineListening     = "Coach: Listening. Pick a track and start your first drill."
	LineTrackLoaded   = "Coach: Track loaded. Read the question, then answer like this decision will show up in an audit later."
	LineNewAngle      = "Coach: New angle, same pressure. Answer this one from the ground up, not by reusing your last answer."
	LineCleared       = "Answer cleared. Breathe. Then write what you would actually stand behind in the field."
	LineChooseTrack   = "Choose a track first. Ethics without focus is just noise."
	LineNoQuestion    = "Pick a track and load a question first. Ethics without a concrete scenario is just philosophy."
	LineNoNotes       = "No notes to copy yet. Answer at least one question first."
	LineNotesCopied   = "Coach: Notes copied. Paste them into your journal, syllabus reflection, or governance doc."
	LineClipBlocked   = "Clipboard blocked. Select the notes manually if you want to save them."
	LineTTSOn         = "TTS: ON"
	LineTTSOff        = "TTS: OFF"
	LineTTSMissing    = "TTS not available"
	NotesPlaceholder  = "No notes yet. Answer a question to start building your ethics trail."
	firstQuestionJoin = " Here is your first question. "
)

// StatusLine is the session status shown once a track is live.
func StatusLine(t catalog.Track) string {
	return "SESSION: " + t.Label + " — live."
}

// MetaLine describes where a question comes from.
func MetaLine(t catalog.Track, q catalog.Question) string {
	return t.Label + " · Question ID: " + strings.ToUpper(q.ID)
}

// SpeechLabel describes the speech state for toggles and headers.
func SpeechLabel(available, enabled bool) string {
	switch {
	case !available:
		return LineTTSMissing
	case enabled:
		return LineTTSOn
	default:
		return LineTTSOff
	}
}
