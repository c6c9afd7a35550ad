package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
)

// Tone is the coarse classification attached to feedback.
type Tone string

const (
	ToneWeak   Tone = "weak"
	ToneMedium Tone = "medium"
	ToneSolid  Tone = "solid"
)

// MinAnswerLength is the trimmed length (in characters) below which an
// answer is rejected as too short to be substantive.
const MinAnswerLength = 80

// Density thresholds, expressed as fractions so comparisons stay exact.
const (
	solidNum, solidDen   = 3, 5  // 0.6
	mediumNum, mediumDen = 3, 10 // 0.3
)

// Feedback messages. The wording is part of the coach's contract.
const (
	MsgBlank = "You submitted a blank answer. In a real governance review that looks like avoidance, not humility."
	MsgShort = "This is tweet-length, not boardroom-length. Expand with concrete mechanisms, not slogans."
	MsgSolid = "You’re hitting the right levers — you mentioned core ethics signals for this scenario. " +
		"Now tighten it by naming explicit owners, thresholds, and what gets logged when things go wrong."
	MsgMedium = "You’re in the neighborhood, but still vague. You touch some of the right concepts, yet I need " +
		"clearer controls: who is accountable, what metrics you track, and how people can challenge the system."
	MsgWeak = "You’re describing intentions more than structures. Talk less about ‘importance’ and more about " +
		"concrete tools, checks, and escalation paths you would implement."
)

// Feedback is the result of scoring one answer.
type Feedback struct {
	Tone Tone
	Text string

	// Keyword coverage. Zero for blank and short answers, which are
	// rejected before keywords are counted.
	Hits    int
	Total   int
	Matched []string
}

// Density returns the fraction of keywords found, or 0 when the question
// has no keywords.
func (f Feedback) Density() float64 {
	if f.Total == 0 {
		return 0
	}
	return float64(f.Hits) / float64(f.Total)
}

// Evaluate scores an answer against a question's keyword set.
//
// Rules, applied in order:
//   - blank after trimming: weak
//   - fewer than MinAnswerLength characters: weak
//   - keyword density >= 0.6: solid
//   - keyword density >= 0.3: medium
//   - otherwise: weak
//
// A keyword counts once if it occurs anywhere in the answer as a
// case-insensitive substring.
func Evaluate(q catalog.Question, rawAnswer string) Feedback {
	trimmed := strings.TrimSpace(rawAnswer)
	if trimmed == "" {
		return Feedback{Tone: ToneWeak, Text: MsgBlank}
	}
	if utf8.RuneCountInString(trimmed) < MinAnswerLength {
		return Feedback{Tone: ToneWeak, Text: MsgShort}
	}

	lower := strings.ToLower(trimmed)
	matched := lo.Filter(q.Keys, func(k string, _ int) bool {
		return strings.Contains(lower, strings.ToLower(k))
	})

	fb := Feedback{
		Hits:    len(matched),
		Total:   len(q.Keys),
		Matched: matched,
	}

	switch {
	case fb.Total > 0 && fb.Hits*solidDen >= fb.Total*solidNum:
		fb.Tone, fb.Text = ToneSolid, MsgSolid
	case fb.Total > 0 && fb.Hits*mediumDen >= fb.Total*mediumNum:
		fb.Tone, fb.Text = ToneMedium, MsgMedium
	default:
		fb.Tone, fb.Text = ToneWeak, MsgWeak
	}
	return fb
}
