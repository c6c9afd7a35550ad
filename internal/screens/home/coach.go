package home

import (
	"charm.land/lipgloss/v2"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/scoring"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/theme"
)

const coachIdle = `┌─────┐
│ ◉ ◉ │
│  ─  │
│ ⚖   │
└─────┘`

const coachApproving = `┌─────┐
│ ◉ ◉ │
│  ◡  │
│ ⚖ ✓ │
└─────┘`

const coachStern = `┌─────┐
│ ◉ ◉ │ !
│  ︵ │
│ ⚖   │
└─────┘`

// RenderCoach returns the coach figure for the tone of the last feedback.
func RenderCoach(tone scoring.Tone) string {
	art, fg := coachIdle, theme.Primary
	switch tone {
	case scoring.ToneSolid:
		art, fg = coachApproving, theme.Success
	case scoring.ToneWeak:
		art, fg = coachStern, theme.Error
	case scoring.ToneMedium:
		fg = theme.Warning
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
