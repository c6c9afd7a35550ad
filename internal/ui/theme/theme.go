package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/scoring"
)

// Color palette: boardroom dark with a flame accent.
var (
	Primary   = lipgloss.Color("#F97316") // Flame orange
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#FACC15") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#020617") // Near black
	BgCard    = lipgloss.Color("#111827") // Charcoal
	Border    = lipgloss.Color("#374151") // Gray
)

// Typography
var (
	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Tag = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Secondary).
		Padding(0, 1)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	FocusedCard = Card.
			BorderForeground(Primary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Solid = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Medium = lipgloss.NewStyle().
		Foreground(Warning)

	Weak = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// ForTone returns the style used for feedback of the given tone. The empty
// tone is neutral body text.
func ForTone(t scoring.Tone) lipgloss.Style {
	switch t {
	case scoring.ToneSolid:
		return Solid
	case scoring.ToneMedium:
		return Medium
	case scoring.ToneWeak:
		return Weak
	default:
		return Body
	}
}
