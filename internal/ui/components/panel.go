package components

import (
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/theme"
)

// MaxContentWidth caps panel width so prompts stay readable on wide
// terminals.
const MaxContentWidth = 100

// ContentWidth returns the uniform outer width used for stacked panels.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 4
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Panel renders body in a bordered card of the given outer width, with
// an optional title line. A focused panel gets the accent border.
func Panel(title, body string, width int, focused bool) string {
	style := theme.Card
	if focused {
		style = theme.FocusedCard
	}
	content := body
	if title != "" {
		content = theme.Label.Render(title) + "\n" + body
	}
	return style.Width(width).Render(content)
}
