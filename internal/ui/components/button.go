package components

import (
	"strings"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/theme"
)

// Button is a labelled shortcut shown in a toolbar.
type Button struct {
	Label  string
	Key    string
	Active bool
}

// Toolbar renders buttons on one line separated by a space. Inactive
// buttons are dimmed rather than hidden so the layout does not jump.
func Toolbar(buttons []Button) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		if b.Active {
			parts = append(parts, theme.Selected.Render(b.Label)+" "+theme.Hint.Render(b.Key))
		} else {
			parts = append(parts, theme.Hint.Render(b.Label+" "+b.Key))
		}
	}
	return strings.Join(parts, "   ")
}
