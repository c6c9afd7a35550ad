package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/scoring"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/theme"
)

// AnswerEditor wraps bubbles/textarea for free-text answers and shows how
// close the answer is to the minimum scored length.
type AnswerEditor struct {
	Model textarea.Model
}

// NewAnswerEditor creates a focused, multi-line answer editor.
func NewAnswerEditor(placeholder string) AnswerEditor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = "│ "
	ta.CharLimit = 4000
	ta.SetHeight(6)
	ta.Focus()
	return AnswerEditor{Model: ta}
}

// Init returns the initial command.
func (a AnswerEditor) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (a AnswerEditor) Update(msg tea.Msg) (AnswerEditor, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// SetSize resizes the editor to fit width x height cells.
func (a *AnswerEditor) SetSize(width, height int) {
	a.Model.SetWidth(width)
	a.Model.SetHeight(height)
}

// View renders the editor and the length meter under it.
func (a AnswerEditor) View() string {
	return a.Model.View() + "\n" + LengthMeter(a.Length(), a.Model.Width())
}

func (a AnswerEditor) Value() string {
	return a.Model.Value()
}

// Length is the trimmed length of the answer in characters, the same
// measure the scorer gates on.
func (a AnswerEditor) Length() int {
	return utf8.RuneCountInString(strings.TrimSpace(a.Model.Value()))
}

// Reset empties the editor.
func (a *AnswerEditor) Reset() {
	a.Model.Reset()
}

// LengthMeter renders a bar that fills as n approaches the minimum answer
// length and turns green once it is reached.
func LengthMeter(n, width int) string {
	label := fmt.Sprintf(" %d/%d", n, scoring.MinAnswerLength)
	barWidth := width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * n / scoring.MinAnswerLength
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	fill := theme.Primary
	if n >= scoring.MinAnswerLength {
		fill = theme.Success
	}

	return lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty)) +
		theme.Hint.Render(label)
}
