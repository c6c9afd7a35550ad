package notes

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/history"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/router"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/screen"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/session"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/board"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/components"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/layout"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/theme"
)

// NotesScreen lists recorded answers, most recent first, and can show the
// plain-text export that gets copied.
type NotesScreen struct {
	ctrl       *session.Controller
	board      *board.Board
	vp         viewport.Model
	showExport bool
}

var _ screen.Screen = (*NotesScreen)(nil)
var _ screen.KeyHintProvider = (*NotesScreen)(nil)

// New creates a NotesScreen.
func New(ctrl *session.Controller, b *board.Board) *NotesScreen {
	return &NotesScreen{
		ctrl:  ctrl,
		board: b,
		vp:    viewport.New(),
	}
}

func (s *NotesScreen) Init() tea.Cmd {
	return nil
}

func (s *NotesScreen) Title() string {
	return "Ethics notes"
}

func (s *NotesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "e", Description: "Export view"},
		{Key: "c", Description: "Copy"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *NotesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "c", "ctrl+y":
			// Failures are shown by the coach line.
			_, _ = s.ctrl.CopyHistory(context.Background())
			return s, nil
		case "e":
			s.showExport = !s.showExport
			s.vp.GotoTop()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *NotesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	inner := cw - 4

	coach := theme.ForTone(s.board.CoachTone).Width(inner).Render(s.board.Coach)
	coachPanel := components.Panel("Coach", coach, cw, false)

	vpHeight := height - lipgloss.Height(coachPanel) - 3
	if vpHeight < 3 {
		vpHeight = 3
	}
	s.vp.SetWidth(inner)
	s.vp.SetHeight(vpHeight)
	s.vp.SetContent(s.render(inner))

	title := "Most recent first"
	if s.showExport {
		title = "Export (oldest first)"
	}
	list := components.Panel(title, s.vp.View(), cw, true)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, list+"\n"+coachPanel)
}

func (s *NotesScreen) render(width int) string {
	if len(s.board.Notes) == 0 {
		return theme.Hint.Render(session.NotesPlaceholder)
	}
	if s.showExport {
		text, err := s.ctrl.ExportHistory()
		if err != nil {
			return theme.Hint.Render(session.NotesPlaceholder)
		}
		return lipgloss.NewStyle().Width(width).Render(text)
	}
	return renderEntries(s.board.Notes, width)
}

// renderEntries lists entries as given, most recent first, numbered the
// way the export numbers them.
func renderEntries(entries []history.Entry, width int) string {
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = theme.Hint.Render(fmt.Sprintf("#%d", len(entries)-i)) + " " +
			theme.Tag.Render(e.TrackLabel) + " " +
			theme.Selected.Render(e.QuestionTitle) + "\n" +
			lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(e.Summary)
	}
	return strings.Join(blocks, "\n\n")
}
