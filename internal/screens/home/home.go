package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/router"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/screen"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/session"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/board"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/components"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/layout"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/theme"
)

// Factories build the screens reachable from home.
type Factories struct {
	Drill func() screen.Screen
	Notes func() screen.Screen
}

// HomeScreen lists the tracks and the session-wide actions.
type HomeScreen struct {
	ctrl  *session.Controller
	board  *board.Board
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen with one menu entry per track.
func New(ctrl *session.Controller, b *board.Board, tracks []catalog.Track, f Factories) *HomeScreen {
	h := &HomeScreen{ctrl: ctrl, board: b}

	items := make([]components.MenuItem, 0, len(tracks)+3)
	for _, t := range tracks {
		id := t.ID
		items = append(items, components.MenuItem{
			Label:       t.Label,
			Description: t.Brief,
			Action: func() tea.Cmd {
				if err := ctrl.StartTrack(context.Background(), id); err != nil {
					h.errMsg = err.Error()
					return nil
				}
				return push(f.Drill())
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label:       "Coach intro",
			Description: "Hear how the coach will judge your answers.",
			Action: func() tea.Cmd {
				ctrl.CoachIntro(context.Background())
				return nil
			},
		},
		components.MenuItem{
			Label:       "Ethics notes",
			Description: "Review and copy your recent answers.",
			Action: func() tea.Cmd {
				return push(f.Notes())
			},
		},
		components.MenuItem{
			Label:       "Exit",
			Description: "End the session.",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)
	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Choose a track"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+T", Description: "Toggle TTS"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "ctrl+t" {
		h.ctrl.ToggleSpeech(context.Background())
		return h, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		h.errMsg = ""
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height + 6)

	var sections []string

	menu := h.menu.View()
	if !compact {
		menu = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(cw-14).Render(menu),
			RenderCoach(h.board.CoachTone),
		)
	}
	sections = append(sections, components.Panel("Tracks", menu, cw, true))

	if item, ok := h.menu.Current(); ok && item.Description != "" {
		sections = append(sections, components.Panel("Brief", theme.Body.Render(item.Description), cw, false))
	}

	coach := theme.ForTone(h.board.CoachTone).Render(h.board.Coach)
	sections = append(sections, components.Panel("Coach", coach, cw, false))

	if h.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+h.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
