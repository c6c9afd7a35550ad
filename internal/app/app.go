package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/router"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/screen"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/screens/drill"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/screens/home"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/screens/notes"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/screens/welcome"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/session"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/board"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Controller *session.Controller
	Board      *board.Board
	Tracks     []catalog.Track

	// SkipWelcome starts on the track menu.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ctrl   *session.Controller
	width  int
	height int
}

// newAppModel wires the screens together and starts on the welcome screen.
// The board must be the controller's surface.
func newAppModel(opts Options) AppModel {
	b := opts.Board
	ctrl := opts.Controller

	notesFactory := func() screen.Screen { return notes.New(ctrl, b) }
	homeFactory := func() screen.Screen {
		return home.New(ctrl, b, opts.Tracks, home.Factories{
			Drill: func() screen.Screen { return drill.New(ctrl, b, notesFactory) },
			Notes: notesFactory,
		})
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(initial),
		ctrl:   ctrl,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	st := m.ctrl.State()
	header := layout.RenderHeader(m.router.Trail(), layout.HeaderStatus{
		Speech:   session.SpeechLabel(st.SpeechAvailable, st.SpeechEnabled),
		SpeechOn: st.SpeechEnabled,
		Notes:    st.Notes,
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
