package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/router"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/screen"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	flameEnd     = 500 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

const flameArt = `    (
   ) )
  ( ( (
 .-'-'-.
 |     |
 '-----'`

// flicker frames alternate the flame color
var flickerColors = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(theme.Primary),
	lipgloss.NewStyle().Foreground(theme.Accent),
}

const tagline = "Answer like the ethics board has veto power."

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the home
// screen. Any key skips it.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	style := flickerColors[0]
	if w.elapsed >= flameEnd {
		style = flickerColors[w.tickCount%len(flickerColors)]
	}
	sections := []string{style.Render(flameArt)}

	if w.elapsed >= totalDur {
		sections = append(sections,
			"",
			RenderBanner(width),
			theme.Label.Render("S P E E C H   C O A C H"),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
