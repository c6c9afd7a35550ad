package drill

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/router"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/screen"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/session"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/board"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/components"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/layout"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/theme"
)

const placeholder = "Write what you would actually stand behind in front of an ethics board..."

// DrillScreen shows the current question, the answer editor and the
// coach's feedback.
type DrillScreen struct {
	ctrl         *session.Controller
	board        *board.Board
	editor       components.AnswerEditor
	notesFactory func() screen.Screen
	errMsg       string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a DrillScreen over a session that already has a track.
func New(ctrl *session.Controller, b *board.Board, notesFactory func() screen.Screen) *DrillScreen {
	b.TakeClear()
	return &DrillScreen{
		ctrl:         ctrl,
		board:        b,
		editor:       components.NewAnswerEditor(placeholder),
		notesFactory: notesFactory,
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	return d.editor.Init()
}

func (d *DrillScreen) Title() string {
	if st := d.ctrl.State(); st.HasTrack() {
		return st.Track.Label
	}
	return "Drill"
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Ctrl+N", Description: "Next"},
		{Key: "Ctrl+O", Description: "Notes"},
		{Key: "Esc", Description: "Tracks"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.editor, cmd = d.editor.Update(msg)
		return d, cmd
	}

	ctx := context.Background()
	d.errMsg = ""

	switch kmsg.String() {
	case "esc":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	case "ctrl+s":
		_, err := d.ctrl.SubmitAnswer(ctx, d.editor.Value())
		d.report(err)
	case "ctrl+n":
		d.report(d.ctrl.NextQuestion(ctx))
	case "ctrl+r":
		d.report(d.ctrl.ReplayQuestion(ctx))
	case "ctrl+l":
		d.ctrl.ClearAnswer(ctx)
	case "ctrl+t":
		d.ctrl.ToggleSpeech(ctx)
	case "ctrl+y":
		_, err := d.ctrl.CopyHistory(ctx)
		if !errors.Is(err, session.ErrEmptyHistory) {
			d.report(err)
		}
	case "ctrl+o":
		s := d.notesFactory()
		return d, func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	default:
		var cmd tea.Cmd
		d.editor, cmd = d.editor.Update(msg)
		return d, cmd
	}

	if d.board.TakeClear() {
		d.editor.Reset()
	}
	return d, nil
}

// report keeps unexpected controller errors visible. Expected ones are
// already explained by a coach line.
func (d *DrillScreen) report(err error) {
	if err == nil || errors.Is(err, session.ErrNoActiveQuestion) {
		return
	}
	d.errMsg = err.Error()
}

func (d *DrillScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	inner := cw - 4
	st := d.ctrl.State()

	var sections []string

	status := theme.Label.Render(d.board.Status)
	sections = append(sections, lipgloss.NewStyle().Width(cw).Render(status))

	if d.board.Brief != "" && !layout.IsCompactHeight(height+6) {
		brief := theme.ForTone(d.board.BriefTone).Width(inner).Render(d.board.Brief)
		sections = append(sections, components.Panel("Brief", brief, cw, false))
	}

	if d.board.HasQuestion {
		q := d.board.Question
		body := theme.Selected.Render(q.Title) + "\n" +
			theme.Hint.Render(d.board.Meta) + "\n\n" +
			lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(q.Prompt)
		if len(q.Tags) > 0 && !layout.IsCompactHeight(height+6) {
			body += "\n" + renderTags(q.Tags)
		}
		sections = append(sections, components.Panel("Question", body, cw, false))
	}

	editorHeight := 6
	if layout.IsCompactHeight(height + 6) {
		editorHeight = 3
	}
	d.editor.SetSize(inner, editorHeight)
	sections = append(sections, components.Panel("Your answer", d.editor.View(), cw, true))

	coach := theme.ForTone(d.board.CoachTone).Width(inner).Render(d.board.Coach)
	if fb := d.board.Feedback; d.board.HasFeedback && fb.Total > 0 {
		coach += "\n" + renderCoverage(fb.Hits, fb.Total, fb.Matched)
	}
	sections = append(sections, components.Panel("Coach", coach, cw, false))

	sections = append(sections, components.Toolbar([]components.Button{
		{Label: "Replay", Key: "^R", Active: st.SpeechEnabled && st.HasQuestion()},
		{Label: "Clear", Key: "^L", Active: true},
		{Label: session.SpeechLabel(st.SpeechAvailable, st.SpeechEnabled), Key: "^T", Active: st.SpeechAvailable},
		{Label: "Copy notes", Key: "^Y", Active: st.Notes > 0},
	}))

	if d.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+d.errMsg))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n"))
}

func renderTags(tags []string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = theme.Tag.Render(t)
	}
	return strings.Join(parts, " ")
}

func renderCoverage(hits, total int, matched []string) string {
	line := fmt.Sprintf("Signals covered: %d/%d", hits, total)
	if len(matched) > 0 {
		line += " (" + strings.Join(matched, ", ") + ")"
	}
	return theme.Hint.Render(line)
}
