package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/scoring"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/session"
)

var drillCmd = &cobra.Command{
	Use:   "drill [track]",
	Short: "Practice in line mode, without the full-screen UI",
	Long: `Run a drill session on plain stdin/stdout.

Every line you type is an answer to the current question. Lines starting
with ':' are commands; type :help to list them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDrill,
}

func runDrill(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c, err := openCoach(cmd)
	if err != nil {
		return err
	}
	defer c.Close(ctx)

	out := cmd.OutOrStdout()
	ctrl, err := c.newSession(linePrinter{w: out})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	r := &repl{ctrl: ctrl, catalog: c.catalog, out: out}
	if len(args) == 1 {
		r.startTrack(ctx, args[0])
	} else {
		r.listTracks()
	}
	return r.run(ctx, cmd.InOrStdin())
}

const drillHelp = `Commands:
  :track <id>   switch to a track
  :tracks       list tracks
  :next         draw another question
  :replay       speak the question again
  :clear        discard your answer and try again
  :tts          toggle speech
  :notes        show your notes, most recent first
  :copy         copy your notes to the clipboard
  :intro        hear the coach's introduction
  :quit         leave
Any other line is scored as your answer.`

// linePrinter writes session events as plain lines.
type linePrinter struct {
	w io.Writer
}

func (p linePrinter) Show(e session.Event) {
	switch e.Kind {
	case session.EventBrief:
		fmt.Fprintf(p.w, "%s%s\n", toneMark(e.Tone), e.Text)
	case session.EventStatus, session.EventSpeech:
		fmt.Fprintf(p.w, "[%s]\n", e.Text)
	case session.EventQuestion:
		fmt.Fprintf(p.w, "\n── %s ──\n%s\n%s\n", e.Question.Title, e.Meta, e.Question.Prompt)
		if len(e.Question.Tags) > 0 {
			fmt.Fprintf(p.w, "tags: %s\n", strings.Join(e.Question.Tags, ", "))
		}
		fmt.Fprintln(p.w)
	case session.EventCoach:
		fmt.Fprintf(p.w, "%s%s\n", toneMark(e.Tone), e.Text)
	case session.EventFeedback:
		fmt.Fprintf(p.w, "%s%s\n", toneMark(e.Tone), e.Text)
		if fb := e.Feedback; fb.Total > 0 {
			fmt.Fprintf(p.w, "  signals covered: %d/%d", fb.Hits, fb.Total)
			if len(fb.Matched) > 0 {
				fmt.Fprintf(p.w, " (%s)", strings.Join(fb.Matched, ", "))
			}
			fmt.Fprintln(p.w)
		}
	}
}

func toneMark(t scoring.Tone) string {
	switch t {
	case scoring.ToneSolid:
		return "✓ "
	case scoring.ToneMedium:
		return "~ "
	case scoring.ToneWeak:
		return "✗ "
	default:
		return ""
	}
}

// repl reads answers and commands line by line.
type repl struct {
	ctrl    *session.Controller
	catalog *catalog.Catalog
	out     io.Writer
}

func (r *repl) run(ctx context.Context, in io.Reader) error {
	// Answers can be pasted essays, so lines are read without a length cap.
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(r.out, "> ")
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return err
		}
		eof := err != nil
		line := strings.TrimSpace(raw)
		if line == "" {
			if eof {
				fmt.Fprintln(r.out)
				return nil
			}
			continue
		}
		if !strings.HasPrefix(line, ":") {
			_, err := r.ctrl.SubmitAnswer(ctx, line)
			r.report(err)
			continue
		}

		name, arg, _ := strings.Cut(line, " ")
		switch name {
		case ":quit", ":q":
			return nil
		case ":help", ":h":
			fmt.Fprintln(r.out, drillHelp)
		case ":tracks":
			r.listTracks()
		case ":track":
			r.startTrack(ctx, strings.TrimSpace(arg))
		case ":next", ":n":
			r.report(r.ctrl.NextQuestion(ctx))
		case ":replay":
			if err := r.ctrl.ReplayQuestion(ctx); errors.Is(err, session.ErrNoActiveQuestion) {
				fmt.Fprintln(r.out, "✗ "+session.LineNoQuestion)
			}
		case ":clear":
			r.ctrl.ClearAnswer(ctx)
		case ":tts":
			r.ctrl.ToggleSpeech(ctx)
		case ":notes":
			r.printNotes()
		case ":copy":
			_, err := r.ctrl.CopyHistory(ctx)
			r.report(err)
		case ":intro":
			r.ctrl.CoachIntro(ctx)
			fmt.Fprintln(r.out, session.CoachIntro)
		default:
			fmt.Fprintf(r.out, "unknown command %s, try :help\n", name)
		}
	}
}

func (r *repl) startTrack(ctx context.Context, id string) {
	err := r.ctrl.StartTrack(ctx, id)
	if errors.Is(err, session.ErrUnknownTrack) {
		if s := r.catalog.Suggest(id); len(s) > 0 {
			fmt.Fprintf(r.out, "No track %q. Did you mean: %s?\n", id, strings.Join(s, ", "))
		} else {
			r.listTracks()
		}
		return
	}
	r.report(err)
}

func (r *repl) listTracks() {
	fmt.Fprintln(r.out, "Tracks:")
	for _, t := range r.catalog.Tracks() {
		fmt.Fprintf(r.out, "  %-14s %s\n", t.ID, t.Label)
	}
	fmt.Fprintln(r.out, "Start one with :track <id>.")
}

func (r *repl) printNotes() {
	entries := r.ctrl.HistoryView()
	if len(entries) == 0 {
		fmt.Fprintln(r.out, session.NotesPlaceholder)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(r.out, "[%s] %s\n  %s\n", e.TrackLabel, e.QuestionTitle, e.Summary)
	}
}

// report prints errors the surface has not already explained.
func (r *repl) report(err error) {
	switch {
	case err == nil,
		errors.Is(err, session.ErrNoActiveQuestion),
		errors.Is(err, session.ErrEmptyHistory):
		return
	case errors.Is(err, session.ErrNoActiveTrack):
		fmt.Fprintln(r.out, "✗ "+session.LineChooseTrack)
	default:
		fmt.Fprintln(r.out, "error:", err)
	}
}
