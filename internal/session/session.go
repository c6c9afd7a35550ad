package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/clipboard"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/history"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/scoring"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/selector"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/speech"
)

const instrumentationName = "github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/session"

// Catalog is the read access the controller needs.
type Catalog interface {
	Track(id string) (catalog.Track, bool)
}

// Options configures a Controller. Catalog is required; everything else
// has a usable default.
type Options struct {
	Catalog  Catalog
	Selector selector.Selector

	// Speech is the text-to-speech backend. Nil means speech is
	// unavailable for the whole session.
	Speech speech.Sink

	// MuteSpeech starts the session with speech disabled.
	MuteSpeech bool

	// Clipboard receives exported notes. Nil makes every copy fail softly.
	Clipboard clipboard.Sink

	Surface Surface
	Logger  *slog.Logger

	// Tracer and Meter default to the global providers.
	Tracer trace.Tracer
	Meter  metric.Meter
}

// Controller runs one drill session. It owns the session state and the
// history log; calls must be sequential.
type Controller struct {
	id       string
	catalog  Catalog
	selector selector.Selector
	speech   *speech.Channel
	clip     clipboard.Sink
	surface  Surface
	logger   *slog.Logger
	tracer   trace.Tracer

	answers        metric.Int64Counter
	questionsDrawn metric.Int64Counter
	speechFailures metric.Int64Counter

	phase    Phase
	track    catalog.Track
	question *catalog.Question
	notes    history.Log
}

// New creates a Controller in the idle phase.
func New(opts Options) (*Controller, error) {
	if opts.Catalog == nil {
		return nil, errors.New("session: catalog is required")
	}

	c := &Controller{
		id:       uuid.New().String(),
		catalog:  opts.Catalog,
		selector: opts.Selector,
		clip:     opts.Clipboard,
		surface:  opts.Surface,
		logger:   opts.Logger,
		tracer:   opts.Tracer,
	}
	if c.selector == nil {
		c.selector = selector.NewRandom()
	}
	if c.surface == nil {
		c.surface = discardSurface{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("session_id", c.id)
	if c.tracer == nil {
		c.tracer = otel.Tracer(instrumentationName)
	}

	meter := opts.Meter
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}
	var err error
	if c.answers, err = meter.Int64Counter("ethicscoach.answers",
		metric.WithDescription("Answers submitted, by feedback tone")); err != nil {
		return nil, fmt.Errorf("create answers counter: %w", err)
	}
	if c.questionsDrawn, err = meter.Int64Counter("ethicscoach.questions_served",
		metric.WithDescription("Questions drawn from a track")); err != nil {
		return nil, fmt.Errorf("create questions counter: %w", err)
	}
	if c.speechFailures, err = meter.Int64Counter("ethicscoach.speech_failures",
		metric.WithDescription("Speech backend failures swallowed by the session")); err != nil {
		return nil, fmt.Errorf("create speech failure counter: %w", err)
	}

	c.speech = speech.NewChannel(opts.Speech, c.logger)
	c.speech.OnError = func(error) {
		c.speechFailures.Add(context.Background(), 1)
	}
	if opts.MuteSpeech {
		c.speech.SetEnabled(false)
	}

	c.logger.Info("session created", "speech_available", c.speech.Available())
	return c, nil
}

// ID returns the session's unique id.
func (c *Controller) ID() string { return c.id }

// State returns a snapshot of the session.
func (c *Controller) State() State {
	s := State{
		Phase:           c.phase,
		Track:           c.track,
		SpeechAvailable: c.speech.Available(),
		SpeechEnabled:   c.speech.Enabled(),
		Notes:           c.notes.Len(),
	}
	if c.question != nil {
		q := *c.question
		s.Question = &q
	}
	return s
}

// StartTrack selects a track and loads its first question.
func (c *Controller) StartTrack(ctx context.Context, trackID string) (err error) {
	ctx, span := c.startSpan(ctx, "StartTrack", attribute.String("track", trackID))
	defer func() { endSpan(span, err) }()

	track, ok := c.catalog.Track(trackID)
	if !ok {
		c.emit(Event{Kind: EventBrief, Text: LineChooseTrack, Tone: scoring.ToneWeak})
		c.logger.Info("unknown track", "track", trackID)
		return fmt.Errorf("%w: %q", ErrUnknownTrack, trackID)
	}

	q, err := c.selector.Pick(track)
	if err != nil {
		return fmt.Errorf("start track %q: %w", trackID, err)
	}

	c.track = track
	c.question = nil
	c.phase = PhaseTrackActive
	c.load(ctx, q)

	c.emit(Event{Kind: EventBrief, Text: track.Brief})
	c.emit(Event{Kind: EventStatus, Text: StatusLine(track)})
	c.emitQuestion()
	c.emit(Event{Kind: EventClearInput})
	c.emit(Event{Kind: EventCoach, Text: LineTrackLoaded})
	c.speech.Say(track.Intro + firstQuestionJoin + q.Prompt)

	c.logger.Info("track started", "track", track.ID, "question", q.ID)
	return nil
}

// NextQuestion draws another question from the current track.
func (c *Controller) NextQuestion(ctx context.Context) (err error) {
	ctx, span := c.startSpan(ctx, "NextQuestion")
	defer func() { endSpan(span, err) }()

	if c.track.ID == "" {
		return ErrNoActiveTrack
	}

	q, err := c.selector.Pick(c.track)
	if err != nil {
		return fmt.Errorf("next question: %w", err)
	}
	c.load(ctx, q)

	c.emitQuestion()
	c.emit(Event{Kind: EventClearInput})
	c.emit(Event{Kind: EventCoach, Text: LineNewAngle})
	c.speech.Say(q.Prompt)

	c.logger.Info("next question", "track", c.track.ID, "question", q.ID)
	return nil
}

// SubmitAnswer scores text against the current question and records it in
// the history log.
func (c *Controller) SubmitAnswer(ctx context.Context, text string) (fb scoring.Feedback, err error) {
	ctx, span := c.startSpan(ctx, "SubmitAnswer")
	defer func() { endSpan(span, err) }()

	if c.question == nil {
		c.emit(Event{Kind: EventCoach, Text: LineNoQuestion, Tone: scoring.ToneWeak})
		return scoring.Feedback{}, ErrNoActiveQuestion
	}

	fb = scoring.Evaluate(*c.question, text)
	span.SetAttributes(
		attribute.String("tone", string(fb.Tone)),
		attribute.Int("keyword_hits", fb.Hits),
	)
	c.answers.Add(ctx, 1, metric.WithAttributes(attribute.String("tone", string(fb.Tone))))

	c.emit(Event{Kind: EventFeedback, Text: "Coach: " + fb.Text, Tone: fb.Tone, Feedback: fb})
	c.speech.Say(fb.Text)

	c.notes.Append(history.Entry{
		TrackLabel:    c.track.Label,
		QuestionTitle: c.question.Title,
		Summary:       history.Summarize(text),
	})
	c.emit(Event{Kind: EventHistory, History: c.notes.View()})
	c.phase = PhaseAnswered

	c.logger.Info("answer scored",
		"question", c.question.ID,
		"tone", fb.Tone,
		"hits", fb.Hits,
		"total", fb.Total,
	)
	return fb, nil
}

// ReplayQuestion speaks the current prompt again.
func (c *Controller) ReplayQuestion(ctx context.Context) (err error) {
	_, span := c.startSpan(ctx, "ReplayQuestion")
	defer func() { endSpan(span, err) }()

	if c.question == nil {
		return ErrNoActiveQuestion
	}
	c.speech.Say(c.question.Prompt)
	return nil
}

// ClearAnswer empties the answer input. After feedback it returns the
// session to awaiting an answer for the same question.
func (c *Controller) ClearAnswer(ctx context.Context) {
	_, span := c.startSpan(ctx, "ClearAnswer")
	defer span.End()

	if c.phase == PhaseAnswered {
		c.phase = PhaseQuestionActive
	}
	c.emit(Event{Kind: EventClearInput})
	c.emit(Event{Kind: EventCoach, Text: LineCleared})
}

// ToggleSpeech flips speech output and returns the new state. Turning it
// off stops the current utterance. Without a backend it stays off.
func (c *Controller) ToggleSpeech(ctx context.Context) bool {
	_, span := c.startSpan(ctx, "ToggleSpeech")
	defer span.End()

	on := c.speech.Toggle()
	c.emit(Event{Kind: EventSpeech, Text: SpeechLabel(c.speech.Available(), on)})
	c.logger.Info("speech toggled", "enabled", on, "available", c.speech.Available())
	return on
}

// CoachIntro delivers the coach's spoken introduction.
func (c *Controller) CoachIntro(ctx context.Context) {
	_, span := c.startSpan(ctx, "CoachIntro")
	defer span.End()

	c.emit(Event{Kind: EventCoach, Text: LineListening})
	c.speech.Say(CoachIntro)
}

// HistoryView returns the notes, most recent first.
func (c *Controller) HistoryView() []history.Entry {
	return c.notes.View()
}

// ExportHistory renders the notes as plain text in the order they were
// recorded.
func (c *Controller) ExportHistory() (string, error) {
	return c.notes.Export()
}

// CopyHistory exports the notes to the clipboard sink. An empty log is an
// error; clipboard failures are reported on the surface and return false
// with a nil error.
func (c *Controller) CopyHistory(ctx context.Context) (copied bool, err error) {
	_, span := c.startSpan(ctx, "CopyHistory")
	defer func() { endSpan(span, err) }()

	text, err := c.notes.Export()
	if err != nil {
		c.emit(Event{Kind: EventCoach, Text: LineNoNotes, Tone: scoring.ToneWeak})
		return false, err
	}

	if c.clip == nil {
		err = clipboard.ErrUnsupported
	} else {
		err = c.clip.WriteText(text)
	}
	if err != nil {
		c.logger.Warn("copy notes failed", "error", err)
		span.RecordError(err)
		c.emit(Event{Kind: EventCoach, Text: LineClipBlocked, Tone: scoring.ToneWeak})
		return false, nil
	}

	c.emit(Event{Kind: EventCoach, Text: LineNotesCopied})
	c.logger.Info("notes copied", "entries", c.notes.Len())
	return true, nil
}

// Close stops any speech still playing.
func (c *Controller) Close() {
	c.speech.Stop()
	c.logger.Info("session closed", "notes", c.notes.Len())
}

func (c *Controller) load(ctx context.Context, q catalog.Question) {
	c.question = &q
	c.phase = PhaseQuestionActive
	c.questionsDrawn.Add(ctx, 1, metric.WithAttributes(attribute.String("track", c.track.ID)))
}

func (c *Controller) emitQuestion() {
	c.emit(Event{
		Kind:     EventQuestion,
		Text:     c.question.Prompt,
		Meta:     MetaLine(c.track, *c.question),
		Question: *c.question,
	})
}

func (c *Controller) emit(e Event) {
	c.surface.Show(e)
}

func (c *Controller) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	attrs = append(attrs, attribute.String("session.id", c.id))
	return c.tracer.Start(ctx, "session."+op, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
