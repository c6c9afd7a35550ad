package speech

import (
	"log/slog"
)

// Sink is a text-to-speech backend. Speak starts an utterance and returns
// without waiting for it to finish. Cancel stops whatever is playing.
type Sink interface {
	Cancel() error
	Speak(text string) error
}

// Channel gates a Sink behind an enabled flag and keeps at most one
// utterance current: every emission cancels the previous one first.
//
// Sink errors never reach the caller. They are logged and reported to
// OnError when it is set.
type Channel struct {
	sink    Sink
	enabled bool
	logger  *slog.Logger

	// OnError is called with every swallowed Speak failure.
	OnError func(error)
}

// NewChannel returns an enabled channel over sink. A nil sink yields a
// channel that is permanently unavailable and disabled.
func NewChannel(sink Sink, logger *slog.Logger) *Channel {
	if logger == nil {
		logger = slog.Default()
	}
	return &Channel{
		sink:    sink,
		enabled: sink != nil,
		logger:  logger.With("component", "speech"),
	}
}

// Available reports whether a backend is attached.
func (c *Channel) Available() bool { return c.sink != nil }

func (c *Channel) Enabled() bool { return c.enabled }

// SetEnabled turns speech on or off. Turning it off cancels the current
// utterance. Enabling a channel with no backend is a no-op.
func (c *Channel) SetEnabled(on bool) {
	if !c.Available() {
		return
	}
	if !on && c.enabled {
		c.cancel()
	}
	c.enabled = on
}

// Toggle flips the enabled flag and returns the new state.
func (c *Channel) Toggle() bool {
	c.SetEnabled(!c.enabled)
	return c.enabled
}

// Say replaces the current utterance with text. It does nothing while the
// channel is disabled or text is empty.
func (c *Channel) Say(text string) {
	if !c.enabled || text == "" {
		return
	}
	c.cancel()
	if err := c.sink.Speak(text); err != nil {
		c.logger.Warn("speak failed", "error", err)
		if c.OnError != nil {
			c.OnError(err)
		}
	}
}

// Stop cancels the current utterance without changing the enabled flag.
func (c *Channel) Stop() {
	if c.Available() {
		c.cancel()
	}
}

func (c *Channel) cancel() {
	if err := c.sink.Cancel(); err != nil {
		c.logger.Debug("cancel failed", "error", err)
	}
}
