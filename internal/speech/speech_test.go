package speech

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink logs every call it receives.
type recordingSink struct {
	calls     []string
	speakErr  error
	cancelErr error
}

func (r *recordingSink) Cancel() error {
	r.calls = append(r.calls, "cancel")
	return r.cancelErr
}

func (r *recordingSink) Speak(text string) error {
	r.calls = append(r.calls, "speak:"+text)
	return r.speakErr
}

func TestSayCancelsBeforeSpeaking(t *testing.T) {
	sink := &recordingSink{}
	ch := NewChannel(sink, nil)

	ch.Say("one")
	ch.Say("two")

	assert.Equal(t, []string{"cancel", "speak:one", "cancel", "speak:two"}, sink.calls)
}

func TestToggleSuppressesAndRestores(t *testing.T) {
	sink := &recordingSink{}
	ch := NewChannel(sink, nil)
	require.True(t, ch.Enabled())

	assert.False(t, ch.Toggle())
	assert.Equal(t, []string{"cancel"}, sink.calls, "disabling cancels the current utterance")

	ch.Say("muted")
	assert.Equal(t, []string{"cancel"}, sink.calls)

	assert.True(t, ch.Toggle())
	ch.Say("back")
	assert.Equal(t, []string{"cancel", "cancel", "speak:back"}, sink.calls)
}

func TestFailuresAreSwallowed(t *testing.T) {
	sink := &recordingSink{
		speakErr:  errors.New("no audio device"),
		cancelErr: errors.New("nothing to cancel"),
	}
	ch := NewChannel(sink, nil)

	var reported []error
	ch.OnError = func(err error) { reported = append(reported, err) }

	ch.Say("hello")
	ch.SetEnabled(false)

	require.Len(t, reported, 1)
	assert.EqualError(t, reported[0], "no audio device")
	assert.False(t, ch.Enabled())
}

func TestEmptyTextIsIgnored(t *testing.T) {
	sink := &recordingSink{}
	NewChannel(sink, nil).Say("")
	assert.Empty(t, sink.calls)
}

func TestUnavailableChannel(t *testing.T) {
	ch := NewChannel(nil, nil)
	assert.False(t, ch.Available())
	assert.False(t, ch.Enabled())
	assert.False(t, ch.Toggle())

	// Must not panic without a sink.
	ch.Say("nobody hears this")
	ch.Stop()
}

func TestParseCommand(t *testing.T) {
	c, err := ParseCommand("espeak-ng -s 160")
	require.NoError(t, err)
	assert.Equal(t, "espeak-ng", c.Name())
	assert.Equal(t, []string{"-s", "160"}, c.args)

	_, err = ParseCommand("   ")
	assert.Error(t, err)
}

func TestCommandSpeakAndCancel(t *testing.T) {
	path, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}

	c := NewCommand(path)
	require.NoError(t, c.Speak("30"))
	require.NoError(t, c.Cancel())
	// A second cancel with nothing running is fine.
	require.NoError(t, c.Cancel())
}

func TestCommandMissingProgram(t *testing.T) {
	c := NewCommand("definitely-not-a-real-tts-program")
	assert.Error(t, c.Speak("hello"))
	assert.NoError(t, c.Cancel())
}
