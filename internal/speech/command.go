package speech

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// ErrNoBackend is returned by Detect when no speech program is installed.
var ErrNoBackend = errors.New("no text-to-speech program found")

// candidates are tried in order by Detect.
var candidates = []string{"say", "espeak-ng", "espeak", "spd-say"}

// Command speaks by running an external program with the text as its last
// argument. The process runs in the background; Cancel kills it.
type Command struct {
	name string
	args []string

	mu  sync.Mutex
	cur *exec.Cmd
}

var _ Sink = (*Command)(nil)

// NewCommand returns a sink running name with args followed by the text.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// ParseCommand builds a sink from a shell-style command line such as
// "espeak-ng -s 160". Quoting is not supported.
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("parse speech command: empty command")
	}
	return NewCommand(fields[0], fields[1:]...), nil
}

// Detect returns a sink for the first known speech program on PATH.
func Detect() (*Command, error) {
	for _, name := range candidates {
		if name == "say" && runtime.GOOS != "darwin" {
			continue
		}
		if path, err := exec.LookPath(name); err == nil {
			return NewCommand(path), nil
		}
	}
	return nil, ErrNoBackend
}

// Name returns the program the sink runs.
func (c *Command) Name() string { return c.name }

func (c *Command) Speak(text string) error {
	args := append(append([]string{}, c.args...), text)
	cmd := exec.Command(c.name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.name, err)
	}

	c.mu.Lock()
	c.cur = cmd
	c.mu.Unlock()

	go func() {
		_ = cmd.Wait()
		c.mu.Lock()
		if c.cur == cmd {
			c.cur = nil
		}
		c.mu.Unlock()
	}()
	return nil
}

func (c *Command) Cancel() error {
	c.mu.Lock()
	cmd := c.cur
	c.cur = nil
	c.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stop %s: %w", c.name, err)
	}
	return nil
}
