package clipboard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no system clipboard utility is installed.
var ErrUnsupported = errors.New("system clipboard is not available")

// Sink receives exported text.
type Sink interface {
	WriteText(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// File writes exported text to a file, replacing its contents. It is used
// when no clipboard is available or the user asks for a file export.
type File struct {
	Path string
}

func (f File) WriteText(text string) error {
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(f.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// Multi writes to each sink in order and stops at the first that succeeds.
// The returned error joins every failure when none succeed.
type Multi []Sink

func (m Multi) WriteText(text string) error {
	var errs []error
	for _, s := range m {
		err := s.WriteText(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrUnsupported
	}
	return errors.Join(errs...)
}
