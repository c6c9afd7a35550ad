package clipboard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct{ err error }

func (f failingSink) WriteText(string) error { return f.err }

func TestFileWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "notes.txt")
	require.NoError(t, File{Path: path}.WriteText("#1 [A] B\nsummary\n"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#1 [A] B\nsummary\n", string(got))

	// Overwrites on the next export.
	require.NoError(t, File{Path: path}.WriteText("new"))
	got, _ = os.ReadFile(path)
	assert.Equal(t, "new", string(got))
}

func TestMultiFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	m := Multi{failingSink{errors.New("blocked")}, File{Path: path}}

	require.NoError(t, m.WriteText("hello"))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestMultiAllFail(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	err := Multi{failingSink{first}, failingSink{second}}.WriteText("x")

	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)

	assert.ErrorIs(t, Multi{}.WriteText("x"), ErrUnsupported)
}
