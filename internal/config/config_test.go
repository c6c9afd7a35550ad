package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Speech.Enabled)
	assert.True(t, cfg.Telemetry)
	assert.Empty(t, cfg.CatalogPath)
	assert.Zero(t, cfg.Seed)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvCatalog, "/tmp/catalog.yaml")
	t.Setenv(EnvLogDir, "/tmp/logs")
	t.Setenv(EnvTTS, "off")
	t.Setenv(EnvTTSCommand, "espeak-ng -s 150")
	t.Setenv(EnvNoRepeat, "true")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvExportFile, "/tmp/notes.txt")
	t.Setenv(EnvTelemetry, "0")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		CatalogPath: "/tmp/catalog.yaml",
		LogDir:      "/tmp/logs",
		Speech:      SpeechConfig{Enabled: false, Command: "espeak-ng -s 150"},
		NoRepeat:    true,
		Seed:        42,
		ExportFile:  "/tmp/notes.txt",
		Telemetry:   false,
	}, cfg)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvTTS, "loud"},
		{EnvSeed, "-1"},
		{EnvNoRepeat, "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("ETHICSCOACH_SEED=7\n"), 0o644))

	// godotenv sets process env; make sure the test cleans up after itself.
	t.Setenv(EnvSeed, "")
	require.NoError(t, os.Unsetenv(EnvSeed))

	require.NoError(t, LoadEnvFile(path))
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)

	assert.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cfg := Default()
	cfg.CatalogPath = filepath.Join(t.TempDir(), "nope.yaml")
	assert.Error(t, cfg.Validate())
}

func TestDefaultLogDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	dir, err := DefaultLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/state", "ethicscoach"), dir)
}

func TestResolveLogDirCreates(t *testing.T) {
	cfg := Default()
	cfg.LogDir = filepath.Join(t.TempDir(), "a", "b")
	dir, err := cfg.ResolveLogDir()
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
