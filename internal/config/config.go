package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvCatalog    = "ETHICSCOACH_CATALOG"
	EnvLogDir     = "ETHICSCOACH_LOG_DIR"
	EnvTTS        = "ETHICSCOACH_TTS"
	EnvTTSCommand = "ETHICSCOACH_TTS_CMD"
	EnvNoRepeat   = "ETHICSCOACH_NO_REPEAT"
	EnvSeed       = "ETHICSCOACH_SEED"
	EnvExportFile = "ETHICSCOACH_EXPORT_FILE"
	EnvTelemetry  = "ETHICSCOACH_TELEMETRY"
)

// Config holds all runtime configuration.
type Config struct {
	// CatalogPath is a YAML or JSON catalog file. Empty uses the built-in
	// catalog.
	CatalogPath string

	// LogDir receives the rotating log and telemetry files.
	LogDir string

	Speech SpeechConfig

	// NoRepeat avoids serving the same question twice in a row.
	NoRepeat bool

	// Seed makes question selection reproducible. Zero means random.
	Seed uint64

	// ExportFile, when set, receives copied notes if the system clipboard
	// is unavailable.
	ExportFile string

	// Telemetry enables trace and metric files in LogDir.
	Telemetry bool
}

// SpeechConfig controls text-to-speech output.
type SpeechConfig struct {
	Enabled bool

	// Command overrides backend detection, e.g. "espeak-ng -s 160".
	Command string
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Speech:    SpeechConfig{Enabled: true},
		Telemetry: true,
	}
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := Default()

	if p := os.Getenv(EnvCatalog); p != "" {
		cfg.CatalogPath = p
	}
	if d := os.Getenv(EnvLogDir); d != "" {
		cfg.LogDir = d
	}
	if c := os.Getenv(EnvTTSCommand); c != "" {
		cfg.Speech.Command = c
	}
	if f := os.Getenv(EnvExportFile); f != "" {
		cfg.ExportFile = f
	}

	var err error
	if cfg.Speech.Enabled, err = envBool(EnvTTS, cfg.Speech.Enabled); err != nil {
		return Config{}, err
	}
	if cfg.NoRepeat, err = envBool(EnvNoRepeat, cfg.NoRepeat); err != nil {
		return Config{}, err
	}
	if cfg.Telemetry, err = envBool(EnvTelemetry, cfg.Telemetry); err != nil {
		return Config{}, err
	}
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// Validate checks that referenced files exist.
func (c Config) Validate() error {
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			return fmt.Errorf("catalog %s: %w", c.CatalogPath, err)
		}
	}
	return nil
}

// ResolveLogDir returns LogDir, or the default state directory when it is
// empty, creating it if needed.
func (c Config) ResolveLogDir() (string, error) {
	dir := c.LogDir
	if dir == "" {
		var err error
		if dir, err = DefaultLogDir(); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return dir, nil
}

// DefaultLogDir resolves the log directory:
// 1. $XDG_STATE_HOME/ethicscoach
// 2. ~/.local/state/ethicscoach
func DefaultLogDir() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "ethicscoach"), nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	switch v {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
