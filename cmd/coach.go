package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/clipboard"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/config"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/selector"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/session"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/speech"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/telemetry"
)

// coach holds everything a session-running command builds from config.
type coach struct {
	cfg       config.Config
	catalog   *catalog.Catalog
	logger    *slog.Logger
	providers *telemetry.Providers
	logFile   io.Closer
}

// openCoach resolves config, starts logging and telemetry, and loads the
// catalog. Callers must Close the result.
func openCoach(cmd *cobra.Command) (*coach, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	dir, err := cfg.ResolveLogDir()
	if err != nil {
		return nil, err
	}
	logger, logFile := telemetry.InitLogger(dir, slog.LevelInfo)

	c := &coach{cfg: cfg, logger: logger, logFile: logFile, providers: telemetry.Noop()}

	if cfg.Telemetry {
		p, err := telemetry.Init(ctx, dir, version)
		if err != nil {
			logger.Warn("telemetry disabled", "error", err)
		} else {
			c.providers = p
		}
	}

	c.catalog, err = loadCatalog(cfg.CatalogPath)
	if err != nil {
		c.Close(ctx)
		return nil, err
	}
	logger.Info("catalog loaded",
		"path", cfg.CatalogPath,
		"tracks", c.catalog.Len(),
		"questions", c.catalog.QuestionCount(),
	)
	return c, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// newSession builds a controller that reports to surface.
func (c *coach) newSession(surface session.Surface) (*session.Controller, error) {
	return session.New(session.Options{
		Catalog:    c.catalog,
		Selector:   newSelector(c.cfg),
		Speech:     c.speechSink(),
		MuteSpeech: !c.cfg.Speech.Enabled,
		Clipboard:  newClipboard(c.cfg),
		Surface:    surface,
		Logger:     c.logger,
		Tracer:     c.providers.Tracer,
		Meter:      c.providers.Meter,
	})
}

// speechSink returns nil, not a typed nil, when no backend is usable.
func (c *coach) speechSink() speech.Sink {
	var (
		cmd *speech.Command
		err error
	)
	if c.cfg.Speech.Command != "" {
		cmd, err = speech.ParseCommand(c.cfg.Speech.Command)
	} else {
		cmd, err = speech.Detect()
	}
	if err != nil {
		if !errors.Is(err, speech.ErrNoBackend) {
			c.logger.Warn("speech backend rejected", "error", err)
		}
		return nil
	}
	c.logger.Info("speech backend", "command", cmd.Name())
	return cmd
}

func newSelector(cfg config.Config) selector.Selector {
	switch {
	case cfg.NoRepeat:
		return selector.NewNoRepeat(cfg.Seed)
	case cfg.Seed != 0:
		return selector.NewSeeded(cfg.Seed)
	default:
		return selector.NewRandom()
	}
}

func newClipboard(cfg config.Config) clipboard.Sink {
	sinks := clipboard.Multi{clipboard.System{}}
	if cfg.ExportFile != "" {
		sinks = append(sinks, clipboard.File{Path: cfg.ExportFile})
	}
	return sinks
}

// Close flushes telemetry and the log file.
func (c *coach) Close(ctx context.Context) {
	if err := c.providers.Shutdown(ctx); err != nil {
		c.logger.Warn("telemetry shutdown", "error", err)
	}
	_ = c.logFile.Close()
}
