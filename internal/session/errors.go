package session

import (
	"errors"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/history"
)

var (
	// ErrUnknownTrack is returned by StartTrack for ids not in the catalog.
	ErrUnknownTrack = errors.New("unknown track")

	// ErrNoActiveTrack is returned by NextQuestion before a track is started.
	ErrNoActiveTrack = errors.New("no active track")

	// ErrNoActiveQuestion is returned by SubmitAnswer and ReplayQuestion
	// when no question is loaded.
	ErrNoActiveQuestion = errors.New("no active question")

	// ErrEmptyHistory is returned when exporting or copying an empty log.
	ErrEmptyHistory = history.ErrEmptyHistory
)
