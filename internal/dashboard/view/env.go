// Package view holds the dashboard components as Go view-models.
//
// Fetching components follow one lifecycle: Mount starts a fetch under a
// fresh cancellation token, Unmount cancels it, and a result is applied only
// while its token is still the current one. Everything else is local UI state
// (selected tab, expanded sections, filters) owned by the component and turned
// into plain view structs for the HTML and terminal renderers.
package view

import (
	"io"
	"log/slog"
	"time"
)

// Recorder receives fetch outcomes.
type Recorder interface {
	IncrementViewFetch(component, outcome string)
}

// Env carries the dependencies shared by all components.
type Env struct {
	Fetcher  CaseFetcher
	Logger   *slog.Logger
	Recorder Recorder
	Location *time.Location
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e.Logger
}

func (e Env) record(component, outcome string) {
	if e.Recorder != nil {
		e.Recorder.IncrementViewFetch(component, outcome)
	}
}

func (e Env) location() *time.Location {
	if e.Location == nil {
		return time.UTC
	}
	return e.Location
}
