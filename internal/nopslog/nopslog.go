// Package nopslog provides the zero-cost discard logger shared by every
// component that accepts an optional *slog.Logger: the root facade, the
// recorder's worker, and the replayer default to this when the caller
// doesn't inject one, rather than each defining its own handler or
// reaching for a different discard mechanism.
package nopslog

import (
	"context"
	"log/slog"
)

// handler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type handler struct{}

func (handler) Enabled(context.Context, slog.Level) bool  { return false }
func (handler) Handle(context.Context, slog.Record) error { return nil }
func (handler) WithAttrs([]slog.Attr) slog.Handler        { return handler{} }
func (handler) WithGroup(string) slog.Handler             { return handler{} }

// New returns a *slog.Logger backed by the discard handler.
func New() *slog.Logger { return slog.New(handler{}) }
