package nopslog

import (
	"context"
	"log/slog"
	"testing"
)

func TestHandlerEnabled(t *testing.T) {
	h := handler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("handler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestHandlerHandle(t *testing.T) {
	h := handler{}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("handler.Handle() = %v, want nil", err)
	}
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	h := handler{}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("k", "v")}).(handler); !ok {
		t.Error("WithAttrs did not return a handler")
	}
	if _, ok := h.WithGroup("g").(handler); !ok {
		t.Error("WithGroup did not return a handler")
	}
}

func TestNewIsSilent(t *testing.T) {
	logger := New()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("New() logger reports a level enabled, want everything disabled")
	}
}
