package pipelinearchive

import (
	"log/slog"

	"github.com/gogpu/pipelinearchive/internal/nopslog"
)

func newNopLogger() *slog.Logger { return nopslog.New() }
