package pipelinearchive

import "log/slog"

// config collects the functional options shared by NewRecorder and
// NewReplayer. Not every field applies to every constructor; an option
// that doesn't apply to the thing it's passed to is simply ignored,
// the same way gpucore.PipelineConfig tolerates fields a given backend
// doesn't need.
type config struct {
	logger            *slog.Logger
	queueCapacity     int
	serializationPath string
}

func newConfig(opts []Option) config {
	cfg := config{logger: newNopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a Recorder or Replayer at construction time.
type Option func(*config)

// WithLogger installs l as the destination for the component's
// diagnostic output. Worker errors log at slog.LevelError; dedup and
// cache hit/miss events are not logged. Passing nil
// restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = newNopLogger()
		}
		c.logger = l
	}
}

// WithQueueCapacity sets the bounded channel capacity between
// application threads and the Recorder's worker goroutine (§5). Only
// meaningful for NewRecorder; ignored by NewReplayer.
func WithQueueCapacity(n int) Option {
	return func(c *config) { c.queueCapacity = n }
}

// WithSerializationPath sets the directory a Recorder writes standalone
// archives to on first sight of a new shader module, compute pipeline,
// or graphics pipeline fingerprint (§4.6). Only meaningful for
// NewRecorder; ignored by NewReplayer.
func WithSerializationPath(dir string) Option {
	return func(c *config) { c.serializationPath = dir }
}
