package pipelinearchive

import "github.com/gogpu/pipelinearchive/internal/replay"

// Replayer walks archives in dependency order against a Creator,
// remembering every fingerprint it has already created so re-parsing an
// archive already seen (or one sharing fingerprints with a prior
// archive) is idempotent (§8).
type Replayer struct {
	inner *replay.Replayer
}

// NewReplayer constructs a Replayer. The same instance may Parse any
// number of archives; referents shared across archives are created only
// once.
func NewReplayer(opts ...Option) *Replayer {
	cfg := newConfig(opts)
	return &Replayer{inner: replay.New(replay.Options{Logger: cfg.logger})}
}

// Parse decodes data and drives creator through every object it
// contains, in dependency order (§4.5). A reference the archive cannot
// satisfy is resolved lazily through resolver; one still unresolved
// after a recursive parse aborts with ErrUnresolvedReference.
func (r *Replayer) Parse(creator Creator, resolver Resolver, data []byte) error {
	return r.inner.Parse(creator, resolver, data)
}

// Validate walks data's dependency graph the same way Parse does, but
// against an internal no-op creator, so a CI job can confirm every
// reference an archive makes is resolvable without driving a live
// driver (SUPPLEMENTED FEATURES, replay-only dry-run mode).
func Validate(resolver Resolver, data []byte) error {
	return replay.Validate(resolver, data)
}
