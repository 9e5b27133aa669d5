package pipelinearchive

import "github.com/gogpu/pipelinearchive/internal/replay"

// Resolver hands a Replayer the raw bytes of another archive likely to
// contain a referent the current archive lacks (a base pipeline, a
// shader module emitted standalone). A nil or empty return means "not
// found", which Parse turns into ErrUnresolvedReference (§6).
type Resolver = replay.Resolver
