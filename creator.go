package pipelinearchive

import "github.com/gogpu/pipelinearchive/internal/replay"

// Creator is the capability set a Replayer drives during Parse: one
// enqueue method per object kind, a count announcement per kind, and a
// synchronization point called after each kind's entries are all
// enqueued, before moving on to a kind that may depend on them (§6). A
// concrete Creator is free to enqueue creation asynchronously, as long
// as every previously-enqueued out-handle is valid by the time
// WaitEnqueue returns.
type Creator = replay.Creator
