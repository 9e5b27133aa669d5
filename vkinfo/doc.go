// Package vkinfo defines the by-value create-info descriptions the
// recorder accepts and the replayer reconstructs: samplers, descriptor set
// layouts, pipeline layouts, shader modules, render passes, compute
// pipelines, and graphics pipelines.
//
// Every description is a plain value type with no methods that mutate
// shared state — the recorder deep-copies it into an arena, and the
// replayer decodes a fresh one from an archive. Fields that reference
// another object (a descriptor set layout inside a pipeline layout, a
// shader module inside a pipeline stage, a base pipeline) are typed as
// [Handle]: before recording they hold an application
// handle, and after the recorder freezes the description they hold the
// referent's fingerprint encoded as a handle-shaped value — the archive's
// handle space is fingerprint space, not driver space.
//
// Enumerated fields reuse [github.com/gogpu/gputypes] wherever the
// underlying concept already exists there: attachment texture formats,
// blend factors and operations, primitive topology, vertex formats,
// vertex step mode, front-face winding, and cull mode all carry the
// gputypes enum type directly rather than a parallel local one.
//
// Sampler/stencil compare functions deliberately stay local as CompareOp
// rather than gputypes.CompareFunction: the wire schema names this field
// distinctly from texture sampling, and keeping it local decouples the
// archive's on-disk enum values from gputypes' own. Concepts gputypes has
// no equivalent for because they are specific to an explicit-render-pass,
// descriptor-set GPU API — sampler filtering and address modes,
// descriptor types, shader stage bits, image layouts, attachment load/
// store ops, dynamic state, polygon/logic ops — are defined locally as
// plain uint32 enums in the same style.
//
// A non-nil Next field on any description or sub-structure marks a
// driver extension chain; the recorder rejects recording such a
// description (ExtensionNotSupported) rather than attempt to preserve an
// opaque, driver-specific chain.
package vkinfo
