// Package pipelinearchive records Vulkan-style pipeline object creation
// calls into content-addressed archives and replays those archives
// against a live driver, deduplicating identical objects by fingerprint
// instead of by the handle an application happened to use.
//
// A Recorder observes an application's create calls and writes one
// standalone archive per newly-seen shader module, compute pipeline,
// and graphics pipeline fingerprint. A Replayer walks an archive back
// in dependency order against a Creator, resolving references a given
// archive doesn't itself satisfy through a Resolver.
package pipelinearchive
