// Package archiveerr holds the sentinel errors shared by every internal
// package and re-exported at the root so callers can errors.Is/errors.As
// against a single set of values regardless of which layer raised them.
package archiveerr

import "errors"

var (
	// ErrExtensionNotSupported is returned when a description or any
	// sub-structure carries a non-null extension chain.
	ErrExtensionNotSupported = errors.New("pipelinearchive: extension chain not supported")

	// ErrNotRegistered is returned when a handle has no fingerprint
	// mapping yet, either from an accessor call or because a description
	// references a handle the recorder never saw.
	ErrNotRegistered = errors.New("pipelinearchive: handle not registered")

	// ErrUnresolvedReference is returned when a parsed reference cannot
	// be satisfied even after consulting the resolver.
	ErrUnresolvedReference = errors.New("pipelinearchive: unresolved reference")

	// ErrCreateFailed is returned when the creator interface reports
	// failure for an enqueued creation.
	ErrCreateFailed = errors.New("pipelinearchive: creation failed")

	// ErrParseError is returned for malformed JSON or an unsupported
	// archive version.
	ErrParseError = errors.New("pipelinearchive: malformed archive")

	// ErrIOError is returned when an archive file could not be opened or
	// written. The recorder only ever logs this error; it is exported so
	// callers constructing their own serialization paths can recognize
	// it if they choose to inspect logs programmatically.
	ErrIOError = errors.New("pipelinearchive: archive io failure")
)
