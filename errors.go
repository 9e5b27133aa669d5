package pipelinearchive

import "github.com/gogpu/pipelinearchive/internal/archiveerr"

// Sentinel errors callers can errors.Is/errors.As against, regardless
// of which internal layer raised them.
var (
	ErrExtensionNotSupported = archiveerr.ErrExtensionNotSupported
	ErrNotRegistered         = archiveerr.ErrNotRegistered
	ErrUnresolvedReference   = archiveerr.ErrUnresolvedReference
	ErrCreateFailed          = archiveerr.ErrCreateFailed
	ErrParseError            = archiveerr.ErrParseError
	ErrIOError               = archiveerr.ErrIOError
)
