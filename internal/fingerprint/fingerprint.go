// Package fingerprint implements the per-kind canonicalization functions
// that turn a recorded description into its content-derived identity,
// following a fixed, documented field order so two independent
// implementations agree bit-exactly on the same input (§4.3 of the
// archive format).
//
// Every function here assumes the description has already passed
// extension-chain rejection; fingerprinting does not re-check for a
// non-null Next field anywhere.
package fingerprint

import (
	"github.com/gogpu/pipelinearchive/internal/archiveerr"
	"github.com/gogpu/pipelinearchive/internal/gpuhash"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// errNotRegistered is archiveerr.ErrNotRegistered under a shorter local
// name for the base-pipeline branches that check lookup directly instead
// of going through feedHandle.
var errNotRegistered = archiveerr.ErrNotRegistered

// Lookup resolves a previously recorded handle of the given kind to its
// fingerprint. It reports false when the handle was never registered.
type Lookup func(kind vkinfo.Kind, h vkinfo.Handle) (vkinfo.Fingerprint, bool)

// feedHandle feeds a reference field: the literal 32-bit word 0 for a
// null handle, or the resolved fingerprint as a 64-bit word otherwise.
func feedHandle(hs *gpuhash.Hasher, kind vkinfo.Kind, handle vkinfo.Handle, lookup Lookup) error {
	if handle.IsNull() {
		hs.FeedNullHandle()
		return nil
	}
	fp, ok := lookup(kind, handle)
	if !ok {
		return archiveerr.ErrNotRegistered
	}
	hs.FeedHandleFingerprint(uint64(fp))
	return nil
}

// sampleMaskWords returns the number of 32-bit words a sample mask for
// the given sample count occupies: ⌈samples/32⌉.
func sampleMaskWords(samples uint32) int {
	if samples == 0 {
		return 0
	}
	return int((samples + 31) / 32)
}
