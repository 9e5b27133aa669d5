package archive

import (
	"fmt"
	"strconv"

	"github.com/gogpu/pipelinearchive/internal/archiveerr"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// fpHex formats a fingerprint as the archive's canonical 16-character
// uppercase hex key (§4.6).
func fpHex(fp vkinfo.Fingerprint) string {
	return fmt.Sprintf("%016X", uint64(fp))
}

// parseFPHex parses a 16-character uppercase hex fingerprint key.
func parseFPHex(s string) (vkinfo.Fingerprint, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid fingerprint key %q: %v", archiveerr.ErrParseError, s, err)
	}
	return vkinfo.Fingerprint(v), nil
}

// requiredHandleHex encodes a handle field the schema always populates.
func requiredHandleHex(h vkinfo.Handle) string {
	return fpHex(vkinfo.Fingerprint(h))
}

// optionalHandleHex encodes a handle field that is omitted from the
// document entirely when the handle is null.
func optionalHandleHex(h vkinfo.Handle) string {
	if h.IsNull() {
		return ""
	}
	return fpHex(vkinfo.Fingerprint(h))
}

// parseRequiredHandle parses a hex-encoded handle field that is always
// present.
func parseRequiredHandle(s string) (vkinfo.Handle, error) {
	fp, err := parseFPHex(s)
	if err != nil {
		return 0, err
	}
	return fp.AsHandle(), nil
}

// parseOptionalHandle parses a hex-encoded handle field that may be
// absent, returning the null handle for an empty string.
func parseOptionalHandle(s string) (vkinfo.Handle, error) {
	if s == "" {
		return vkinfo.NullHandle, nil
	}
	return parseRequiredHandle(s)
}
