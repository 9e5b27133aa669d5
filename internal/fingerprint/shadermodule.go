package fingerprint

import (
	"github.com/gogpu/pipelinearchive/internal/gpuhash"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// ShaderModule fingerprints a shader module description by its bytecode
// content, element-counted in 4-byte SPIR-V words.
func ShaderModule(ci *vkinfo.ShaderModuleCreateInfo) vkinfo.Fingerprint {
	hs := gpuhash.New()
	hs.FeedU32(ci.Flags)
	hs.FeedBytes(ci.Code, 4)
	return vkinfo.Fingerprint(hs.Sum64())
}
