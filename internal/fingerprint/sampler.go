package fingerprint

import (
	"github.com/gogpu/pipelinearchive/internal/gpuhash"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// Sampler fingerprints a sampler description. Samplers have no reference
// fields, so no Lookup is needed.
func Sampler(ci *vkinfo.SamplerCreateInfo) vkinfo.Fingerprint {
	hs := gpuhash.New()
	hs.FeedU32(ci.Flags)
	hs.FeedU32(uint32(ci.MagFilter))
	hs.FeedU32(uint32(ci.MinFilter))
	hs.FeedU32(uint32(ci.MipmapMode))
	hs.FeedU32(uint32(ci.AddressModeU))
	hs.FeedU32(uint32(ci.AddressModeV))
	hs.FeedU32(uint32(ci.AddressModeW))
	hs.FeedFloat32(ci.MipLodBias)
	hs.FeedBool(ci.AnisotropyEnable)
	hs.FeedFloat32(ci.MaxAnisotropy)
	hs.FeedBool(ci.CompareEnable)
	hs.FeedU32(uint32(ci.CompareOp))
	hs.FeedFloat32(ci.MinLod)
	hs.FeedFloat32(ci.MaxLod)
	hs.FeedU32(uint32(ci.BorderColor))
	hs.FeedBool(ci.UnnormalizedCoordinates)
	return vkinfo.Fingerprint(hs.Sum64())
}
