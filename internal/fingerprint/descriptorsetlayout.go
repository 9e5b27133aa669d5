package fingerprint

import (
	"github.com/gogpu/pipelinearchive/internal/gpuhash"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// DescriptorSetLayout fingerprints a descriptor set layout description.
// Immutable samplers are only fed for sampler-bearing binding types
// (§4.3).
func DescriptorSetLayout(ci *vkinfo.DescriptorSetLayoutCreateInfo, lookup Lookup) (vkinfo.Fingerprint, error) {
	hs := gpuhash.New()
	hs.FeedU32(ci.Flags)
	hs.FeedU32(uint32(len(ci.Bindings)))
	for _, b := range ci.Bindings {
		hs.FeedU32(b.Binding)
		hs.FeedU32(uint32(b.DescriptorType))
		hs.FeedU32(b.DescriptorCount)
		hs.FeedU32(uint32(b.StageFlags))

		if b.DescriptorType.IsSamplerBearing() {
			hs.FeedU32(uint32(len(b.ImmutableSamplers)))
			for _, s := range b.ImmutableSamplers {
				if err := feedHandle(hs, vkinfo.KindSampler, s, lookup); err != nil {
					return 0, err
				}
			}
		}
	}
	return vkinfo.Fingerprint(hs.Sum64()), nil
}
