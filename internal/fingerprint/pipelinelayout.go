package fingerprint

import (
	"github.com/gogpu/pipelinearchive/internal/gpuhash"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// PipelineLayout fingerprints a pipeline layout description, resolving
// each set layout handle through lookup.
func PipelineLayout(ci *vkinfo.PipelineLayoutCreateInfo, lookup Lookup) (vkinfo.Fingerprint, error) {
	hs := gpuhash.New()
	hs.FeedU32(ci.Flags)

	hs.FeedU32(uint32(len(ci.SetLayouts)))
	for _, h := range ci.SetLayouts {
		if err := feedHandle(hs, vkinfo.KindDescriptorSetLayout, h, lookup); err != nil {
			return 0, err
		}
	}

	hs.FeedU32(uint32(len(ci.PushConstantRanges)))
	for _, r := range ci.PushConstantRanges {
		hs.FeedU32(uint32(r.StageFlags))
		hs.FeedU32(r.Offset)
		hs.FeedU32(r.Size)
	}

	return vkinfo.Fingerprint(hs.Sum64()), nil
}
