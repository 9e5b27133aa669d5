package fingerprint

import (
	"github.com/gogpu/pipelinearchive/internal/gpuhash"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// ComputePipeline fingerprints a compute pipeline description.
//
// When BasePipelineHandle is null, a single 0 placeholder word is fed
// regardless — unlike GraphicsPipeline, which feeds nothing at all in
// that case. This asymmetry is intentional and preserved exactly (§9,
// Open Question 1).
func ComputePipeline(ci *vkinfo.ComputePipelineCreateInfo, lookup Lookup) (vkinfo.Fingerprint, error) {
	hs := gpuhash.New()
	hs.FeedU32(ci.Flags)

	if err := feedShaderStage(hs, &ci.Stage, lookup); err != nil {
		return 0, err
	}

	if err := feedHandle(hs, vkinfo.KindPipelineLayout, ci.Layout, lookup); err != nil {
		return 0, err
	}

	if ci.BasePipelineHandle.IsNull() {
		hs.FeedU32(0)
	} else {
		fp, ok := lookup(vkinfo.KindComputePipeline, ci.BasePipelineHandle)
		if !ok {
			return 0, errNotRegistered
		}
		hs.FeedHandleFingerprint(uint64(fp))
		hs.FeedU32(uint32(ci.BasePipelineIndex))
	}

	return vkinfo.Fingerprint(hs.Sum64()), nil
}
