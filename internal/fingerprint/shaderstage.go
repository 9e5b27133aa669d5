package fingerprint

import (
	"github.com/gogpu/pipelinearchive/internal/gpuhash"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// feedShaderStage feeds one programmable stage: its flags, stage bit,
// resolved shader module, entry point name, and specialization info.
func feedShaderStage(hs *gpuhash.Hasher, stage *vkinfo.PipelineShaderStageCreateInfo, lookup Lookup) error {
	hs.FeedU32(stage.Flags)
	hs.FeedU32(uint32(stage.Stage))
	if err := feedHandle(hs, vkinfo.KindShaderModule, stage.Module, lookup); err != nil {
		return err
	}
	hs.FeedString(stage.Name)
	feedSpecialization(hs, stage.Specialization)
	return nil
}

// feedSpecialization feeds specialization constant data as §4.3 orders
// it: the raw bytes, then the data length as a 64-bit word, then the
// entry count, then each entry's offset, size, and constant id. A nil
// SpecializationInfo is treated as zero data and zero entries.
func feedSpecialization(hs *gpuhash.Hasher, spec *vkinfo.SpecializationInfo) {
	var data []byte
	var entries []vkinfo.SpecializationMapEntry
	if spec != nil {
		data = spec.Data
		entries = spec.MapEntries
	}

	for _, b := range data {
		hs.FeedU32(uint32(b))
	}
	hs.FeedU64(uint64(len(data)))

	hs.FeedU32(uint32(len(entries)))
	for _, e := range entries {
		hs.FeedU32(e.Offset)
		hs.FeedU64(uint64(e.Size))
		hs.FeedU32(e.ConstantID)
	}
}
