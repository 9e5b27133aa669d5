package replay

import "github.com/gogpu/pipelinearchive/vkinfo"

// replayedTables records, per kind, the driver handle the creator
// produced for each fingerprint this Replayer has already walked. It
// serves two purposes at once: skipping a fingerprint already created
// (idempotent re-parse, §8) and rewriting a dependent description's
// fingerprint-space reference fields into driver-handle space before
// handing it to the creator.
type replayedTables struct {
	samplers          map[vkinfo.Fingerprint]vkinfo.Handle
	setLayouts        map[vkinfo.Fingerprint]vkinfo.Handle
	pipelineLayouts   map[vkinfo.Fingerprint]vkinfo.Handle
	shaderModules     map[vkinfo.Fingerprint]vkinfo.Handle
	renderPasses      map[vkinfo.Fingerprint]vkinfo.Handle
	computePipelines  map[vkinfo.Fingerprint]vkinfo.Handle
	graphicsPipelines map[vkinfo.Fingerprint]vkinfo.Handle
}

func newReplayedTables() *replayedTables {
	return &replayedTables{
		samplers:          map[vkinfo.Fingerprint]vkinfo.Handle{},
		setLayouts:        map[vkinfo.Fingerprint]vkinfo.Handle{},
		pipelineLayouts:   map[vkinfo.Fingerprint]vkinfo.Handle{},
		shaderModules:     map[vkinfo.Fingerprint]vkinfo.Handle{},
		renderPasses:      map[vkinfo.Fingerprint]vkinfo.Handle{},
		computePipelines:  map[vkinfo.Fingerprint]vkinfo.Handle{},
		graphicsPipelines: map[vkinfo.Fingerprint]vkinfo.Handle{},
	}
}

func (t *replayedTables) mapFor(kind vkinfo.Kind) map[vkinfo.Fingerprint]vkinfo.Handle {
	switch kind {
	case vkinfo.KindSampler:
		return t.samplers
	case vkinfo.KindDescriptorSetLayout:
		return t.setLayouts
	case vkinfo.KindPipelineLayout:
		return t.pipelineLayouts
	case vkinfo.KindShaderModule:
		return t.shaderModules
	case vkinfo.KindRenderPass:
		return t.renderPasses
	case vkinfo.KindComputePipeline:
		return t.computePipelines
	case vkinfo.KindGraphicsPipeline:
		return t.graphicsPipelines
	default:
		return nil
	}
}

func (t *replayedTables) get(kind vkinfo.Kind, fp vkinfo.Fingerprint) (vkinfo.Handle, bool) {
	h, ok := t.mapFor(kind)[fp]
	return h, ok
}

func (t *replayedTables) set(kind vkinfo.Kind, fp vkinfo.Fingerprint, h vkinfo.Handle) {
	t.mapFor(kind)[fp] = h
}
