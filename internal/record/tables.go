package record

import (
	"sync"

	"github.com/gogpu/pipelinearchive/vkinfo"
)

// kindTable holds one object kind's two bimap-like mappings (§3):
// handle → fingerprint, populated whenever the application records that
// handle, and fingerprint → frozen description, populated once per
// distinct fingerprint (first-writer-wins, invariant 2).
//
// Both maps are mutated only from the recorder's worker goroutine.
// The mutex exists so get_hash_for_<kind> and the archive emitter's
// DescriptionStore reads from other goroutines are race-free; the
// quiescence discipline around when those reads are meaningful is the
// caller's responsibility (§5), not this type's.
type kindTable[T any] struct {
	mu         sync.RWMutex
	handleToFP map[vkinfo.Handle]vkinfo.Fingerprint
	fpToDesc   map[vkinfo.Fingerprint]T
}

func newKindTable[T any]() *kindTable[T] {
	return &kindTable[T]{
		handleToFP: make(map[vkinfo.Handle]vkinfo.Fingerprint),
		fpToDesc:   make(map[vkinfo.Fingerprint]T),
	}
}

func (t *kindTable[T]) registerHandle(h vkinfo.Handle, fp vkinfo.Fingerprint) {
	t.mu.Lock()
	t.handleToFP[h] = fp
	t.mu.Unlock()
}

func (t *kindTable[T]) resolve(h vkinfo.Handle) (vkinfo.Fingerprint, bool) {
	t.mu.RLock()
	fp, ok := t.handleToFP[h]
	t.mu.RUnlock()
	return fp, ok
}

// insertIfAbsent stores desc under fp only if no description is stored
// there yet, reporting whether this call was the first sight of fp.
func (t *kindTable[T]) insertIfAbsent(fp vkinfo.Fingerprint, desc T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.fpToDesc[fp]; ok {
		return false
	}
	t.fpToDesc[fp] = desc
	return true
}

func (t *kindTable[T]) get(fp vkinfo.Fingerprint) (T, bool) {
	t.mu.RLock()
	v, ok := t.fpToDesc[fp]
	t.mu.RUnlock()
	return v, ok
}

// tables bundles one kindTable per object kind. It implements
// fingerprint.Lookup (as Resolve) and archive.DescriptionStore directly,
// so both the hashing layer and the emitter read through the same
// storage without an adapter type.
type tables struct {
	samplers          *kindTable[*vkinfo.SamplerCreateInfo]
	setLayouts        *kindTable[*vkinfo.DescriptorSetLayoutCreateInfo]
	pipelineLayouts   *kindTable[*vkinfo.PipelineLayoutCreateInfo]
	shaderModules     *kindTable[*vkinfo.ShaderModuleCreateInfo]
	renderPasses      *kindTable[*vkinfo.RenderPassCreateInfo]
	computePipelines  *kindTable[*vkinfo.ComputePipelineCreateInfo]
	graphicsPipelines *kindTable[*vkinfo.GraphicsPipelineCreateInfo]
}

func newTables() *tables {
	return &tables{
		samplers:          newKindTable[*vkinfo.SamplerCreateInfo](),
		setLayouts:        newKindTable[*vkinfo.DescriptorSetLayoutCreateInfo](),
		pipelineLayouts:   newKindTable[*vkinfo.PipelineLayoutCreateInfo](),
		shaderModules:     newKindTable[*vkinfo.ShaderModuleCreateInfo](),
		renderPasses:      newKindTable[*vkinfo.RenderPassCreateInfo](),
		computePipelines:  newKindTable[*vkinfo.ComputePipelineCreateInfo](),
		graphicsPipelines: newKindTable[*vkinfo.GraphicsPipelineCreateInfo](),
	}
}

// Resolve implements fingerprint.Lookup.
func (t *tables) Resolve(kind vkinfo.Kind, h vkinfo.Handle) (vkinfo.Fingerprint, bool) {
	switch kind {
	case vkinfo.KindSampler:
		return t.samplers.resolve(h)
	case vkinfo.KindDescriptorSetLayout:
		return t.setLayouts.resolve(h)
	case vkinfo.KindPipelineLayout:
		return t.pipelineLayouts.resolve(h)
	case vkinfo.KindShaderModule:
		return t.shaderModules.resolve(h)
	case vkinfo.KindRenderPass:
		return t.renderPasses.resolve(h)
	case vkinfo.KindComputePipeline:
		return t.computePipelines.resolve(h)
	case vkinfo.KindGraphicsPipeline:
		return t.graphicsPipelines.resolve(h)
	default:
		return 0, false
	}
}

// Sampler implements archive.DescriptionStore.
func (t *tables) Sampler(fp vkinfo.Fingerprint) (*vkinfo.SamplerCreateInfo, bool) { return t.samplers.get(fp) }

// SetLayout implements archive.DescriptionStore.
func (t *tables) SetLayout(fp vkinfo.Fingerprint) (*vkinfo.DescriptorSetLayoutCreateInfo, bool) {
	return t.setLayouts.get(fp)
}

// PipelineLayout implements archive.DescriptionStore.
func (t *tables) PipelineLayout(fp vkinfo.Fingerprint) (*vkinfo.PipelineLayoutCreateInfo, bool) {
	return t.pipelineLayouts.get(fp)
}

// ShaderModule implements archive.DescriptionStore.
func (t *tables) ShaderModule(fp vkinfo.Fingerprint) (*vkinfo.ShaderModuleCreateInfo, bool) {
	return t.shaderModules.get(fp)
}

// RenderPass implements archive.DescriptionStore.
func (t *tables) RenderPass(fp vkinfo.Fingerprint) (*vkinfo.RenderPassCreateInfo, bool) {
	return t.renderPasses.get(fp)
}
