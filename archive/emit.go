package archive

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/pipelinearchive/internal/archiveerr"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// Emit serializes a fully-built Document to canonical JSON. It never
// emits JSONC — jsonc is an input convenience Parse accepts, not an
// output format.
func Emit(doc *Document) ([]byte, error) {
	doc.Version = Version
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", archiveerr.ErrParseError, err)
	}
	return data, nil
}

// EmitShaderModule produces a single-object archive for one shader
// module, the unit the worker writes standalone so a pipeline archive
// can reference it lazily through a Resolver instead of inlining it
// (§4.6). appInfo is attached to the document header when non-nil; it
// is metadata only and never affects the module's fingerprint.
func EmitShaderModule(fp vkinfo.Fingerprint, ci *vkinfo.ShaderModuleCreateInfo, appInfo *AppInfo) ([]byte, error) {
	doc := &Document{
		AppInfo:       appInfo,
		ShaderModules: map[string]ShaderModule{fpHex(fp): toWireShaderModule(ci)},
	}
	return Emit(doc)
}

// closure accumulates the pipeline-layout-rooted transitive closure
// shared by compute and graphics pipeline emission: the layout itself,
// every set layout it references, and every immutable sampler those set
// layouts bake in.
type closure struct {
	layouts  map[string]PipelineLayout
	sets     map[string]SetLayout
	samplers map[string]Sampler
}

func newClosure() *closure {
	return &closure{
		layouts:  map[string]PipelineLayout{},
		sets:     map[string]SetLayout{},
		samplers: map[string]Sampler{},
	}
}

func (c *closure) addPipelineLayout(store DescriptionStore, fp vkinfo.Fingerprint) error {
	key := fpHex(fp)
	if _, ok := c.layouts[key]; ok {
		return nil
	}
	ci, ok := store.PipelineLayout(fp)
	if !ok {
		return fmt.Errorf("%w: pipeline layout %s", archiveerr.ErrUnresolvedReference, key)
	}
	c.layouts[key] = toWirePipelineLayout(ci)

	for _, h := range ci.SetLayouts {
		if err := c.addSetLayout(store, vkinfo.Fingerprint(h)); err != nil {
			return err
		}
	}
	return nil
}

func (c *closure) addSetLayout(store DescriptionStore, fp vkinfo.Fingerprint) error {
	key := fpHex(fp)
	if _, ok := c.sets[key]; ok {
		return nil
	}
	ci, ok := store.SetLayout(fp)
	if !ok {
		return fmt.Errorf("%w: descriptor set layout %s", archiveerr.ErrUnresolvedReference, key)
	}
	c.sets[key] = toWireSetLayout(ci)

	for _, b := range ci.Bindings {
		if !b.DescriptorType.IsSamplerBearing() {
			continue
		}
		for _, h := range b.ImmutableSamplers {
			if err := c.addSampler(store, vkinfo.Fingerprint(h)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *closure) addSampler(store DescriptionStore, fp vkinfo.Fingerprint) error {
	key := fpHex(fp)
	if _, ok := c.samplers[key]; ok {
		return nil
	}
	ci, ok := store.Sampler(fp)
	if !ok {
		return fmt.Errorf("%w: sampler %s", archiveerr.ErrUnresolvedReference, key)
	}
	c.samplers[key] = toWireSampler(ci)
	return nil
}

// EmitComputePipeline emits a compute pipeline together with its
// pipeline layout, referenced set layouts, and their immutable
// samplers. The stage's shader module is left as a reference only — the
// caller's Resolver supplies it on demand at replay time. appInfo is
// attached to the document header when non-nil.
func EmitComputePipeline(store DescriptionStore, fp vkinfo.Fingerprint, ci *vkinfo.ComputePipelineCreateInfo, appInfo *AppInfo) ([]byte, error) {
	c := newClosure()
	if err := c.addPipelineLayout(store, vkinfo.Fingerprint(ci.Layout)); err != nil {
		return nil, err
	}
	doc := &Document{
		AppInfo:          appInfo,
		ComputePipelines: map[string]ComputePipeline{fpHex(fp): toWireComputePipeline(ci)},
		PipelineLayouts:  c.layouts,
		SetLayouts:       c.sets,
		Samplers:         c.samplers,
	}
	return Emit(doc)
}

// EmitGraphicsPipeline emits a graphics pipeline together with its
// pipeline layout, referenced set layouts and their immutable samplers,
// and its render pass. Shader modules referenced by its stages are left
// as references only. appInfo is attached to the document header when
// non-nil.
func EmitGraphicsPipeline(store DescriptionStore, fp vkinfo.Fingerprint, ci *vkinfo.GraphicsPipelineCreateInfo, appInfo *AppInfo) ([]byte, error) {
	c := newClosure()
	if err := c.addPipelineLayout(store, vkinfo.Fingerprint(ci.Layout)); err != nil {
		return nil, err
	}

	renderPasses := map[string]RenderPass{}
	rpFP := vkinfo.Fingerprint(ci.RenderPass)
	rp, ok := store.RenderPass(rpFP)
	if !ok {
		return nil, fmt.Errorf("%w: render pass %s", archiveerr.ErrUnresolvedReference, fpHex(rpFP))
	}
	renderPasses[fpHex(rpFP)] = toWireRenderPass(rp)

	doc := &Document{
		AppInfo:           appInfo,
		GraphicsPipelines: map[string]GraphicsPipeline{fpHex(fp): toWireGraphicsPipeline(ci)},
		PipelineLayouts:   c.layouts,
		SetLayouts:        c.sets,
		Samplers:          c.samplers,
		RenderPasses:      renderPasses,
	}
	return Emit(doc)
}
