package replay

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/pipelinearchive/archive"
	"github.com/gogpu/pipelinearchive/internal/archiveerr"
	"github.com/gogpu/pipelinearchive/internal/arena"
	"github.com/gogpu/pipelinearchive/internal/nopslog"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// Options configures a Replayer.
type Options struct {
	Logger *slog.Logger
}

// Replayer walks archives in dependency order against a Creator,
// remembering every fingerprint it has already created so a later
// Parse call on the same archive (or one sharing fingerprints with a
// prior archive) is idempotent (§8).
type Replayer struct {
	logger *slog.Logger
	arena  *arena.Allocator
	tables *replayedTables
}

// New starts a Replayer. The same instance may Parse any number of
// archives; referents shared across archives are created only once.
func New(opts Options) *Replayer {
	logger := opts.Logger
	if logger == nil {
		logger = nopslog.New()
	}
	return &Replayer{
		logger: logger,
		arena:  arena.New(),
		tables: newReplayedTables(),
	}
}

// Parse decodes data and drives creator through every object it
// contains, in dependency order (§4.5). A reference this archive
// cannot satisfy is resolved lazily through resolver; an unresolved
// reference after one recursive parse aborts with
// archiveerr.ErrUnresolvedReference. Errors abort the walk but leave
// every object created before the error in r's tables, so a
// later Parse call on a corrected archive can pick up the rest (§7).
func (r *Replayer) Parse(creator Creator, resolver Resolver, data []byte) error {
	decoded, err := archive.Parse(data, r.arena)
	if err != nil {
		return err
	}

	creator.SetNumShaderModule(len(decoded.ShaderModules))
	for fp, ci := range decoded.ShaderModules {
		if err := r.create(vkinfo.KindShaderModule, fp, func(out *vkinfo.Handle) bool {
			return creator.EnqueueCreateShaderModule(fp, ci, out)
		}); err != nil {
			return err
		}
	}
	creator.WaitEnqueue()

	creator.SetNumSampler(len(decoded.Samplers))
	for fp, ci := range decoded.Samplers {
		if err := r.create(vkinfo.KindSampler, fp, func(out *vkinfo.Handle) bool {
			return creator.EnqueueCreateSampler(fp, ci, out)
		}); err != nil {
			return err
		}
	}
	creator.WaitEnqueue()

	creator.SetNumDescriptorSetLayout(len(decoded.SetLayouts))
	for fp, ci := range decoded.SetLayouts {
		if err := r.resolveSetLayoutRefs(creator, resolver, ci); err != nil {
			return err
		}
		if err := r.create(vkinfo.KindDescriptorSetLayout, fp, func(out *vkinfo.Handle) bool {
			return creator.EnqueueCreateDescriptorSetLayout(fp, ci, out)
		}); err != nil {
			return err
		}
	}
	creator.WaitEnqueue()

	creator.SetNumPipelineLayout(len(decoded.PipelineLayouts))
	for fp, ci := range decoded.PipelineLayouts {
		for i := range ci.SetLayouts {
			if err := r.resolveRef(creator, resolver, vkinfo.KindDescriptorSetLayout, &ci.SetLayouts[i]); err != nil {
				return err
			}
		}
		if err := r.create(vkinfo.KindPipelineLayout, fp, func(out *vkinfo.Handle) bool {
			return creator.EnqueueCreatePipelineLayout(fp, ci, out)
		}); err != nil {
			return err
		}
	}
	creator.WaitEnqueue()

	creator.SetNumRenderPass(len(decoded.RenderPasses))
	for fp, ci := range decoded.RenderPasses {
		if err := r.create(vkinfo.KindRenderPass, fp, func(out *vkinfo.Handle) bool {
			return creator.EnqueueCreateRenderPass(fp, ci, out)
		}); err != nil {
			return err
		}
	}
	creator.WaitEnqueue()

	creator.SetNumComputePipeline(len(decoded.ComputePipelines))
	for fp, ci := range decoded.ComputePipelines {
		if err := r.resolveRef(creator, resolver, vkinfo.KindShaderModule, &ci.Stage.Module); err != nil {
			return err
		}
		if err := r.resolveRef(creator, resolver, vkinfo.KindPipelineLayout, &ci.Layout); err != nil {
			return err
		}
		if err := r.resolveRef(creator, resolver, vkinfo.KindComputePipeline, &ci.BasePipelineHandle); err != nil {
			return err
		}
		if err := r.create(vkinfo.KindComputePipeline, fp, func(out *vkinfo.Handle) bool {
			return creator.EnqueueCreateComputePipeline(fp, ci, out)
		}); err != nil {
			return err
		}
	}
	creator.WaitEnqueue()

	creator.SetNumGraphicsPipeline(len(decoded.GraphicsPipelines))
	for fp, ci := range decoded.GraphicsPipelines {
		for i := range ci.Stages {
			if err := r.resolveRef(creator, resolver, vkinfo.KindShaderModule, &ci.Stages[i].Module); err != nil {
				return err
			}
		}
		if err := r.resolveRef(creator, resolver, vkinfo.KindPipelineLayout, &ci.Layout); err != nil {
			return err
		}
		if err := r.resolveRef(creator, resolver, vkinfo.KindRenderPass, &ci.RenderPass); err != nil {
			return err
		}
		if err := r.resolveRef(creator, resolver, vkinfo.KindGraphicsPipeline, &ci.BasePipelineHandle); err != nil {
			return err
		}
		if err := r.create(vkinfo.KindGraphicsPipeline, fp, func(out *vkinfo.Handle) bool {
			return creator.EnqueueCreateGraphicsPipeline(fp, ci, out)
		}); err != nil {
			return err
		}
	}
	creator.WaitEnqueue()

	return nil
}

// create skips a fingerprint this Replayer has already created
// (idempotence, §8), otherwise invokes enqueue and records the
// resulting driver handle.
func (r *Replayer) create(kind vkinfo.Kind, fp vkinfo.Fingerprint, enqueue func(out *vkinfo.Handle) bool) error {
	if _, ok := r.tables.get(kind, fp); ok {
		return nil
	}
	var out vkinfo.Handle
	if !enqueue(&out) {
		return fmt.Errorf("%w: %s %016X", archiveerr.ErrCreateFailed, kind, uint64(fp))
	}
	r.tables.set(kind, fp, out)
	return nil
}

func (r *Replayer) resolveSetLayoutRefs(creator Creator, resolver Resolver, ci *vkinfo.DescriptorSetLayoutCreateInfo) error {
	for i := range ci.Bindings {
		b := &ci.Bindings[i]
		if !b.DescriptorType.IsSamplerBearing() {
			continue
		}
		for j := range b.ImmutableSamplers {
			if err := r.resolveRef(creator, resolver, vkinfo.KindSampler, &b.ImmutableSamplers[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveRef rewrites *href from fingerprint space to driver-handle
// space, recursively parsing another archive through resolver if the
// referent has not been created in this Replayer yet (§4.5, lazy
// cross-archive resolution). A null handle is left untouched.
func (r *Replayer) resolveRef(creator Creator, resolver Resolver, kind vkinfo.Kind, href *vkinfo.Handle) error {
	if href.IsNull() {
		return nil
	}
	fp := vkinfo.Fingerprint(*href)
	if h, ok := r.tables.get(kind, fp); ok {
		*href = h
		return nil
	}

	creator.WaitEnqueue()
	bytes := resolver.Resolve(fp)
	if len(bytes) == 0 {
		return fmt.Errorf("%w: %s %016X", archiveerr.ErrUnresolvedReference, kind, uint64(fp))
	}
	if err := r.Parse(creator, resolver, bytes); err != nil {
		return err
	}

	h, ok := r.tables.get(kind, fp)
	if !ok {
		return fmt.Errorf("%w: %s %016X", archiveerr.ErrUnresolvedReference, kind, uint64(fp))
	}
	*href = h
	return nil
}
