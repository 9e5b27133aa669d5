package record

import (
	"github.com/gogpu/pipelinearchive/internal/archiveerr"
	"github.com/gogpu/pipelinearchive/internal/fingerprint"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// remapHandle resolves *h (an application handle of the given kind)
// through lookup and rewrites it in place to the fingerprint-shaped
// handle, leaving a null handle untouched. It is the step that turns
// a frozen description's reference fields from driver-handle space
// into fingerprint space (§4.4, step 5), applied once per description
// on first sight of its fingerprint.
func remapHandle(lookup fingerprint.Lookup, kind vkinfo.Kind, h *vkinfo.Handle) error {
	if h.IsNull() {
		return nil
	}
	fp, ok := lookup(kind, *h)
	if !ok {
		return archiveerr.ErrNotRegistered
	}
	*h = fp.AsHandle()
	return nil
}

// remapDescriptorSetLayout has no referents of its own besides each
// sampler-bearing binding's immutable samplers.
func remapDescriptorSetLayout(lookup fingerprint.Lookup, ci *vkinfo.DescriptorSetLayoutCreateInfo) error {
	for i := range ci.Bindings {
		b := &ci.Bindings[i]
		if !b.DescriptorType.IsSamplerBearing() {
			continue
		}
		for j := range b.ImmutableSamplers {
			if err := remapHandle(lookup, vkinfo.KindSampler, &b.ImmutableSamplers[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

func remapPipelineLayout(lookup fingerprint.Lookup, ci *vkinfo.PipelineLayoutCreateInfo) error {
	for i := range ci.SetLayouts {
		if err := remapHandle(lookup, vkinfo.KindDescriptorSetLayout, &ci.SetLayouts[i]); err != nil {
			return err
		}
	}
	return nil
}

func remapComputePipeline(lookup fingerprint.Lookup, ci *vkinfo.ComputePipelineCreateInfo) error {
	if err := remapHandle(lookup, vkinfo.KindShaderModule, &ci.Stage.Module); err != nil {
		return err
	}
	if err := remapHandle(lookup, vkinfo.KindPipelineLayout, &ci.Layout); err != nil {
		return err
	}
	return remapHandle(lookup, vkinfo.KindComputePipeline, &ci.BasePipelineHandle)
}

func remapGraphicsPipeline(lookup fingerprint.Lookup, ci *vkinfo.GraphicsPipelineCreateInfo) error {
	for i := range ci.Stages {
		if err := remapHandle(lookup, vkinfo.KindShaderModule, &ci.Stages[i].Module); err != nil {
			return err
		}
	}
	if err := remapHandle(lookup, vkinfo.KindPipelineLayout, &ci.Layout); err != nil {
		return err
	}
	if err := remapHandle(lookup, vkinfo.KindRenderPass, &ci.RenderPass); err != nil {
		return err
	}
	return remapHandle(lookup, vkinfo.KindGraphicsPipeline, &ci.BasePipelineHandle)
}
