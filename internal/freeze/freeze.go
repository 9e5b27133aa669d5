// Package freeze deep-copies application-supplied descriptions into an
// arena so the Recorder can let the application free its originals the
// moment a record call returns (§4.4, step 2). Every exported function
// also performs the one-time extension-chain rejection the recorder's
// contract requires before any copying happens.
package freeze

import (
	"github.com/gogpu/pipelinearchive/internal/archiveerr"
	"github.com/gogpu/pipelinearchive/internal/arena"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// rejectExtension checks every sub-state's own Next field exactly once,
// rather than folding one state's check into an unrelated branch (§9,
// Open Question 3).
func rejectExtension(nexts ...any) error {
	for _, n := range nexts {
		if n != nil {
			return archiveerr.ErrExtensionNotSupported
		}
	}
	return nil
}

// Sampler deep-copies a sampler description. Samplers have no slice or
// string fields, so the struct copy alone is already a deep copy.
func Sampler(a *arena.Allocator, src *vkinfo.SamplerCreateInfo) (*vkinfo.SamplerCreateInfo, error) {
	if err := rejectExtension(src.Next); err != nil {
		return nil, err
	}
	dst := arena.Alloc[vkinfo.SamplerCreateInfo](a)
	*dst = *src
	dst.Next = nil
	return dst, nil
}

// DescriptorSetLayout deep-copies a descriptor set layout description,
// including each binding's immutable sampler array.
func DescriptorSetLayout(a *arena.Allocator, src *vkinfo.DescriptorSetLayoutCreateInfo) (*vkinfo.DescriptorSetLayoutCreateInfo, error) {
	if err := rejectExtension(src.Next); err != nil {
		return nil, err
	}
	dst := arena.Alloc[vkinfo.DescriptorSetLayoutCreateInfo](a)
	dst.Flags = src.Flags
	dst.Bindings = arena.DupSlice(a, src.Bindings)
	for i := range dst.Bindings {
		dst.Bindings[i].ImmutableSamplers = arena.DupSlice(a, dst.Bindings[i].ImmutableSamplers)
	}
	return dst, nil
}

// PipelineLayout deep-copies a pipeline layout description.
func PipelineLayout(a *arena.Allocator, src *vkinfo.PipelineLayoutCreateInfo) (*vkinfo.PipelineLayoutCreateInfo, error) {
	if err := rejectExtension(src.Next); err != nil {
		return nil, err
	}
	dst := arena.Alloc[vkinfo.PipelineLayoutCreateInfo](a)
	dst.Flags = src.Flags
	dst.SetLayouts = arena.DupSlice(a, src.SetLayouts)
	dst.PushConstantRanges = arena.DupSlice(a, src.PushConstantRanges)
	return dst, nil
}

// ShaderModule deep-copies a shader module description. Code is
// duplicated bit-exact; the recorder's caller is responsible for sizing
// it to a multiple of 4 (invariant 5).
func ShaderModule(a *arena.Allocator, src *vkinfo.ShaderModuleCreateInfo) (*vkinfo.ShaderModuleCreateInfo, error) {
	if err := rejectExtension(src.Next); err != nil {
		return nil, err
	}
	dst := arena.Alloc[vkinfo.ShaderModuleCreateInfo](a)
	dst.Flags = src.Flags
	dst.Code = a.DupBytes(src.Code)
	return dst, nil
}

// shaderStage deep-copies one programmable stage, including its entry
// point name and specialization data.
func shaderStage(a *arena.Allocator, src *vkinfo.PipelineShaderStageCreateInfo) (vkinfo.PipelineShaderStageCreateInfo, error) {
	if err := rejectExtension(src.Next); err != nil {
		return vkinfo.PipelineShaderStageCreateInfo{}, err
	}
	dst := vkinfo.PipelineShaderStageCreateInfo{
		Flags:  src.Flags,
		Stage:  src.Stage,
		Module: src.Module,
		Name:   a.DupString(src.Name),
	}
	if src.Specialization != nil {
		spec := arena.Alloc[vkinfo.SpecializationInfo](a)
		spec.MapEntries = arena.DupSlice(a, src.Specialization.MapEntries)
		spec.Data = a.DupBytes(src.Specialization.Data)
		dst.Specialization = spec
	}
	return dst, nil
}

// RenderPass deep-copies a render pass description, including every
// subpass's attachment reference arrays and optional depth-stencil
// reference.
func RenderPass(a *arena.Allocator, src *vkinfo.RenderPassCreateInfo) (*vkinfo.RenderPassCreateInfo, error) {
	if err := rejectExtension(src.Next); err != nil {
		return nil, err
	}
	dst := arena.Alloc[vkinfo.RenderPassCreateInfo](a)
	dst.Flags = src.Flags
	dst.Attachments = arena.DupSlice(a, src.Attachments)
	dst.Dependencies = arena.DupSlice(a, src.Dependencies)

	dst.Subpasses = arena.DupSlice(a, src.Subpasses)
	for i, sp := range src.Subpasses {
		dst.Subpasses[i].InputRefs = arena.DupSlice(a, sp.InputRefs)
		dst.Subpasses[i].ColorRefs = arena.DupSlice(a, sp.ColorRefs)
		dst.Subpasses[i].ResolveRefs = arena.DupSlice(a, sp.ResolveRefs)
		dst.Subpasses[i].PreserveIndices = arena.DupSlice(a, sp.PreserveIndices)
		if sp.DepthStencil != nil {
			ds := arena.Alloc[vkinfo.AttachmentReference](a)
			*ds = *sp.DepthStencil
			dst.Subpasses[i].DepthStencil = ds
		}
	}
	return dst, nil
}

// ComputePipeline deep-copies a compute pipeline description.
func ComputePipeline(a *arena.Allocator, src *vkinfo.ComputePipelineCreateInfo) (*vkinfo.ComputePipelineCreateInfo, error) {
	if err := rejectExtension(src.Next); err != nil {
		return nil, err
	}
	stage, err := shaderStage(a, &src.Stage)
	if err != nil {
		return nil, err
	}
	dst := arena.Alloc[vkinfo.ComputePipelineCreateInfo](a)
	dst.Flags = src.Flags
	dst.Stage = stage
	dst.Layout = src.Layout
	dst.BasePipelineHandle = src.BasePipelineHandle
	dst.BasePipelineIndex = src.BasePipelineIndex
	return dst, nil
}

// GraphicsPipeline deep-copies a graphics pipeline description,
// including every optional sub-state and every stage's specialization
// data.
func GraphicsPipeline(a *arena.Allocator, src *vkinfo.GraphicsPipelineCreateInfo) (*vkinfo.GraphicsPipelineCreateInfo, error) {
	nexts := []any{src.Next, src.VertexInputState.Next, src.InputAssemblyState.Next, src.RasterizationState.Next}
	if src.TessellationState != nil {
		nexts = append(nexts, src.TessellationState.Next)
	}
	if src.ViewportState != nil {
		nexts = append(nexts, src.ViewportState.Next)
	}
	if src.MultisampleState != nil {
		nexts = append(nexts, src.MultisampleState.Next)
	}
	if src.DepthStencilState != nil {
		nexts = append(nexts, src.DepthStencilState.Next)
	}
	if src.ColorBlendState != nil {
		nexts = append(nexts, src.ColorBlendState.Next)
	}
	if src.DynamicState != nil {
		nexts = append(nexts, src.DynamicState.Next)
	}
	for i := range src.Stages {
		nexts = append(nexts, src.Stages[i].Next)
	}
	if err := rejectExtension(nexts...); err != nil {
		return nil, err
	}

	dst := arena.Alloc[vkinfo.GraphicsPipelineCreateInfo](a)
	dst.Flags = src.Flags

	dst.Stages = arena.AllocSlice[vkinfo.PipelineShaderStageCreateInfo](a, len(src.Stages))
	for i := range src.Stages {
		stage, err := shaderStage(a, &src.Stages[i])
		if err != nil {
			return nil, err
		}
		dst.Stages[i] = stage
	}

	dst.VertexInputState.Bindings = arena.DupSlice(a, src.VertexInputState.Bindings)
	dst.VertexInputState.Attributes = arena.DupSlice(a, src.VertexInputState.Attributes)
	dst.InputAssemblyState = src.InputAssemblyState
	dst.InputAssemblyState.Next = nil

	if src.TessellationState != nil {
		ts := arena.Alloc[vkinfo.PipelineTessellationStateCreateInfo](a)
		ts.PatchControlPoints = src.TessellationState.PatchControlPoints
		dst.TessellationState = ts
	}

	if src.ViewportState != nil {
		vp := arena.Alloc[vkinfo.PipelineViewportStateCreateInfo](a)
		vp.Viewports = arena.DupSlice(a, src.ViewportState.Viewports)
		vp.Scissors = arena.DupSlice(a, src.ViewportState.Scissors)
		dst.ViewportState = vp
	}

	dst.RasterizationState = src.RasterizationState
	dst.RasterizationState.Next = nil

	if src.MultisampleState != nil {
		ms := arena.Alloc[vkinfo.PipelineMultisampleStateCreateInfo](a)
		*ms = *src.MultisampleState
		ms.Next = nil
		ms.SampleMask = arena.DupSlice(a, src.MultisampleState.SampleMask)
		dst.MultisampleState = ms
	}

	if src.DepthStencilState != nil {
		ds := arena.Alloc[vkinfo.PipelineDepthStencilStateCreateInfo](a)
		*ds = *src.DepthStencilState
		ds.Next = nil
		dst.DepthStencilState = ds
	}

	if src.ColorBlendState != nil {
		cb := arena.Alloc[vkinfo.PipelineColorBlendStateCreateInfo](a)
		cb.LogicOpEnable = src.ColorBlendState.LogicOpEnable
		cb.LogicOp = src.ColorBlendState.LogicOp
		cb.BlendConstants = src.ColorBlendState.BlendConstants
		cb.Attachments = arena.DupSlice(a, src.ColorBlendState.Attachments)
		dst.ColorBlendState = cb
	}

	if src.DynamicState != nil {
		dyn := arena.Alloc[vkinfo.PipelineDynamicStateCreateInfo](a)
		dyn.DynamicStates = arena.DupSlice(a, src.DynamicState.DynamicStates)
		dst.DynamicState = dyn
	}

	dst.Layout = src.Layout
	dst.RenderPass = src.RenderPass
	dst.Subpass = src.Subpass
	dst.BasePipelineHandle = src.BasePipelineHandle
	dst.BasePipelineIndex = src.BasePipelineIndex

	return dst, nil
}
