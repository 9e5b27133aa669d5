package archive

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/pipelinearchive/internal/arena"
	"github.com/gogpu/pipelinearchive/internal/archiveerr"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

func toWireSampler(ci *vkinfo.SamplerCreateInfo) Sampler {
	return Sampler{
		Flags:                   ci.Flags,
		MagFilter:               uint32(ci.MagFilter),
		MinFilter:               uint32(ci.MinFilter),
		MipmapMode:              uint32(ci.MipmapMode),
		AddressModeU:            uint32(ci.AddressModeU),
		AddressModeV:            uint32(ci.AddressModeV),
		AddressModeW:            uint32(ci.AddressModeW),
		MipLodBias:              ci.MipLodBias,
		AnisotropyEnable:        ci.AnisotropyEnable,
		MaxAnisotropy:           ci.MaxAnisotropy,
		CompareEnable:           ci.CompareEnable,
		CompareOp:               uint32(ci.CompareOp),
		MinLod:                  ci.MinLod,
		MaxLod:                  ci.MaxLod,
		BorderColor:             uint32(ci.BorderColor),
		UnnormalizedCoordinates: ci.UnnormalizedCoordinates,
	}
}

func fromWireSampler(w Sampler) *vkinfo.SamplerCreateInfo {
	return &vkinfo.SamplerCreateInfo{
		Flags:                   w.Flags,
		MagFilter:               vkinfo.Filter(w.MagFilter),
		MinFilter:               vkinfo.Filter(w.MinFilter),
		MipmapMode:              vkinfo.MipmapMode(w.MipmapMode),
		AddressModeU:            vkinfo.AddressMode(w.AddressModeU),
		AddressModeV:            vkinfo.AddressMode(w.AddressModeV),
		AddressModeW:            vkinfo.AddressMode(w.AddressModeW),
		MipLodBias:              w.MipLodBias,
		AnisotropyEnable:        w.AnisotropyEnable,
		MaxAnisotropy:           w.MaxAnisotropy,
		CompareEnable:           w.CompareEnable,
		CompareOp:               vkinfo.CompareOp(w.CompareOp),
		MinLod:                  w.MinLod,
		MaxLod:                  w.MaxLod,
		BorderColor:             vkinfo.BorderColor(w.BorderColor),
		UnnormalizedCoordinates: w.UnnormalizedCoordinates,
	}
}

func toWireSetLayout(ci *vkinfo.DescriptorSetLayoutCreateInfo) SetLayout {
	bindings := make([]DescriptorSetLayoutBinding, len(ci.Bindings))
	for i, b := range ci.Bindings {
		wb := DescriptorSetLayoutBinding{
			Binding:         b.Binding,
			DescriptorType:  uint32(b.DescriptorType),
			DescriptorCount: b.DescriptorCount,
			StageFlags:      uint32(b.StageFlags),
		}
		if b.DescriptorType.IsSamplerBearing() {
			wb.ImmutableSamplers = make([]string, len(b.ImmutableSamplers))
			for j, s := range b.ImmutableSamplers {
				wb.ImmutableSamplers[j] = requiredHandleHex(s)
			}
		}
		bindings[i] = wb
	}
	return SetLayout{Flags: ci.Flags, Bindings: bindings}
}

func fromWireSetLayout(w SetLayout, a *arena.Allocator) (*vkinfo.DescriptorSetLayoutCreateInfo, error) {
	bindings := arena.AllocSlice[vkinfo.DescriptorSetLayoutBinding](a, len(w.Bindings))
	for i, wb := range w.Bindings {
		b := vkinfo.DescriptorSetLayoutBinding{
			Binding:         wb.Binding,
			DescriptorType:  vkinfo.DescriptorType(wb.DescriptorType),
			DescriptorCount: wb.DescriptorCount,
			StageFlags:      vkinfo.ShaderStage(wb.StageFlags),
		}
		if len(wb.ImmutableSamplers) > 0 {
			b.ImmutableSamplers = arena.AllocSlice[vkinfo.Handle](a, len(wb.ImmutableSamplers))
			for j, s := range wb.ImmutableSamplers {
				h, err := parseRequiredHandle(s)
				if err != nil {
					return nil, err
				}
				b.ImmutableSamplers[j] = h
			}
		}
		bindings[i] = b
	}
	return &vkinfo.DescriptorSetLayoutCreateInfo{Flags: w.Flags, Bindings: bindings}, nil
}

func toWirePipelineLayout(ci *vkinfo.PipelineLayoutCreateInfo) PipelineLayout {
	sets := make([]string, len(ci.SetLayouts))
	for i, h := range ci.SetLayouts {
		sets[i] = requiredHandleHex(h)
	}
	ranges := make([]PushConstantRange, len(ci.PushConstantRanges))
	for i, r := range ci.PushConstantRanges {
		ranges[i] = PushConstantRange{StageFlags: uint32(r.StageFlags), Offset: r.Offset, Size: r.Size}
	}
	return PipelineLayout{Flags: ci.Flags, SetLayouts: sets, PushConstantRanges: ranges}
}

func fromWirePipelineLayout(w PipelineLayout, a *arena.Allocator) (*vkinfo.PipelineLayoutCreateInfo, error) {
	sets := arena.AllocSlice[vkinfo.Handle](a, len(w.SetLayouts))
	for i, s := range w.SetLayouts {
		h, err := parseRequiredHandle(s)
		if err != nil {
			return nil, err
		}
		sets[i] = h
	}
	ranges := arena.AllocSlice[vkinfo.PushConstantRange](a, len(w.PushConstantRanges))
	for i, r := range w.PushConstantRanges {
		ranges[i] = vkinfo.PushConstantRange{StageFlags: vkinfo.ShaderStage(r.StageFlags), Offset: r.Offset, Size: r.Size}
	}
	return &vkinfo.PipelineLayoutCreateInfo{Flags: w.Flags, SetLayouts: sets, PushConstantRanges: ranges}, nil
}

func toWireShaderModule(ci *vkinfo.ShaderModuleCreateInfo) ShaderModule {
	return ShaderModule{Flags: ci.Flags, Code: encodeBinary(ci.Code)}
}

func fromWireShaderModule(w ShaderModule, a *arena.Allocator) (*vkinfo.ShaderModuleCreateInfo, error) {
	code, err := decodeBinary(w.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: shader module code: %v", archiveerr.ErrParseError, err)
	}
	return &vkinfo.ShaderModuleCreateInfo{Flags: w.Flags, Code: a.DupBytes(code)}, nil
}

func toWireRenderPass(ci *vkinfo.RenderPassCreateInfo) RenderPass {
	attachments := make([]AttachmentDescription, len(ci.Attachments))
	for i, a := range ci.Attachments {
		attachments[i] = AttachmentDescription{
			Flags: a.Flags, Format: uint32(a.Format), Samples: a.Samples,
			LoadOp: uint32(a.LoadOp), StoreOp: uint32(a.StoreOp),
			StencilLoadOp: uint32(a.StencilLoadOp), StencilStoreOp: uint32(a.StencilStoreOp),
			InitialLayout: uint32(a.InitialLayout), FinalLayout: uint32(a.FinalLayout),
		}
	}
	subpasses := make([]SubpassDescription, len(ci.Subpasses))
	for i, s := range ci.Subpasses {
		ws := SubpassDescription{
			Flags:           s.Flags,
			PipelineBind:    uint32(s.PipelineBind),
			InputRefs:       toWireAttachmentRefs(s.InputRefs),
			ColorRefs:       toWireAttachmentRefs(s.ColorRefs),
			ResolveRefs:     toWireAttachmentRefs(s.ResolveRefs),
			PreserveIndices: s.PreserveIndices,
		}
		if s.DepthStencil != nil {
			ws.DepthStencil = &AttachmentReference{Attachment: s.DepthStencil.Attachment, Layout: uint32(s.DepthStencil.Layout)}
		}
		subpasses[i] = ws
	}
	deps := make([]SubpassDependency, len(ci.Dependencies))
	for i, d := range ci.Dependencies {
		deps[i] = SubpassDependency{
			SrcSubpass: d.SrcSubpass, DstSubpass: d.DstSubpass,
			SrcStageMask: d.SrcStageMask, DstStageMask: d.DstStageMask,
			SrcAccessMask: d.SrcAccessMask, DstAccessMask: d.DstAccessMask,
			DependencyFlags: d.DependencyFlags,
		}
	}
	return RenderPass{Flags: ci.Flags, Attachments: attachments, Subpasses: subpasses, Dependencies: deps}
}

func toWireAttachmentRefs(refs []vkinfo.AttachmentReference) []AttachmentReference {
	if len(refs) == 0 {
		return nil
	}
	out := make([]AttachmentReference, len(refs))
	for i, r := range refs {
		out[i] = AttachmentReference{Attachment: r.Attachment, Layout: uint32(r.Layout)}
	}
	return out
}

func fromWireAttachmentRefs(a *arena.Allocator, refs []AttachmentReference) []vkinfo.AttachmentReference {
	if len(refs) == 0 {
		return nil
	}
	out := arena.AllocSlice[vkinfo.AttachmentReference](a, len(refs))
	for i, r := range refs {
		out[i] = vkinfo.AttachmentReference{Attachment: r.Attachment, Layout: vkinfo.ImageLayout(r.Layout)}
	}
	return out
}

func fromWireRenderPass(w RenderPass, a *arena.Allocator) (*vkinfo.RenderPassCreateInfo, error) {
	attachments := arena.AllocSlice[vkinfo.AttachmentDescription](a, len(w.Attachments))
	for i, at := range w.Attachments {
		attachments[i] = vkinfo.AttachmentDescription{
			Flags: at.Flags, Format: gputypes.TextureFormat(at.Format), Samples: at.Samples,
			LoadOp: vkinfo.AttachmentLoadOp(at.LoadOp), StoreOp: vkinfo.AttachmentStoreOp(at.StoreOp),
			StencilLoadOp: vkinfo.AttachmentLoadOp(at.StencilLoadOp), StencilStoreOp: vkinfo.AttachmentStoreOp(at.StencilStoreOp),
			InitialLayout: vkinfo.ImageLayout(at.InitialLayout), FinalLayout: vkinfo.ImageLayout(at.FinalLayout),
		}
	}
	subpasses := arena.AllocSlice[vkinfo.SubpassDescription](a, len(w.Subpasses))
	for i, s := range w.Subpasses {
		sp := vkinfo.SubpassDescription{
			Flags:           s.Flags,
			PipelineBind:    vkinfo.PipelineBindPoint(s.PipelineBind),
			InputRefs:       fromWireAttachmentRefs(a, s.InputRefs),
			ColorRefs:       fromWireAttachmentRefs(a, s.ColorRefs),
			ResolveRefs:     fromWireAttachmentRefs(a, s.ResolveRefs),
			PreserveIndices: arena.DupSlice(a, s.PreserveIndices),
		}
		if s.DepthStencil != nil {
			ds := arena.Alloc[vkinfo.AttachmentReference](a)
			ds.Attachment = s.DepthStencil.Attachment
			ds.Layout = vkinfo.ImageLayout(s.DepthStencil.Layout)
			sp.DepthStencil = ds
		}
		subpasses[i] = sp
	}
	deps := arena.AllocSlice[vkinfo.SubpassDependency](a, len(w.Dependencies))
	for i, d := range w.Dependencies {
		deps[i] = vkinfo.SubpassDependency{
			SrcSubpass: d.SrcSubpass, DstSubpass: d.DstSubpass,
			SrcStageMask: d.SrcStageMask, DstStageMask: d.DstStageMask,
			SrcAccessMask: d.SrcAccessMask, DstAccessMask: d.DstAccessMask,
			DependencyFlags: d.DependencyFlags,
		}
	}
	return &vkinfo.RenderPassCreateInfo{Flags: w.Flags, Attachments: attachments, Subpasses: subpasses, Dependencies: deps}, nil
}

func toWireShaderStage(s *vkinfo.PipelineShaderStageCreateInfo) ShaderStage {
	ws := ShaderStage{
		Flags:  s.Flags,
		Stage:  uint32(s.Stage),
		Module: requiredHandleHex(s.Module),
		Name:   s.Name,
	}
	if s.Specialization != nil {
		entries := make([]SpecializationMapEntry, len(s.Specialization.MapEntries))
		for i, e := range s.Specialization.MapEntries {
			entries[i] = SpecializationMapEntry{ConstantID: e.ConstantID, Offset: e.Offset, Size: e.Size}
		}
		ws.Specialization = &SpecializationInfo{MapEntries: entries, Data: encodeBinary(s.Specialization.Data)}
	}
	return ws
}

func fromWireShaderStage(w ShaderStage, a *arena.Allocator) (vkinfo.PipelineShaderStageCreateInfo, error) {
	module, err := parseRequiredHandle(w.Module)
	if err != nil {
		return vkinfo.PipelineShaderStageCreateInfo{}, err
	}
	stage := vkinfo.PipelineShaderStageCreateInfo{
		Flags:  w.Flags,
		Stage:  vkinfo.ShaderStage(w.Stage),
		Module: module,
		Name:   a.DupString(w.Name),
	}
	if w.Specialization != nil {
		data, err := decodeBinary(w.Specialization.Data)
		if err != nil {
			return vkinfo.PipelineShaderStageCreateInfo{}, fmt.Errorf("%w: specialization data: %v", archiveerr.ErrParseError, err)
		}
		entries := arena.AllocSlice[vkinfo.SpecializationMapEntry](a, len(w.Specialization.MapEntries))
		for i, e := range w.Specialization.MapEntries {
			entries[i] = vkinfo.SpecializationMapEntry{ConstantID: e.ConstantID, Offset: e.Offset, Size: e.Size}
		}
		stage.Specialization = &vkinfo.SpecializationInfo{MapEntries: entries, Data: a.DupBytes(data)}
	}
	return stage, nil
}

func toWireComputePipeline(ci *vkinfo.ComputePipelineCreateInfo) ComputePipeline {
	return ComputePipeline{
		Flags:              ci.Flags,
		Stage:              toWireShaderStage(&ci.Stage),
		Layout:             requiredHandleHex(ci.Layout),
		BasePipelineHandle: optionalHandleHex(ci.BasePipelineHandle),
		BasePipelineIndex:  ci.BasePipelineIndex,
	}
}

func fromWireComputePipeline(w ComputePipeline, a *arena.Allocator) (*vkinfo.ComputePipelineCreateInfo, error) {
	stage, err := fromWireShaderStage(w.Stage, a)
	if err != nil {
		return nil, err
	}
	layout, err := parseRequiredHandle(w.Layout)
	if err != nil {
		return nil, err
	}
	base, err := parseOptionalHandle(w.BasePipelineHandle)
	if err != nil {
		return nil, err
	}
	return &vkinfo.ComputePipelineCreateInfo{
		Flags: w.Flags, Stage: stage, Layout: layout,
		BasePipelineHandle: base, BasePipelineIndex: w.BasePipelineIndex,
	}, nil
}

func toWireGraphicsPipeline(ci *vkinfo.GraphicsPipelineCreateInfo) GraphicsPipeline {
	stages := make([]ShaderStage, len(ci.Stages))
	for i := range ci.Stages {
		stages[i] = toWireShaderStage(&ci.Stages[i])
	}

	bindings := make([]VertexInputBinding, len(ci.VertexInputState.Bindings))
	for i, b := range ci.VertexInputState.Bindings {
		bindings[i] = VertexInputBinding{Binding: b.Binding, Stride: b.Stride, StepMode: uint32(b.StepMode)}
	}
	attrs := make([]VertexInputAttribute, len(ci.VertexInputState.Attributes))
	for i, at := range ci.VertexInputState.Attributes {
		attrs[i] = VertexInputAttribute{Location: at.Location, Binding: at.Binding, Format: uint32(at.Format), Offset: at.Offset}
	}

	w := GraphicsPipeline{
		Flags:  ci.Flags,
		Stages: stages,
		VertexInputState: VertexInputState{
			Bindings: bindings, Attributes: attrs,
		},
		InputAssemblyState: InputAssemblyState{
			Topology: uint32(ci.InputAssemblyState.Topology), PrimitiveRestartEnable: ci.InputAssemblyState.PrimitiveRestartEnable,
		},
		RasterizationState: RasterizationState{
			DepthClampEnable: ci.RasterizationState.DepthClampEnable, RasterizerDiscardEnable: ci.RasterizationState.RasterizerDiscardEnable,
			PolygonMode: uint32(ci.RasterizationState.PolygonMode), CullMode: uint32(ci.RasterizationState.CullMode), FrontFace: uint32(ci.RasterizationState.FrontFace),
			DepthBiasEnable: ci.RasterizationState.DepthBiasEnable, DepthBiasConstantFactor: ci.RasterizationState.DepthBiasConstantFactor,
			DepthBiasClamp: ci.RasterizationState.DepthBiasClamp, DepthBiasSlopeFactor: ci.RasterizationState.DepthBiasSlopeFactor,
			LineWidth: ci.RasterizationState.LineWidth,
		},
		Layout:             requiredHandleHex(ci.Layout),
		RenderPass:         requiredHandleHex(ci.RenderPass),
		Subpass:            ci.Subpass,
		BasePipelineHandle: optionalHandleHex(ci.BasePipelineHandle),
		BasePipelineIndex:  ci.BasePipelineIndex,
	}

	if ci.TessellationState != nil {
		pcp := ci.TessellationState.PatchControlPoints
		w.TessellationState = &pcp
	}
	if ci.ViewportState != nil {
		vps := make([]Viewport, len(ci.ViewportState.Viewports))
		for i, v := range ci.ViewportState.Viewports {
			vps[i] = Viewport{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height, MinDepth: v.MinDepth, MaxDepth: v.MaxDepth}
		}
		scs := make([]Rect2D, len(ci.ViewportState.Scissors))
		for i, s := range ci.ViewportState.Scissors {
			scs[i] = Rect2D{OffsetX: s.OffsetX, OffsetY: s.OffsetY, Width: s.Width, Height: s.Height}
		}
		w.ViewportState = &ViewportState{Viewports: vps, Scissors: scs}
	}
	if ci.MultisampleState != nil {
		ms := ci.MultisampleState
		w.MultisampleState = &MultisampleState{
			RasterizationSamples: ms.RasterizationSamples, SampleShadingEnable: ms.SampleShadingEnable,
			MinSampleShading: ms.MinSampleShading, SampleMask: ms.SampleMask,
			AlphaToCoverageEnable: ms.AlphaToCoverageEnable, AlphaToOneEnable: ms.AlphaToOneEnable,
		}
	}
	if ci.DepthStencilState != nil {
		ds := ci.DepthStencilState
		w.DepthStencilState = &DepthStencilState{
			DepthTestEnable: ds.DepthTestEnable, DepthWriteEnable: ds.DepthWriteEnable, DepthCompareOp: uint32(ds.DepthCompareOp),
			DepthBoundsTestEnable: ds.DepthBoundsTestEnable, StencilTestEnable: ds.StencilTestEnable,
			Front: toWireStencilOpState(ds.Front), Back: toWireStencilOpState(ds.Back),
			MinDepthBounds: ds.MinDepthBounds, MaxDepthBounds: ds.MaxDepthBounds,
		}
	}
	if ci.ColorBlendState != nil {
		cb := ci.ColorBlendState
		atts := make([]ColorBlendAttachment, len(cb.Attachments))
		for i, at := range cb.Attachments {
			atts[i] = ColorBlendAttachment{
				BlendEnable: at.BlendEnable, SrcColorBlendFactor: uint32(at.SrcColorBlendFactor), DstColorBlendFactor: uint32(at.DstColorBlendFactor),
				ColorBlendOp: uint32(at.ColorBlendOp), SrcAlphaBlendFactor: uint32(at.SrcAlphaBlendFactor), DstAlphaBlendFactor: uint32(at.DstAlphaBlendFactor),
				AlphaBlendOp: uint32(at.AlphaBlendOp), ColorWriteMask: uint32(at.ColorWriteMask),
			}
		}
		w.ColorBlendState = &ColorBlendState{
			LogicOpEnable: cb.LogicOpEnable, LogicOp: uint32(cb.LogicOp), Attachments: atts, BlendConstants: cb.BlendConstants,
		}
	}
	if ci.DynamicState != nil {
		states := make([]uint32, len(ci.DynamicState.DynamicStates))
		for i, d := range ci.DynamicState.DynamicStates {
			states[i] = uint32(d)
		}
		w.DynamicState = &DynamicState{DynamicStates: states}
	}

	return w
}

func toWireStencilOpState(s vkinfo.StencilOpState) StencilOpState {
	return StencilOpState{
		FailOp: uint32(s.FailOp), PassOp: uint32(s.PassOp), DepthFailOp: uint32(s.DepthFailOp), CompareOp: uint32(s.CompareOp),
		CompareMask: s.CompareMask, WriteMask: s.WriteMask, Reference: s.Reference,
	}
}

func fromWireStencilOpState(s StencilOpState) vkinfo.StencilOpState {
	return vkinfo.StencilOpState{
		FailOp: vkinfo.StencilOp(s.FailOp), PassOp: vkinfo.StencilOp(s.PassOp), DepthFailOp: vkinfo.StencilOp(s.DepthFailOp),
		CompareOp: vkinfo.CompareOp(s.CompareOp), CompareMask: s.CompareMask, WriteMask: s.WriteMask, Reference: s.Reference,
	}
}

func fromWireGraphicsPipeline(w GraphicsPipeline, a *arena.Allocator) (*vkinfo.GraphicsPipelineCreateInfo, error) {
	stages := arena.AllocSlice[vkinfo.PipelineShaderStageCreateInfo](a, len(w.Stages))
	for i, ws := range w.Stages {
		s, err := fromWireShaderStage(ws, a)
		if err != nil {
			return nil, err
		}
		stages[i] = s
	}

	bindings := arena.AllocSlice[vkinfo.VertexInputBindingDescription](a, len(w.VertexInputState.Bindings))
	for i, b := range w.VertexInputState.Bindings {
		bindings[i] = vkinfo.VertexInputBindingDescription{Binding: b.Binding, Stride: b.Stride, StepMode: gputypes.VertexStepMode(b.StepMode)}
	}
	attrs := arena.AllocSlice[vkinfo.VertexInputAttributeDescription](a, len(w.VertexInputState.Attributes))
	for i, at := range w.VertexInputState.Attributes {
		attrs[i] = vkinfo.VertexInputAttributeDescription{Location: at.Location, Binding: at.Binding, Format: gputypes.VertexFormat(at.Format), Offset: at.Offset}
	}

	layout, err := parseRequiredHandle(w.Layout)
	if err != nil {
		return nil, err
	}
	renderPass, err := parseRequiredHandle(w.RenderPass)
	if err != nil {
		return nil, err
	}
	basePipeline, err := parseOptionalHandle(w.BasePipelineHandle)
	if err != nil {
		return nil, err
	}

	ci := &vkinfo.GraphicsPipelineCreateInfo{
		Flags:  w.Flags,
		Stages: stages,
		VertexInputState: vkinfo.PipelineVertexInputStateCreateInfo{
			Bindings: bindings, Attributes: attrs,
		},
		InputAssemblyState: vkinfo.PipelineInputAssemblyStateCreateInfo{
			Topology: gputypes.PrimitiveTopology(w.InputAssemblyState.Topology), PrimitiveRestartEnable: w.InputAssemblyState.PrimitiveRestartEnable,
		},
		RasterizationState: vkinfo.PipelineRasterizationStateCreateInfo{
			DepthClampEnable: w.RasterizationState.DepthClampEnable, RasterizerDiscardEnable: w.RasterizationState.RasterizerDiscardEnable,
			PolygonMode: vkinfo.PolygonMode(w.RasterizationState.PolygonMode), CullMode: gputypes.CullMode(w.RasterizationState.CullMode), FrontFace: gputypes.FrontFace(w.RasterizationState.FrontFace),
			DepthBiasEnable: w.RasterizationState.DepthBiasEnable, DepthBiasConstantFactor: w.RasterizationState.DepthBiasConstantFactor,
			DepthBiasClamp: w.RasterizationState.DepthBiasClamp, DepthBiasSlopeFactor: w.RasterizationState.DepthBiasSlopeFactor,
			LineWidth: w.RasterizationState.LineWidth,
		},
		Layout:             layout,
		RenderPass:         renderPass,
		Subpass:            w.Subpass,
		BasePipelineHandle: basePipeline,
		BasePipelineIndex:  w.BasePipelineIndex,
	}

	if w.TessellationState != nil {
		ts := arena.Alloc[vkinfo.PipelineTessellationStateCreateInfo](a)
		ts.PatchControlPoints = *w.TessellationState
		ci.TessellationState = ts
	}
	if w.ViewportState != nil {
		vp := arena.Alloc[vkinfo.PipelineViewportStateCreateInfo](a)
		vp.Viewports = arena.AllocSlice[vkinfo.Viewport](a, len(w.ViewportState.Viewports))
		for i, v := range w.ViewportState.Viewports {
			vp.Viewports[i] = vkinfo.Viewport{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height, MinDepth: v.MinDepth, MaxDepth: v.MaxDepth}
		}
		vp.Scissors = arena.AllocSlice[vkinfo.Rect2D](a, len(w.ViewportState.Scissors))
		for i, s := range w.ViewportState.Scissors {
			vp.Scissors[i] = vkinfo.Rect2D{OffsetX: s.OffsetX, OffsetY: s.OffsetY, Width: s.Width, Height: s.Height}
		}
		ci.ViewportState = vp
	}
	if w.MultisampleState != nil {
		ms := arena.Alloc[vkinfo.PipelineMultisampleStateCreateInfo](a)
		ms.RasterizationSamples = w.MultisampleState.RasterizationSamples
		ms.SampleShadingEnable = w.MultisampleState.SampleShadingEnable
		ms.MinSampleShading = w.MultisampleState.MinSampleShading
		ms.SampleMask = arena.DupSlice(a, w.MultisampleState.SampleMask)
		ms.AlphaToCoverageEnable = w.MultisampleState.AlphaToCoverageEnable
		ms.AlphaToOneEnable = w.MultisampleState.AlphaToOneEnable
		ci.MultisampleState = ms
	}
	if w.DepthStencilState != nil {
		ds := arena.Alloc[vkinfo.PipelineDepthStencilStateCreateInfo](a)
		wds := w.DepthStencilState
		ds.DepthTestEnable = wds.DepthTestEnable
		ds.DepthWriteEnable = wds.DepthWriteEnable
		ds.DepthCompareOp = vkinfo.CompareOp(wds.DepthCompareOp)
		ds.DepthBoundsTestEnable = wds.DepthBoundsTestEnable
		ds.StencilTestEnable = wds.StencilTestEnable
		ds.Front = fromWireStencilOpState(wds.Front)
		ds.Back = fromWireStencilOpState(wds.Back)
		ds.MinDepthBounds = wds.MinDepthBounds
		ds.MaxDepthBounds = wds.MaxDepthBounds
		ci.DepthStencilState = ds
	}
	if w.ColorBlendState != nil {
		cb := arena.Alloc[vkinfo.PipelineColorBlendStateCreateInfo](a)
		wcb := w.ColorBlendState
		cb.LogicOpEnable = wcb.LogicOpEnable
		cb.LogicOp = vkinfo.LogicOp(wcb.LogicOp)
		cb.Attachments = arena.AllocSlice[vkinfo.PipelineColorBlendAttachmentState](a, len(wcb.Attachments))
		for i, at := range wcb.Attachments {
			cb.Attachments[i] = vkinfo.PipelineColorBlendAttachmentState{
				BlendEnable: at.BlendEnable, SrcColorBlendFactor: gputypes.BlendFactor(at.SrcColorBlendFactor), DstColorBlendFactor: gputypes.BlendFactor(at.DstColorBlendFactor),
				ColorBlendOp: gputypes.BlendOperation(at.ColorBlendOp), SrcAlphaBlendFactor: gputypes.BlendFactor(at.SrcAlphaBlendFactor), DstAlphaBlendFactor: gputypes.BlendFactor(at.DstAlphaBlendFactor),
				AlphaBlendOp: gputypes.BlendOperation(at.AlphaBlendOp), ColorWriteMask: vkinfo.ColorComponent(at.ColorWriteMask),
			}
		}
		cb.BlendConstants = wcb.BlendConstants
		ci.ColorBlendState = cb
	}
	if w.DynamicState != nil {
		dyn := arena.Alloc[vkinfo.PipelineDynamicStateCreateInfo](a)
		dyn.DynamicStates = arena.AllocSlice[vkinfo.DynamicState](a, len(w.DynamicState.DynamicStates))
		for i, d := range w.DynamicState.DynamicStates {
			dyn.DynamicStates[i] = vkinfo.DynamicState(d)
		}
		ci.DynamicState = dyn
	}

	return ci, nil
}
