package vkinfo

// Description is implemented by every create-info type's pointer form.
// The recorder's worker dispatches on the concrete type via a type
// switch rather than an explicit leading-tag field, so a reimplementer
// adding an eighth kind gets a compile error at every switch instead of
// a silently-ignored tag value.
type Description interface {
	ObjectKind() Kind
}

// ObjectKind identifies a SamplerCreateInfo as KindSampler.
func (*SamplerCreateInfo) ObjectKind() Kind { return KindSampler }

// ObjectKind identifies a DescriptorSetLayoutCreateInfo as KindDescriptorSetLayout.
func (*DescriptorSetLayoutCreateInfo) ObjectKind() Kind { return KindDescriptorSetLayout }

// ObjectKind identifies a PipelineLayoutCreateInfo as KindPipelineLayout.
func (*PipelineLayoutCreateInfo) ObjectKind() Kind { return KindPipelineLayout }

// ObjectKind identifies a ShaderModuleCreateInfo as KindShaderModule.
func (*ShaderModuleCreateInfo) ObjectKind() Kind { return KindShaderModule }

// ObjectKind identifies a RenderPassCreateInfo as KindRenderPass.
func (*RenderPassCreateInfo) ObjectKind() Kind { return KindRenderPass }

// ObjectKind identifies a ComputePipelineCreateInfo as KindComputePipeline.
func (*ComputePipelineCreateInfo) ObjectKind() Kind { return KindComputePipeline }

// ObjectKind identifies a GraphicsPipelineCreateInfo as KindGraphicsPipeline.
func (*GraphicsPipelineCreateInfo) ObjectKind() Kind { return KindGraphicsPipeline }
