package vkinfo

// Filter selects the texel filtering mode for magnification/minification.
type Filter uint32

// Filter values.
const (
	FilterNearest Filter = iota
	FilterLinear
)

// MipmapMode selects how mip levels are sampled between.
type MipmapMode uint32

// MipmapMode values.
const (
	MipmapModeNearest MipmapMode = iota
	MipmapModeLinear
)

// AddressMode selects how out-of-range texture coordinates are handled.
type AddressMode uint32

// AddressMode values.
const (
	AddressModeRepeat AddressMode = iota
	AddressModeMirroredRepeat
	AddressModeClampToEdge
	AddressModeClampToBorder
	AddressModeMirrorClampToEdge
)

// BorderColor selects a predefined border color for AddressModeClampToBorder.
type BorderColor uint32

// BorderColor values.
const (
	BorderColorFloatTransparentBlack BorderColor = iota
	BorderColorIntTransparentBlack
	BorderColorFloatOpaqueBlack
	BorderColorIntOpaqueBlack
	BorderColorFloatOpaqueWhite
	BorderColorIntOpaqueWhite
)

// CompareOp is a depth/stencil/sampler comparison function. It mirrors
// [github.com/gogpu/gputypes.CompareFunction]'s set of operations but is
// defined locally for fields the spec's archive schema names distinctly
// from texture sampling (sampler compare-enable, stencil ops), keeping
// the wire field name and the Vulkan-shaped operation set stable
// independent of gputypes' own evolution.
type CompareOp uint32

// CompareOp values.
const (
	CompareOpNever CompareOp = iota
	CompareOpLess
	CompareOpEqual
	CompareOpLessOrEqual
	CompareOpGreater
	CompareOpNotEqual
	CompareOpGreaterOrEqual
	CompareOpAlways
)

// DescriptorType identifies what kind of resource a descriptor set layout
// binding describes.
type DescriptorType uint32

// DescriptorType values. The *Sampler* and *CombinedImageSampler* values
// are the "sampler-bearing" types: only bindings of these types may carry
// immutable samplers (§4.3).
const (
	DescriptorTypeSampler DescriptorType = iota
	DescriptorTypeCombinedImageSampler
	DescriptorTypeSampledImage
	DescriptorTypeStorageImage
	DescriptorTypeUniformTexelBuffer
	DescriptorTypeStorageTexelBuffer
	DescriptorTypeUniformBuffer
	DescriptorTypeStorageBuffer
	DescriptorTypeUniformBufferDynamic
	DescriptorTypeStorageBufferDynamic
	DescriptorTypeInputAttachment
)

// IsSamplerBearing reports whether a binding of this type may carry
// immutable samplers.
func (d DescriptorType) IsSamplerBearing() bool {
	return d == DescriptorTypeSampler || d == DescriptorTypeCombinedImageSampler
}

// ShaderStage is a bitmask of shader stages a pipeline stage or push
// constant range applies to.
type ShaderStage uint32

// ShaderStage bits.
const (
	ShaderStageVertex ShaderStage = 1 << iota
	ShaderStageTessellationControl
	ShaderStageTessellationEvaluation
	ShaderStageGeometry
	ShaderStageFragment
	ShaderStageCompute
)

// ImageLayout describes the layout an attachment is expected to be in at
// a particular point of a render pass.
type ImageLayout uint32

// ImageLayout values.
const (
	ImageLayoutUndefined ImageLayout = iota
	ImageLayoutGeneral
	ImageLayoutColorAttachmentOptimal
	ImageLayoutDepthStencilAttachmentOptimal
	ImageLayoutDepthStencilReadOnlyOptimal
	ImageLayoutShaderReadOnlyOptimal
	ImageLayoutTransferSrcOptimal
	ImageLayoutTransferDstOptimal
	ImageLayoutPresentSrc
)

// AttachmentLoadOp describes what a render pass does to an attachment's
// contents at the start of a subpass that uses it.
type AttachmentLoadOp uint32

// AttachmentLoadOp values.
const (
	AttachmentLoadOpLoad AttachmentLoadOp = iota
	AttachmentLoadOpClear
	AttachmentLoadOpDontCare
)

// AttachmentStoreOp describes what a render pass does to an attachment's
// contents at the end of a subpass that uses it.
type AttachmentStoreOp uint32

// AttachmentStoreOp values.
const (
	AttachmentStoreOpStore AttachmentStoreOp = iota
	AttachmentStoreOpDontCare
)

// PipelineBindPoint selects whether a subpass binds a graphics or compute
// pipeline.
type PipelineBindPoint uint32

// PipelineBindPoint values.
const (
	PipelineBindPointGraphics PipelineBindPoint = iota
	PipelineBindPointCompute
)

// PolygonMode selects how rasterization fills polygons.
type PolygonMode uint32

// PolygonMode values.
const (
	PolygonModeFill PolygonMode = iota
	PolygonModeLine
	PolygonModePoint
)

// LogicOp is a framebuffer logical operation applied instead of blending.
type LogicOp uint32

// LogicOp values.
const (
	LogicOpClear LogicOp = iota
	LogicOpAnd
	LogicOpAndReverse
	LogicOpCopy
	LogicOpAndInverted
	LogicOpNoOp
	LogicOpXor
	LogicOpOr
	LogicOpNor
	LogicOpEquivalent
	LogicOpInvert
	LogicOpOrReverse
	LogicOpCopyInverted
	LogicOpOrInverted
	LogicOpNand
	LogicOpSet
)

// StencilOp describes how a stencil test result updates the stencil
// buffer.
type StencilOp uint32

// StencilOp values.
const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementAndClamp
	StencilOpDecrementAndClamp
	StencilOpInvert
	StencilOpIncrementAndWrap
	StencilOpDecrementAndWrap
)

// ColorComponent is a bitmask selecting which color channels a blend
// attachment writes.
type ColorComponent uint32

// ColorComponent bits.
const (
	ColorComponentR ColorComponent = 1 << iota
	ColorComponentG
	ColorComponentB
	ColorComponentA
)

// ColorComponentAll writes every channel.
const ColorComponentAll = ColorComponentR | ColorComponentG | ColorComponentB | ColorComponentA
