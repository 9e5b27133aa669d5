package vkinfo

import "github.com/gogpu/gputypes"

// VertexInputBindingDescription describes one vertex buffer binding slot:
// its stride and whether it advances per-vertex or per-instance.
type VertexInputBindingDescription struct {
	Binding  uint32
	Stride   uint32
	StepMode gputypes.VertexStepMode
}

// VertexInputAttributeDescription describes one vertex shader input
// location sourced from a vertex buffer binding.
type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   gputypes.VertexFormat
	Offset   uint32
}

// PipelineVertexInputStateCreateInfo describes the vertex buffer layout
// a graphics pipeline consumes.
type PipelineVertexInputStateCreateInfo struct {
	Next any

	Bindings   []VertexInputBindingDescription
	Attributes []VertexInputAttributeDescription
}

// PipelineInputAssemblyStateCreateInfo describes how vertices are
// assembled into primitives.
type PipelineInputAssemblyStateCreateInfo struct {
	Next any

	Topology               gputypes.PrimitiveTopology
	PrimitiveRestartEnable bool
}

// PipelineTessellationStateCreateInfo describes the patch control point
// count for a pipeline using tessellation stages. A pipeline with no
// tessellation stages leaves this nil.
type PipelineTessellationStateCreateInfo struct {
	Next any

	PatchControlPoints uint32
}

// Viewport describes one viewport transform.
type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

// Rect2D describes an integer offset-and-extent rectangle, used for
// scissor regions.
type Rect2D struct {
	OffsetX, OffsetY int32
	Width, Height    uint32
}

// PipelineViewportStateCreateInfo describes the fixed viewports and
// scissor rectangles a pipeline uses, when not overridden by dynamic
// state.
type PipelineViewportStateCreateInfo struct {
	Next any

	Viewports []Viewport
	Scissors  []Rect2D
}

// PipelineRasterizationStateCreateInfo describes rasterizer fixed
// function state: polygon fill mode, culling, and depth bias.
type PipelineRasterizationStateCreateInfo struct {
	Next any

	DepthClampEnable        bool
	RasterizerDiscardEnable bool
	PolygonMode             PolygonMode
	CullMode                gputypes.CullMode
	FrontFace               gputypes.FrontFace

	DepthBiasEnable         bool
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32

	LineWidth float32
}

// PipelineMultisampleStateCreateInfo describes multisample
// rasterization behavior.
type PipelineMultisampleStateCreateInfo struct {
	Next any

	RasterizationSamples  uint32
	SampleShadingEnable   bool
	MinSampleShading      float32
	SampleMask            []uint32
	AlphaToCoverageEnable bool
	AlphaToOneEnable      bool
}

// StencilOpState describes one face's (front or back) stencil test
// configuration.
type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// PipelineDepthStencilStateCreateInfo describes depth and stencil test
// fixed function state.
type PipelineDepthStencilStateCreateInfo struct {
	Next any

	DepthTestEnable       bool
	DepthWriteEnable      bool
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable bool
	StencilTestEnable     bool
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

// PipelineColorBlendAttachmentState describes per-attachment blending
// for one color attachment.
type PipelineColorBlendAttachmentState struct {
	BlendEnable         bool
	SrcColorBlendFactor gputypes.BlendFactor
	DstColorBlendFactor gputypes.BlendFactor
	ColorBlendOp        gputypes.BlendOperation
	SrcAlphaBlendFactor gputypes.BlendFactor
	DstAlphaBlendFactor gputypes.BlendFactor
	AlphaBlendOp        gputypes.BlendOperation
	ColorWriteMask      ColorComponent
}

// PipelineColorBlendStateCreateInfo describes framebuffer blending
// across all color attachments, plus the optional logic-op path and the
// blend constants used when a BlendFactor references them.
//
// BlendConstants are elided from the graphics pipeline fingerprint
// whenever PipelineDynamicStateCreateInfo lists DynamicStateBlendConstants,
// since draw time supplies the real values (§4.3).
type PipelineColorBlendStateCreateInfo struct {
	Next any

	LogicOpEnable   bool
	LogicOp         LogicOp
	Attachments     []PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

// GraphicsPipelineCreateInfo describes a full graphics pipeline: its
// programmable stages and every fixed function state block.
//
// Tessellation is optional (nil when the pipeline has no tessellation
// stages); Viewport, Multisample, DepthStencil, and ColorBlend are
// required by Vulkan whenever the corresponding stage is active but are
// represented here as pointers so a pipeline that rasterizes nothing
// (e.g. RasterizerDiscardEnable) can omit them.
type GraphicsPipelineCreateInfo struct {
	Next any

	Flags  uint32
	Stages []PipelineShaderStageCreateInfo

	VertexInputState   PipelineVertexInputStateCreateInfo
	InputAssemblyState PipelineInputAssemblyStateCreateInfo
	TessellationState  *PipelineTessellationStateCreateInfo
	ViewportState      *PipelineViewportStateCreateInfo
	RasterizationState PipelineRasterizationStateCreateInfo
	MultisampleState   *PipelineMultisampleStateCreateInfo
	DepthStencilState  *PipelineDepthStencilStateCreateInfo
	ColorBlendState    *PipelineColorBlendStateCreateInfo
	DynamicState       *PipelineDynamicStateCreateInfo

	// Layout is a Handle to a recorded PipelineLayout.
	Layout Handle

	// RenderPass is a Handle to a recorded RenderPass.
	RenderPass Handle
	Subpass    uint32

	// BasePipelineHandle, when non-null, is a Handle to another recorded
	// GraphicsPipeline this one derives from. A null base pipeline handle
	// here is NOT fed to the fingerprint at all — the asymmetry with
	// ComputePipelineCreateInfo's handling of the same field is documented
	// and intentional (§9, Open Question 1).
	BasePipelineHandle Handle
	BasePipelineIndex  int32
}
