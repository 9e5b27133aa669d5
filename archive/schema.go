// Package archive implements the JSON wire format described in §4.6/4.7
// of the archive design: a version-tagged document mapping 16-character
// uppercase hex fingerprints to per-kind object descriptions, with
// binary payloads base64-encoded. Emit and Parse are exact inverses for
// any document Parse accepts.
package archive

// Version is the only archive format version this package emits or
// accepts.
const Version = 1

// Document is the top-level archive shape. Every map is keyed by a
// 16-character uppercase hex fingerprint. Keys are omitted entirely
// (via omitempty) when a kind has no entries, matching §4.6's "these
// top-level keys when present" wording.
type Document struct {
	Version int `json:"version"`

	AppInfo *AppInfo `json:"appInfo,omitempty"`

	Samplers          map[string]Sampler          `json:"samplers,omitempty"`
	SetLayouts        map[string]SetLayout        `json:"setLayouts,omitempty"`
	PipelineLayouts   map[string]PipelineLayout   `json:"pipelineLayouts,omitempty"`
	ShaderModules     map[string]ShaderModule     `json:"shaderModules,omitempty"`
	RenderPasses      map[string]RenderPass       `json:"renderPasses,omitempty"`
	ComputePipelines  map[string]ComputePipeline  `json:"computePipelines,omitempty"`
	GraphicsPipelines map[string]GraphicsPipeline `json:"graphicsPipelines,omitempty"`
}

// AppInfo is the supplemented, optional application metadata header
// (added beyond the base archive schema; never hashed, see
// Recorder.RecordApplicationInfo).
type AppInfo struct {
	EngineName      string `json:"engineName,omitempty"`
	ApplicationName string `json:"applicationName,omitempty"`
	APIVersion      uint32 `json:"apiVersion,omitempty"`
}

// Sampler is the wire form of vkinfo.SamplerCreateInfo.
type Sampler struct {
	Flags                   uint32  `json:"flags"`
	MagFilter               uint32  `json:"magFilter"`
	MinFilter               uint32  `json:"minFilter"`
	MipmapMode              uint32  `json:"mipmapMode"`
	AddressModeU            uint32  `json:"addressModeU"`
	AddressModeV            uint32  `json:"addressModeV"`
	AddressModeW            uint32  `json:"addressModeW"`
	MipLodBias              float32 `json:"mipLodBias"`
	AnisotropyEnable        bool    `json:"anisotropyEnable"`
	MaxAnisotropy           float32 `json:"maxAnisotropy"`
	CompareEnable           bool    `json:"compareEnable"`
	CompareOp               uint32  `json:"compareOp"`
	MinLod                  float32 `json:"minLod"`
	MaxLod                  float32 `json:"maxLod"`
	BorderColor             uint32  `json:"borderColor"`
	UnnormalizedCoordinates bool    `json:"unnormalizedCoordinates"`
}

// DescriptorSetLayoutBinding is the wire form of
// vkinfo.DescriptorSetLayoutBinding. ImmutableSamplers holds hex
// fingerprint strings, present only for sampler-bearing binding types.
type DescriptorSetLayoutBinding struct {
	Binding           uint32   `json:"binding"`
	DescriptorType    uint32   `json:"descriptorType"`
	DescriptorCount   uint32   `json:"descriptorCount"`
	StageFlags        uint32   `json:"stageFlags"`
	ImmutableSamplers []string `json:"immutableSamplers,omitempty"`
}

// SetLayout is the wire form of vkinfo.DescriptorSetLayoutCreateInfo.
type SetLayout struct {
	Flags    uint32                       `json:"flags"`
	Bindings []DescriptorSetLayoutBinding `json:"bindings"`
}

// PushConstantRange is the wire form of vkinfo.PushConstantRange.
type PushConstantRange struct {
	StageFlags uint32 `json:"stageFlags"`
	Offset     uint32 `json:"offset"`
	Size       uint32 `json:"size"`
}

// PipelineLayout is the wire form of vkinfo.PipelineLayoutCreateInfo.
// SetLayouts holds hex fingerprint strings, one per set index.
type PipelineLayout struct {
	Flags              uint32              `json:"flags"`
	SetLayouts         []string            `json:"setLayouts"`
	PushConstantRanges []PushConstantRange `json:"pushConstantRanges,omitempty"`
}

// ShaderModule is the wire form of vkinfo.ShaderModuleCreateInfo. Code
// is base64-encoded SPIR-V.
type ShaderModule struct {
	Flags uint32 `json:"flags"`
	Code  string `json:"code"`
}

// AttachmentDescription is the wire form of vkinfo.AttachmentDescription.
type AttachmentDescription struct {
	Flags          uint32 `json:"flags"`
	Format         uint32 `json:"format"`
	Samples        uint32 `json:"samples"`
	LoadOp         uint32 `json:"loadOp"`
	StoreOp        uint32 `json:"storeOp"`
	StencilLoadOp  uint32 `json:"stencilLoadOp"`
	StencilStoreOp uint32 `json:"stencilStoreOp"`
	InitialLayout  uint32 `json:"initialLayout"`
	FinalLayout    uint32 `json:"finalLayout"`
}

// AttachmentReference is the wire form of vkinfo.AttachmentReference.
type AttachmentReference struct {
	Attachment uint32 `json:"attachment"`
	Layout     uint32 `json:"layout"`
}

// SubpassDescription is the wire form of vkinfo.SubpassDescription.
type SubpassDescription struct {
	Flags           uint32                `json:"flags"`
	PipelineBind    uint32                `json:"pipelineBindPoint"`
	InputRefs       []AttachmentReference `json:"inputAttachments,omitempty"`
	ColorRefs       []AttachmentReference `json:"colorAttachments,omitempty"`
	ResolveRefs     []AttachmentReference `json:"resolveAttachments,omitempty"`
	DepthStencil    *AttachmentReference  `json:"depthStencilAttachment,omitempty"`
	PreserveIndices []uint32              `json:"preserveAttachments,omitempty"`
}

// SubpassDependency is the wire form of vkinfo.SubpassDependency.
type SubpassDependency struct {
	SrcSubpass      uint32 `json:"srcSubpass"`
	DstSubpass      uint32 `json:"dstSubpass"`
	SrcStageMask    uint32 `json:"srcStageMask"`
	DstStageMask    uint32 `json:"dstStageMask"`
	SrcAccessMask   uint32 `json:"srcAccessMask"`
	DstAccessMask   uint32 `json:"dstAccessMask"`
	DependencyFlags uint32 `json:"dependencyFlags"`
}

// RenderPass is the wire form of vkinfo.RenderPassCreateInfo.
type RenderPass struct {
	Flags        uint32                  `json:"flags"`
	Attachments  []AttachmentDescription `json:"attachments,omitempty"`
	Subpasses    []SubpassDescription    `json:"subpasses"`
	Dependencies []SubpassDependency     `json:"dependencies,omitempty"`
}

// SpecializationMapEntry is the wire form of vkinfo.SpecializationMapEntry.
type SpecializationMapEntry struct {
	ConstantID uint32 `json:"constantID"`
	Offset     uint32 `json:"offset"`
	Size       uint32 `json:"size"`
}

// SpecializationInfo is the wire form of vkinfo.SpecializationInfo. Data
// is base64-encoded.
type SpecializationInfo struct {
	MapEntries []SpecializationMapEntry `json:"mapEntries,omitempty"`
	Data       string                   `json:"data,omitempty"`
}

// ShaderStage is the wire form of vkinfo.PipelineShaderStageCreateInfo.
// Module holds a hex fingerprint string.
type ShaderStage struct {
	Flags          uint32               `json:"flags"`
	Stage          uint32               `json:"stage"`
	Module         string               `json:"module"`
	Name           string               `json:"name"`
	Specialization *SpecializationInfo  `json:"specializationInfo,omitempty"`
}

// ComputePipeline is the wire form of vkinfo.ComputePipelineCreateInfo.
// Layout and BasePipelineHandle hold hex fingerprint strings.
type ComputePipeline struct {
	Flags              uint32      `json:"flags"`
	Stage              ShaderStage `json:"stage"`
	Layout             string      `json:"layout"`
	BasePipelineHandle string      `json:"basePipelineHandle,omitempty"`
	BasePipelineIndex  int32       `json:"basePipelineIndex"`
}

// VertexInputBinding is the wire form of vkinfo.VertexInputBindingDescription.
type VertexInputBinding struct {
	Binding  uint32 `json:"binding"`
	Stride   uint32 `json:"stride"`
	StepMode uint32 `json:"inputRate"`
}

// VertexInputAttribute is the wire form of vkinfo.VertexInputAttributeDescription.
type VertexInputAttribute struct {
	Location uint32 `json:"location"`
	Binding  uint32 `json:"binding"`
	Format   uint32 `json:"format"`
	Offset   uint32 `json:"offset"`
}

// VertexInputState is the wire form of vkinfo.PipelineVertexInputStateCreateInfo.
type VertexInputState struct {
	Bindings   []VertexInputBinding   `json:"bindings,omitempty"`
	Attributes []VertexInputAttribute `json:"attributes,omitempty"`
}

// InputAssemblyState is the wire form of vkinfo.PipelineInputAssemblyStateCreateInfo.
type InputAssemblyState struct {
	Topology               uint32 `json:"topology"`
	PrimitiveRestartEnable bool   `json:"primitiveRestartEnable"`
}

// Viewport is the wire form of vkinfo.Viewport.
type Viewport struct {
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Width    float32 `json:"width"`
	Height   float32 `json:"height"`
	MinDepth float32 `json:"minDepth"`
	MaxDepth float32 `json:"maxDepth"`
}

// Rect2D is the wire form of vkinfo.Rect2D.
type Rect2D struct {
	OffsetX int32  `json:"offsetX"`
	OffsetY int32  `json:"offsetY"`
	Width   uint32 `json:"width"`
	Height  uint32 `json:"height"`
}

// ViewportState is the wire form of vkinfo.PipelineViewportStateCreateInfo.
type ViewportState struct {
	Viewports []Viewport `json:"viewports,omitempty"`
	Scissors  []Rect2D   `json:"scissors,omitempty"`
}

// RasterizationState is the wire form of
// vkinfo.PipelineRasterizationStateCreateInfo.
type RasterizationState struct {
	DepthClampEnable        bool    `json:"depthClampEnable"`
	RasterizerDiscardEnable bool    `json:"rasterizerDiscardEnable"`
	PolygonMode             uint32  `json:"polygonMode"`
	CullMode                uint32  `json:"cullMode"`
	FrontFace               uint32  `json:"frontFace"`
	DepthBiasEnable         bool    `json:"depthBiasEnable"`
	DepthBiasConstantFactor float32 `json:"depthBiasConstantFactor"`
	DepthBiasClamp          float32 `json:"depthBiasClamp"`
	DepthBiasSlopeFactor    float32 `json:"depthBiasSlopeFactor"`
	LineWidth               float32 `json:"lineWidth"`
}

// MultisampleState is the wire form of
// vkinfo.PipelineMultisampleStateCreateInfo.
type MultisampleState struct {
	RasterizationSamples  uint32   `json:"rasterizationSamples"`
	SampleShadingEnable   bool     `json:"sampleShadingEnable"`
	MinSampleShading      float32  `json:"minSampleShading"`
	SampleMask            []uint32 `json:"sampleMask,omitempty"`
	AlphaToCoverageEnable bool     `json:"alphaToCoverageEnable"`
	AlphaToOneEnable      bool     `json:"alphaToOneEnable"`
}

// StencilOpState is the wire form of vkinfo.StencilOpState.
type StencilOpState struct {
	FailOp      uint32 `json:"failOp"`
	PassOp      uint32 `json:"passOp"`
	DepthFailOp uint32 `json:"depthFailOp"`
	CompareOp   uint32 `json:"compareOp"`
	CompareMask uint32 `json:"compareMask"`
	WriteMask   uint32 `json:"writeMask"`
	Reference   uint32 `json:"reference"`
}

// DepthStencilState is the wire form of
// vkinfo.PipelineDepthStencilStateCreateInfo.
type DepthStencilState struct {
	DepthTestEnable       bool           `json:"depthTestEnable"`
	DepthWriteEnable      bool           `json:"depthWriteEnable"`
	DepthCompareOp        uint32         `json:"depthCompareOp"`
	DepthBoundsTestEnable bool           `json:"depthBoundsTestEnable"`
	StencilTestEnable     bool           `json:"stencilTestEnable"`
	Front                 StencilOpState `json:"front"`
	Back                  StencilOpState `json:"back"`
	MinDepthBounds        float32        `json:"minDepthBounds"`
	MaxDepthBounds        float32        `json:"maxDepthBounds"`
}

// ColorBlendAttachment is the wire form of
// vkinfo.PipelineColorBlendAttachmentState.
type ColorBlendAttachment struct {
	BlendEnable         bool   `json:"blendEnable"`
	SrcColorBlendFactor uint32 `json:"srcColorBlendFactor"`
	DstColorBlendFactor uint32 `json:"dstColorBlendFactor"`
	ColorBlendOp        uint32 `json:"colorBlendOp"`
	SrcAlphaBlendFactor uint32 `json:"srcAlphaBlendFactor"`
	DstAlphaBlendFactor uint32 `json:"dstAlphaBlendFactor"`
	AlphaBlendOp        uint32 `json:"alphaBlendOp"`
	ColorWriteMask      uint32 `json:"colorWriteMask"`
}

// ColorBlendState is the wire form of
// vkinfo.PipelineColorBlendStateCreateInfo.
type ColorBlendState struct {
	LogicOpEnable  bool                   `json:"logicOpEnable"`
	LogicOp        uint32                 `json:"logicOp"`
	Attachments    []ColorBlendAttachment `json:"attachments,omitempty"`
	BlendConstants [4]float32             `json:"blendConstants"`
}

// DynamicState is the wire form of vkinfo.PipelineDynamicStateCreateInfo.
type DynamicState struct {
	DynamicStates []uint32 `json:"dynamicStates,omitempty"`
}

// GraphicsPipeline is the wire form of vkinfo.GraphicsPipelineCreateInfo.
// Layout, RenderPass, and BasePipelineHandle hold hex fingerprint
// strings.
type GraphicsPipeline struct {
	Flags              uint32              `json:"flags"`
	Stages             []ShaderStage       `json:"stages"`
	VertexInputState   VertexInputState    `json:"vertexInputState"`
	InputAssemblyState InputAssemblyState  `json:"inputAssemblyState"`
	TessellationState  *uint32             `json:"patchControlPoints,omitempty"`
	ViewportState      *ViewportState      `json:"viewportState,omitempty"`
	RasterizationState RasterizationState  `json:"rasterizationState"`
	MultisampleState   *MultisampleState   `json:"multisampleState,omitempty"`
	DepthStencilState  *DepthStencilState  `json:"depthStencilState,omitempty"`
	ColorBlendState    *ColorBlendState    `json:"colorBlendState,omitempty"`
	DynamicState       *DynamicState       `json:"dynamicState,omitempty"`
	Layout             string              `json:"layout"`
	RenderPass         string              `json:"renderPass"`
	Subpass            uint32              `json:"subpass"`
	BasePipelineHandle string              `json:"basePipelineHandle,omitempty"`
	BasePipelineIndex  int32               `json:"basePipelineIndex"`
}
