package vkinfo

import "github.com/gogpu/gputypes"

// AttachmentDescription describes one attachment slot of a render pass:
// its format, sample count, and how its contents are loaded and stored
// across the subpasses that reference it.
type AttachmentDescription struct {
	Flags   uint32
	Format  gputypes.TextureFormat
	Samples uint32

	LoadOp  AttachmentLoadOp
	StoreOp AttachmentStoreOp

	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp

	InitialLayout ImageLayout
	FinalLayout   ImageLayout
}

// AttachmentReference refers to one attachment by index within the
// render pass's Attachments slice, with the layout the referencing
// subpass expects it in.
type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

// SubpassDescription describes one subpass: which attachments it reads
// as input, writes as color, resolves to, and uses for depth/stencil.
type SubpassDescription struct {
	Flags           uint32
	PipelineBind    PipelineBindPoint
	InputRefs       []AttachmentReference
	ColorRefs       []AttachmentReference
	ResolveRefs     []AttachmentReference
	DepthStencil    *AttachmentReference
	PreserveIndices []uint32
}

// SubpassDependency describes an execution and memory dependency between
// two subpasses (or between a subpass and work outside the render pass,
// using the external-subpass index).
type SubpassDependency struct {
	SrcSubpass    uint32
	DstSubpass    uint32
	SrcStageMask  uint32
	DstStageMask  uint32
	SrcAccessMask uint32
	DstAccessMask uint32
	DependencyFlags uint32
}

// ExternalSubpass is the subpass index meaning "outside this render
// pass", used in SubpassDependency.SrcSubpass/DstSubpass.
const ExternalSubpass = ^uint32(0)

// RenderPassCreateInfo describes a render pass's attachments, subpasses,
// and the dependencies between them.
type RenderPassCreateInfo struct {
	Next any

	Flags        uint32
	Attachments  []AttachmentDescription
	Subpasses    []SubpassDescription
	Dependencies []SubpassDependency
}
