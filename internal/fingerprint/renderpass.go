package fingerprint

import (
	"github.com/gogpu/pipelinearchive/internal/gpuhash"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// RenderPass fingerprints a render pass description. Render passes have
// no handle references to other recorded kinds.
func RenderPass(ci *vkinfo.RenderPassCreateInfo) vkinfo.Fingerprint {
	hs := gpuhash.New()
	hs.FeedU32(ci.Flags)

	hs.FeedU32(uint32(len(ci.Attachments)))
	for _, a := range ci.Attachments {
		hs.FeedU32(a.Flags)
		hs.FeedU32(uint32(a.Format))
		hs.FeedU32(a.Samples)
		hs.FeedU32(uint32(a.LoadOp))
		hs.FeedU32(uint32(a.StoreOp))
		hs.FeedU32(uint32(a.StencilLoadOp))
		hs.FeedU32(uint32(a.StencilStoreOp))
		hs.FeedU32(uint32(a.InitialLayout))
		hs.FeedU32(uint32(a.FinalLayout))
	}

	hs.FeedU32(uint32(len(ci.Subpasses)))
	for _, s := range ci.Subpasses {
		hs.FeedU32(s.Flags)
		hs.FeedU32(uint32(s.PipelineBind))
		feedAttachmentRefs(hs, s.InputRefs)
		feedAttachmentRefs(hs, s.ColorRefs)
		feedAttachmentRefs(hs, s.ResolveRefs)
		if s.DepthStencil != nil {
			hs.FeedU32(1)
			hs.FeedU32(s.DepthStencil.Attachment)
			hs.FeedU32(uint32(s.DepthStencil.Layout))
		} else {
			hs.FeedU32(0)
		}
		hs.FeedU32(uint32(len(s.PreserveIndices)))
		hs.FeedWords(s.PreserveIndices)
	}

	hs.FeedU32(uint32(len(ci.Dependencies)))
	for _, d := range ci.Dependencies {
		hs.FeedU32(d.SrcSubpass)
		hs.FeedU32(d.DstSubpass)
		hs.FeedU32(d.SrcStageMask)
		hs.FeedU32(d.DstStageMask)
		hs.FeedU32(d.SrcAccessMask)
		hs.FeedU32(d.DstAccessMask)
		hs.FeedU32(d.DependencyFlags)
	}

	return vkinfo.Fingerprint(hs.Sum64())
}

func feedAttachmentRefs(hs *gpuhash.Hasher, refs []vkinfo.AttachmentReference) {
	hs.FeedU32(uint32(len(refs)))
	for _, r := range refs {
		hs.FeedU32(r.Attachment)
		hs.FeedU32(uint32(r.Layout))
	}
}
