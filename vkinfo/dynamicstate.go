package vkinfo

// DynamicState names one piece of graphics pipeline state deferred to
// draw time instead of baked into the pipeline object. The fingerprint
// package elides the corresponding static state field from a pipeline's
// hash whenever it is listed here (§4.3).
type DynamicState uint32

// DynamicState values.
const (
	DynamicStateViewport DynamicState = iota
	DynamicStateScissor
	DynamicStateLineWidth
	DynamicStateDepthBias
	DynamicStateBlendConstants
	DynamicStateDepthBounds
	DynamicStateStencilCompareMask
	DynamicStateStencilWriteMask
	DynamicStateStencilReference
)

// PipelineDynamicStateCreateInfo lists the dynamic states a graphics
// pipeline defers to draw time.
type PipelineDynamicStateCreateInfo struct {
	Next any

	DynamicStates []DynamicState
}

// Has reports whether s appears in the dynamic state list.
func (d *PipelineDynamicStateCreateInfo) Has(s DynamicState) bool {
	if d == nil {
		return false
	}
	for _, v := range d.DynamicStates {
		if v == s {
			return true
		}
	}
	return false
}
