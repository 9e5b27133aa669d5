package vkinfo

// PushConstantRange describes one push constant range visible to the
// given shader stages.
type PushConstantRange struct {
	StageFlags ShaderStage
	Offset     uint32
	Size       uint32
}

// PipelineLayoutCreateInfo describes the set of descriptor set layouts
// and push constant ranges a pipeline layout binds.
type PipelineLayoutCreateInfo struct {
	Next any

	Flags uint32

	// SetLayouts holds a Handle to a recorded DescriptorSetLayout for each
	// set index, in order.
	SetLayouts []Handle

	PushConstantRanges []PushConstantRange
}
