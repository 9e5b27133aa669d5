package vkinfo

// ComputePipelineCreateInfo describes a single-stage compute pipeline.
type ComputePipelineCreateInfo struct {
	Next any

	Flags uint32
	Stage PipelineShaderStageCreateInfo

	// Layout is a Handle to a recorded PipelineLayout.
	Layout Handle

	// BasePipelineHandle, when non-null, is a Handle to another recorded
	// ComputePipeline this one derives from. Unlike GraphicsPipelineCreateInfo,
	// a null base pipeline handle here is fed to the fingerprint the same
	// way as any other handle field (see the fingerprint package's
	// compute/graphics asymmetry note).
	BasePipelineHandle Handle
	BasePipelineIndex  int32
}
