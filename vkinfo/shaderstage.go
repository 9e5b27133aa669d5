package vkinfo

// SpecializationMapEntry maps one specialization constant ID to a byte
// range within a SpecializationInfo's Data.
type SpecializationMapEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uint32
}

// SpecializationInfo supplies constant values resolved at pipeline
// creation time rather than compiled into the shader binary.
type SpecializationInfo struct {
	MapEntries []SpecializationMapEntry
	Data       []byte
}

// PipelineShaderStageCreateInfo describes one programmable stage of a
// pipeline: which shader module runs, which entry point, and any
// specialization constants supplied for this stage specifically.
type PipelineShaderStageCreateInfo struct {
	Next any

	Flags uint32
	Stage ShaderStage

	// Module is a Handle to a recorded ShaderModule.
	Module Handle

	Name string

	// Specialization is nil when the stage has no specialization
	// constants.
	Specialization *SpecializationInfo
}
