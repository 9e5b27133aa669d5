package vkinfo

// DescriptorSetLayoutBinding describes one binding slot within a
// descriptor set layout.
type DescriptorSetLayoutBinding struct {
	Binding         uint32
	DescriptorType  DescriptorType
	DescriptorCount uint32
	StageFlags      ShaderStage

	// ImmutableSamplers, when non-empty, fixes the samplers bound to this
	// slot at layout-creation time. Only valid when DescriptorType
	// IsSamplerBearing(); length must equal DescriptorCount. Each entry is
	// a Handle to a recorded Sampler.
	ImmutableSamplers []Handle
}

// DescriptorSetLayoutCreateInfo describes the binding layout of one
// descriptor set.
type DescriptorSetLayoutCreateInfo struct {
	Next any

	Flags    uint32
	Bindings []DescriptorSetLayoutBinding
}
