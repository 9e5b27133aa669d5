package vkinfo

// SamplerCreateInfo describes a sampler's filtering, addressing, and
// comparison behavior.
type SamplerCreateInfo struct {
	Next any

	Flags        uint32
	MagFilter    Filter
	MinFilter    Filter
	MipmapMode   MipmapMode
	AddressModeU AddressMode
	AddressModeV AddressMode
	AddressModeW AddressMode
	MipLodBias   float32

	AnisotropyEnable bool
	MaxAnisotropy    float32

	CompareEnable bool
	CompareOp     CompareOp

	MinLod float32
	MaxLod float32

	BorderColor             BorderColor
	UnnormalizedCoordinates bool
}
