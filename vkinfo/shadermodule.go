package vkinfo

// ShaderModuleCreateInfo describes a compiled shader binary. Code holds
// SPIR-V words as raw bytes; the archive format stores it base64-encoded
// and the length in bytes must be a multiple of 4.
type ShaderModuleCreateInfo struct {
	Next any

	Flags uint32
	Code  []byte
}
