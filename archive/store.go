package archive

import "github.com/gogpu/pipelinearchive/vkinfo"

// DescriptionStore gives the emitter read access to every recorded
// description by fingerprint, so a per-pipeline emission can pull in its
// transitive closure (§4.6) without the archive package depending on
// the recorder's concrete table types.
type DescriptionStore interface {
	Sampler(fp vkinfo.Fingerprint) (*vkinfo.SamplerCreateInfo, bool)
	SetLayout(fp vkinfo.Fingerprint) (*vkinfo.DescriptorSetLayoutCreateInfo, bool)
	PipelineLayout(fp vkinfo.Fingerprint) (*vkinfo.PipelineLayoutCreateInfo, bool)
	ShaderModule(fp vkinfo.Fingerprint) (*vkinfo.ShaderModuleCreateInfo, bool)
	RenderPass(fp vkinfo.Fingerprint) (*vkinfo.RenderPassCreateInfo, bool)
}
