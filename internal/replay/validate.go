package replay

import "github.com/gogpu/pipelinearchive/vkinfo"

// noopCreator satisfies Creator without touching any driver, letting
// Validate walk an archive's dependency graph purely to surface
// unresolved references (a CI-friendly completeness check).
type noopCreator struct{ next vkinfo.Handle }

func (c *noopCreator) handle() vkinfo.Handle {
	c.next++
	return c.next
}

func (c *noopCreator) SetNumSampler(int)             {}
func (c *noopCreator) SetNumDescriptorSetLayout(int) {}
func (c *noopCreator) SetNumPipelineLayout(int)      {}
func (c *noopCreator) SetNumShaderModule(int)        {}
func (c *noopCreator) SetNumRenderPass(int)          {}
func (c *noopCreator) SetNumComputePipeline(int)     {}
func (c *noopCreator) SetNumGraphicsPipeline(int)    {}
func (c *noopCreator) WaitEnqueue()                  {}

func (c *noopCreator) EnqueueCreateSampler(_ vkinfo.Fingerprint, _ *vkinfo.SamplerCreateInfo, out *vkinfo.Handle) bool {
	*out = c.handle()
	return true
}

func (c *noopCreator) EnqueueCreateDescriptorSetLayout(_ vkinfo.Fingerprint, _ *vkinfo.DescriptorSetLayoutCreateInfo, out *vkinfo.Handle) bool {
	*out = c.handle()
	return true
}

func (c *noopCreator) EnqueueCreatePipelineLayout(_ vkinfo.Fingerprint, _ *vkinfo.PipelineLayoutCreateInfo, out *vkinfo.Handle) bool {
	*out = c.handle()
	return true
}

func (c *noopCreator) EnqueueCreateShaderModule(_ vkinfo.Fingerprint, _ *vkinfo.ShaderModuleCreateInfo, out *vkinfo.Handle) bool {
	*out = c.handle()
	return true
}

func (c *noopCreator) EnqueueCreateRenderPass(_ vkinfo.Fingerprint, _ *vkinfo.RenderPassCreateInfo, out *vkinfo.Handle) bool {
	*out = c.handle()
	return true
}

func (c *noopCreator) EnqueueCreateComputePipeline(_ vkinfo.Fingerprint, _ *vkinfo.ComputePipelineCreateInfo, out *vkinfo.Handle) bool {
	*out = c.handle()
	return true
}

func (c *noopCreator) EnqueueCreateGraphicsPipeline(_ vkinfo.Fingerprint, _ *vkinfo.GraphicsPipelineCreateInfo, out *vkinfo.Handle) bool {
	*out = c.handle()
	return true
}

// Validate runs the same dependency-order walk Parse does, against an
// internal no-op creator, so a CI job can confirm an archive's
// references are all resolvable without driving a real driver.
func Validate(resolver Resolver, data []byte) error {
	r := New(Options{})
	c := &noopCreator{}
	return r.Parse(c, resolver, data)
}
