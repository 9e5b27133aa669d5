package pipelinearchive

import (
	"github.com/gogpu/pipelinearchive/internal/record"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// Recorder observes an application's pipeline object creation calls and
// writes standalone archives for newly-seen shader modules, compute
// pipelines, and graphics pipelines (§4, §5). Every Record* method is
// safe to call concurrently from multiple application goroutines; a
// single internal worker goroutine does all fingerprinting,
// deduplication, and serialization.
type Recorder struct {
	inner *record.Recorder
}

// NewRecorder starts a Recorder and its worker goroutine. Call RecordEnd
// to drain the worker and release it.
func NewRecorder(opts ...Option) *Recorder {
	cfg := newConfig(opts)
	return &Recorder{inner: record.New(record.Options{
		Logger:            cfg.logger,
		QueueCapacity:     cfg.queueCapacity,
		SerializationPath: cfg.serializationPath,
	})}
}

// SetSerializationPath changes the directory standalone archives are
// written to. An empty path disables standalone serialization.
func (r *Recorder) SetSerializationPath(dir string) {
	r.inner.SetSerializationPath(dir)
}

// RecordApplicationInfo attaches application metadata to every archive
// written from this point on (SUPPLEMENTED FEATURES). It never affects
// fingerprinting.
func (r *Recorder) RecordApplicationInfo(engineName, applicationName string, apiVersion uint32) {
	r.inner.RecordApplicationInfo(engineName, applicationName, apiVersion)
}

// RecordSampler records a sampler creation under its application handle.
func (r *Recorder) RecordSampler(handle vkinfo.Handle, ci *vkinfo.SamplerCreateInfo) error {
	return r.inner.RecordSampler(handle, ci)
}

// RecordDescriptorSetLayout records a descriptor set layout creation
// under its application handle.
func (r *Recorder) RecordDescriptorSetLayout(handle vkinfo.Handle, ci *vkinfo.DescriptorSetLayoutCreateInfo) error {
	return r.inner.RecordDescriptorSetLayout(handle, ci)
}

// RecordPipelineLayout records a pipeline layout creation under its
// application handle.
func (r *Recorder) RecordPipelineLayout(handle vkinfo.Handle, ci *vkinfo.PipelineLayoutCreateInfo) error {
	return r.inner.RecordPipelineLayout(handle, ci)
}

// RecordShaderModule records a shader module creation under its
// application handle.
func (r *Recorder) RecordShaderModule(handle vkinfo.Handle, ci *vkinfo.ShaderModuleCreateInfo) error {
	return r.inner.RecordShaderModule(handle, ci)
}

// RecordRenderPass records a render pass creation under its application
// handle.
func (r *Recorder) RecordRenderPass(handle vkinfo.Handle, ci *vkinfo.RenderPassCreateInfo) error {
	return r.inner.RecordRenderPass(handle, ci)
}

// RecordComputePipeline records a compute pipeline creation under its
// application handle.
func (r *Recorder) RecordComputePipeline(handle vkinfo.Handle, ci *vkinfo.ComputePipelineCreateInfo) error {
	return r.inner.RecordComputePipeline(handle, ci)
}

// RecordGraphicsPipeline records a graphics pipeline creation under its
// application handle.
func (r *Recorder) RecordGraphicsPipeline(handle vkinfo.Handle, ci *vkinfo.GraphicsPipelineCreateInfo) error {
	return r.inner.RecordGraphicsPipeline(handle, ci)
}

// RecordEnd stops accepting new records, drains whatever is already
// queued, and waits for the worker goroutine to exit. It is idempotent
// and safe to call more than once.
func (r *Recorder) RecordEnd() {
	r.inner.RecordEnd()
}

// GetHashForSampler resolves a previously recorded sampler handle to its
// fingerprint (§6, get_hash_for_sampler).
func (r *Recorder) GetHashForSampler(handle vkinfo.Handle) (vkinfo.Fingerprint, error) {
	return r.inner.GetHash(vkinfo.KindSampler, handle)
}

// GetHashForDescriptorSetLayout resolves a previously recorded
// descriptor set layout handle to its fingerprint.
func (r *Recorder) GetHashForDescriptorSetLayout(handle vkinfo.Handle) (vkinfo.Fingerprint, error) {
	return r.inner.GetHash(vkinfo.KindDescriptorSetLayout, handle)
}

// GetHashForPipelineLayout resolves a previously recorded pipeline
// layout handle to its fingerprint.
func (r *Recorder) GetHashForPipelineLayout(handle vkinfo.Handle) (vkinfo.Fingerprint, error) {
	return r.inner.GetHash(vkinfo.KindPipelineLayout, handle)
}

// GetHashForShaderModule resolves a previously recorded shader module
// handle to its fingerprint.
func (r *Recorder) GetHashForShaderModule(handle vkinfo.Handle) (vkinfo.Fingerprint, error) {
	return r.inner.GetHash(vkinfo.KindShaderModule, handle)
}

// GetHashForRenderPass resolves a previously recorded render pass handle
// to its fingerprint.
func (r *Recorder) GetHashForRenderPass(handle vkinfo.Handle) (vkinfo.Fingerprint, error) {
	return r.inner.GetHash(vkinfo.KindRenderPass, handle)
}

// GetHashForComputePipeline resolves a previously recorded compute
// pipeline handle to its fingerprint.
func (r *Recorder) GetHashForComputePipeline(handle vkinfo.Handle) (vkinfo.Fingerprint, error) {
	return r.inner.GetHash(vkinfo.KindComputePipeline, handle)
}

// GetHashForGraphicsPipeline resolves a previously recorded graphics
// pipeline handle to its fingerprint.
func (r *Recorder) GetHashForGraphicsPipeline(handle vkinfo.Handle) (vkinfo.Fingerprint, error) {
	return r.inner.GetHash(vkinfo.KindGraphicsPipeline, handle)
}
