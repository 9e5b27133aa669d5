// Package replay implements the replayer's dependency-ordered walk over
// a parsed archive: one creator call per newly-seen fingerprint, lazy
// cross-archive resolution for referents missing from the current
// archive, and idempotent re-parsing of an archive the same Replayer
// has already walked (§4.5).
package replay

import "github.com/gogpu/pipelinearchive/vkinfo"

// Creator is the capability set the replayer drives during parsing: one
// enqueue method per object kind, a count announcement per kind, and a
// synchronization point the replayer calls after each kind's entries
// are all enqueued, before moving on to a kind that may depend on them
// (§6). A concrete Creator is free to enqueue creation asynchronously,
// as long as every previously-enqueued out-handle is valid by the time
// WaitEnqueue returns.
type Creator interface {
	SetNumSampler(count int)
	SetNumDescriptorSetLayout(count int)
	SetNumPipelineLayout(count int)
	SetNumShaderModule(count int)
	SetNumRenderPass(count int)
	SetNumComputePipeline(count int)
	SetNumGraphicsPipeline(count int)

	EnqueueCreateSampler(fp vkinfo.Fingerprint, ci *vkinfo.SamplerCreateInfo, outHandle *vkinfo.Handle) bool
	EnqueueCreateDescriptorSetLayout(fp vkinfo.Fingerprint, ci *vkinfo.DescriptorSetLayoutCreateInfo, outHandle *vkinfo.Handle) bool
	EnqueueCreatePipelineLayout(fp vkinfo.Fingerprint, ci *vkinfo.PipelineLayoutCreateInfo, outHandle *vkinfo.Handle) bool
	EnqueueCreateShaderModule(fp vkinfo.Fingerprint, ci *vkinfo.ShaderModuleCreateInfo, outHandle *vkinfo.Handle) bool
	EnqueueCreateRenderPass(fp vkinfo.Fingerprint, ci *vkinfo.RenderPassCreateInfo, outHandle *vkinfo.Handle) bool
	EnqueueCreateComputePipeline(fp vkinfo.Fingerprint, ci *vkinfo.ComputePipelineCreateInfo, outHandle *vkinfo.Handle) bool
	EnqueueCreateGraphicsPipeline(fp vkinfo.Fingerprint, ci *vkinfo.GraphicsPipelineCreateInfo, outHandle *vkinfo.Handle) bool

	WaitEnqueue()
}

// Resolver hands the replayer the raw bytes of another archive likely to
// contain a referent the current archive lacks (a base pipeline, a
// shader module emitted standalone). A nil or empty return means "not
// found", which the replayer turns into UnresolvedReference (§6).
type Resolver interface {
	Resolve(fp vkinfo.Fingerprint) []byte
}
