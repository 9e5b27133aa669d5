package fingerprint

import (
	"testing"

	"github.com/gogpu/pipelinearchive/vkinfo"
)

func stageOf(module vkinfo.Handle) vkinfo.PipelineShaderStageCreateInfo {
	return vkinfo.PipelineShaderStageCreateInfo{
		Stage:  vkinfo.ShaderStageCompute,
		Module: module,
		Name:   "main",
	}
}

// TestComputePipelineNullBasePipelineIgnoresIndex documents the
// compute/graphics asymmetry named in Open Question 1: a null
// BasePipelineHandle still contributes a 0 word to the compute hash, so
// toggling BasePipelineIndex alone (with the handle left null) must not
// change the fingerprint, since the index is only fed when the handle is
// non-null.
func TestComputePipelineNullBasePipelineIgnoresIndex(t *testing.T) {
	table := newFakeTable()
	table.register(vkinfo.KindShaderModule, vkinfo.Handle(1), vkinfo.Fingerprint(7))

	ciA := vkinfo.ComputePipelineCreateInfo{Stage: stageOf(1), BasePipelineIndex: -1}
	ciB := vkinfo.ComputePipelineCreateInfo{Stage: stageOf(1), BasePipelineIndex: 5}

	fpA, err := ComputePipeline(&ciA, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fpB, err := ComputePipeline(&ciB, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fpA != fpB {
		t.Fatalf("BasePipelineIndex affected the hash despite a null BasePipelineHandle")
	}
}

func TestComputePipelineBaseFingerprintFeedsBothFingerprintAndIndex(t *testing.T) {
	table := newFakeTable()
	table.register(vkinfo.KindShaderModule, vkinfo.Handle(1), vkinfo.Fingerprint(7))
	table.register(vkinfo.KindComputePipeline, vkinfo.Handle(2), vkinfo.Fingerprint(123))

	ciA := vkinfo.ComputePipelineCreateInfo{Stage: stageOf(1), BasePipelineHandle: 2, BasePipelineIndex: 0}
	ciB := vkinfo.ComputePipelineCreateInfo{Stage: stageOf(1), BasePipelineHandle: 2, BasePipelineIndex: 1}

	fpA, err := ComputePipeline(&ciA, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fpB, err := ComputePipeline(&ciB, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fpA == fpB {
		t.Fatalf("differing BasePipelineIndex with a non-null base handle did not change the hash")
	}
}

func TestComputePipelineUnregisteredBaseFails(t *testing.T) {
	table := newFakeTable()
	table.register(vkinfo.KindShaderModule, vkinfo.Handle(1), vkinfo.Fingerprint(7))
	ci := vkinfo.ComputePipelineCreateInfo{Stage: stageOf(1), BasePipelineHandle: 999}
	if _, err := ComputePipeline(&ci, table.lookup); err == nil {
		t.Fatalf("expected an error for an unregistered base pipeline handle")
	}
}
