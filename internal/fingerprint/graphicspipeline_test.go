package fingerprint

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

func baseGraphicsPipeline() vkinfo.GraphicsPipelineCreateInfo {
	return vkinfo.GraphicsPipelineCreateInfo{
		InputAssemblyState: vkinfo.PipelineInputAssemblyStateCreateInfo{Topology: 3},
		RasterizationState: vkinfo.PipelineRasterizationStateCreateInfo{LineWidth: 1},
	}
}

// TestGraphicsPipelineNullBasePipelineIgnoresIndex documents the other
// half of the asymmetry in Open Question 1: a null BasePipelineHandle
// contributes nothing at all to the graphics hash (compute feeds a 0
// placeholder word instead), so two otherwise-identical descriptions
// differing only in BasePipelineIndex (with the handle left null) must
// hash equal — the same outcome the compute test checks, since neither
// kind feeds the index without a base handle.
func TestGraphicsPipelineNullBasePipelineIgnoresIndex(t *testing.T) {
	table := newFakeTable()
	a := baseGraphicsPipeline()
	a.BasePipelineIndex = -1
	b := baseGraphicsPipeline()
	b.BasePipelineIndex = 7

	fpA, err := GraphicsPipeline(&a, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fpB, err := GraphicsPipeline(&b, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fpA != fpB {
		t.Fatalf("BasePipelineIndex affected the hash despite a null BasePipelineHandle")
	}
}

func TestGraphicsPipelineBaseFingerprintAffectsHash(t *testing.T) {
	table := newFakeTable()
	table.register(vkinfo.KindGraphicsPipeline, vkinfo.Handle(1), vkinfo.Fingerprint(999))

	withBase := baseGraphicsPipeline()
	withBase.BasePipelineHandle = 1
	withBase.BasePipelineIndex = -1

	noBase := baseGraphicsPipeline()

	fpWith, err := GraphicsPipeline(&withBase, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fpWithout, err := GraphicsPipeline(&noBase, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fpWith == fpWithout {
		t.Fatalf("a base pipeline reference did not change the fingerprint")
	}
}

// TestDynamicScissorElision is the spec's "two pipelines identical
// except in scissor rectangles, both declaring scissor dynamic" scenario
// (§8): they must hash equal.
func TestDynamicScissorElision(t *testing.T) {
	table := newFakeTable()
	dyn := &vkinfo.PipelineDynamicStateCreateInfo{DynamicStates: []vkinfo.DynamicState{vkinfo.DynamicStateScissor}}

	a := baseGraphicsPipeline()
	a.DynamicState = dyn
	a.ViewportState = &vkinfo.PipelineViewportStateCreateInfo{
		Scissors: []vkinfo.Rect2D{{Width: 100, Height: 100}},
	}

	b := baseGraphicsPipeline()
	b.DynamicState = dyn
	b.ViewportState = &vkinfo.PipelineViewportStateCreateInfo{
		Scissors: []vkinfo.Rect2D{{Width: 800, Height: 600}},
	}

	fpA, err := GraphicsPipeline(&a, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fpB, err := GraphicsPipeline(&b, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fpA != fpB {
		t.Fatalf("dynamic scissor rectangles were not elided from the fingerprint")
	}
}

// TestScissorAffectsHashWhenNotDynamic is the inverse check: without the
// dynamic declaration, differing scissor rectangles must change the
// fingerprint.
func TestScissorAffectsHashWhenNotDynamic(t *testing.T) {
	table := newFakeTable()

	a := baseGraphicsPipeline()
	a.ViewportState = &vkinfo.PipelineViewportStateCreateInfo{
		Scissors: []vkinfo.Rect2D{{Width: 100, Height: 100}},
	}
	b := baseGraphicsPipeline()
	b.ViewportState = &vkinfo.PipelineViewportStateCreateInfo{
		Scissors: []vkinfo.Rect2D{{Width: 800, Height: 600}},
	}

	fpA, err := GraphicsPipeline(&a, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fpB, err := GraphicsPipeline(&b, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fpA == fpB {
		t.Fatalf("non-dynamic scissor rectangles were elided from the fingerprint")
	}
}

// TestBlendConstantsElidedWhenDynamic verifies the
// blend-constant elision rule: a factor referencing the blend constants
// is normally hashed, but marking them dynamic elides them regardless.
func TestBlendConstantsElidedWhenDynamic(t *testing.T) {
	table := newFakeTable()

	colorBlend := func(constants [4]float32, dynamic bool) vkinfo.GraphicsPipelineCreateInfo {
		ci := baseGraphicsPipeline()
		ci.ColorBlendState = &vkinfo.PipelineColorBlendStateCreateInfo{
			Attachments: []vkinfo.PipelineColorBlendAttachmentState{{
				BlendEnable:         true,
				SrcColorBlendFactor: gputypes.BlendFactorConstant,
			}},
			BlendConstants: constants,
		}
		if dynamic {
			ci.DynamicState = &vkinfo.PipelineDynamicStateCreateInfo{
				DynamicStates: []vkinfo.DynamicState{vkinfo.DynamicStateBlendConstants},
			}
		}
		return ci
	}

	a := colorBlend([4]float32{1, 0, 0, 1}, true)
	b := colorBlend([4]float32{0, 1, 0, 1}, true)
	fpA, err := GraphicsPipeline(&a, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fpB, err := GraphicsPipeline(&b, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fpA != fpB {
		t.Fatalf("blend constants were not elided despite being declared dynamic")
	}

	c := colorBlend([4]float32{1, 0, 0, 1}, false)
	d := colorBlend([4]float32{0, 1, 0, 1}, false)
	fpC, err := GraphicsPipeline(&c, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fpD, err := GraphicsPipeline(&d, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fpC == fpD {
		t.Fatalf("referenced, non-dynamic blend constants were elided from the fingerprint")
	}
}

// TestMultisampleAbsentDiffersFromPresentZeroValue documents the Open Question 4
// decision: an absent MultisampleState hashes as a single 0 placeholder,
// distinct from any present state including an all-zero one.
func TestMultisampleAbsentDiffersFromPresentZeroValue(t *testing.T) {
	table := newFakeTable()
	absent := baseGraphicsPipeline()
	present := baseGraphicsPipeline()
	present.MultisampleState = &vkinfo.PipelineMultisampleStateCreateInfo{}

	fpAbsent, err := GraphicsPipeline(&absent, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fpPresent, err := GraphicsPipeline(&present, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fpAbsent == fpPresent {
		t.Fatalf("an absent MultisampleState hashed the same as an explicit zero-valued one")
	}
}
