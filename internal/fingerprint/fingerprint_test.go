package fingerprint

import (
	"testing"

	"github.com/gogpu/pipelinearchive/vkinfo"
)

// fakeTable is a minimal Lookup backing store for tests.
type fakeTable map[vkinfo.Kind]map[vkinfo.Handle]vkinfo.Fingerprint

func (t fakeTable) lookup(kind vkinfo.Kind, h vkinfo.Handle) (vkinfo.Fingerprint, bool) {
	fp, ok := t[kind][h]
	return fp, ok
}

func (t fakeTable) register(kind vkinfo.Kind, h vkinfo.Handle, fp vkinfo.Fingerprint) {
	if t[kind] == nil {
		t[kind] = map[vkinfo.Handle]vkinfo.Fingerprint{}
	}
	t[kind][h] = fp
}

func newFakeTable() fakeTable {
	return fakeTable{}
}

func TestSamplerDeterministic(t *testing.T) {
	ci := vkinfo.SamplerCreateInfo{MagFilter: vkinfo.FilterLinear, MaxLod: 1000.0}
	a := Sampler(&ci)
	b := Sampler(&ci)
	if a != b {
		t.Fatalf("Sampler fingerprint not stable: %v != %v", a, b)
	}
}

func TestSamplerDistinguishesFields(t *testing.T) {
	a := Sampler(&vkinfo.SamplerCreateInfo{MaxLod: 1000.0})
	b := Sampler(&vkinfo.SamplerCreateInfo{MaxLod: 500.0})
	if a == b {
		t.Fatalf("samplers with different MaxLod hashed equal")
	}
}

func TestDescriptorSetLayoutResolvesImmutableSamplersOnlyWhenSamplerBearing(t *testing.T) {
	table := newFakeTable()
	table.register(vkinfo.KindSampler, vkinfo.Handle(1), vkinfo.Fingerprint(0xAAAA))

	withSampler := vkinfo.DescriptorSetLayoutCreateInfo{
		Bindings: []vkinfo.DescriptorSetLayoutBinding{{
			Binding:           0,
			DescriptorType:    vkinfo.DescriptorTypeSampler,
			DescriptorCount:   1,
			ImmutableSamplers: []vkinfo.Handle{1},
		}},
	}
	fp, err := DescriptorSetLayout(&withSampler, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notSamplerBearing := vkinfo.DescriptorSetLayoutCreateInfo{
		Bindings: []vkinfo.DescriptorSetLayoutBinding{{
			Binding:         0,
			DescriptorType:  vkinfo.DescriptorTypeUniformBuffer,
			DescriptorCount: 1,
		}},
	}
	fp2, err := DescriptorSetLayout(&notSamplerBearing, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fp == fp2 {
		t.Fatalf("sampler-bearing and non-sampler-bearing layouts hashed equal")
	}
}

func TestDescriptorSetLayoutUnregisteredSamplerFails(t *testing.T) {
	table := newFakeTable()
	ci := vkinfo.DescriptorSetLayoutCreateInfo{
		Bindings: []vkinfo.DescriptorSetLayoutBinding{{
			DescriptorType:    vkinfo.DescriptorTypeSampler,
			DescriptorCount:   1,
			ImmutableSamplers: []vkinfo.Handle{99},
		}},
	}
	if _, err := DescriptorSetLayout(&ci, table.lookup); err == nil {
		t.Fatalf("expected an error for an unregistered immutable sampler handle")
	}
}

func TestHandleTransitivityRenumberingDoesNotChangeFingerprint(t *testing.T) {
	tableA := newFakeTable()
	tableA.register(vkinfo.KindDescriptorSetLayout, vkinfo.Handle(1), vkinfo.Fingerprint(42))
	ciA := vkinfo.PipelineLayoutCreateInfo{SetLayouts: []vkinfo.Handle{1}}
	fpA, err := PipelineLayout(&ciA, tableA.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tableB := newFakeTable()
	tableB.register(vkinfo.KindDescriptorSetLayout, vkinfo.Handle(999), vkinfo.Fingerprint(42))
	ciB := vkinfo.PipelineLayoutCreateInfo{SetLayouts: []vkinfo.Handle{999}}
	fpB, err := PipelineLayout(&ciB, tableB.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fpA != fpB {
		t.Fatalf("renumbering an application handle changed the fingerprint: %v != %v", fpA, fpB)
	}
}

func TestShaderModuleBitExactBytecode(t *testing.T) {
	code := make([]byte, 4001)
	for i := range code {
		code[i] = byte(i)
	}
	a := ShaderModule(&vkinfo.ShaderModuleCreateInfo{Code: code})

	other := make([]byte, len(code))
	copy(other, code)
	other[len(other)-1]++
	b := ShaderModule(&vkinfo.ShaderModuleCreateInfo{Code: other})

	if a == b {
		t.Fatalf("a single trailing byte difference did not change the fingerprint")
	}
}

func TestRenderPassDeterministic(t *testing.T) {
	ci := vkinfo.RenderPassCreateInfo{
		Attachments: []vkinfo.AttachmentDescription{{Format: 1, Samples: 1}},
		Subpasses: []vkinfo.SubpassDescription{{
			PipelineBind: vkinfo.PipelineBindPointGraphics,
			ColorRefs:    []vkinfo.AttachmentReference{{Attachment: 0, Layout: vkinfo.ImageLayoutColorAttachmentOptimal}},
		}},
	}
	a := RenderPass(&ci)
	b := RenderPass(&ci)
	if a != b {
		t.Fatalf("RenderPass fingerprint not stable")
	}
}

func TestSpecializationInfoAffectsHash(t *testing.T) {
	table := newFakeTable()
	table.register(vkinfo.KindShaderModule, vkinfo.Handle(1), vkinfo.Fingerprint(7))

	base := vkinfo.PipelineShaderStageCreateInfo{
		Stage:  vkinfo.ShaderStageCompute,
		Module: vkinfo.Handle(1),
		Name:   "main",
	}

	withSpec := base
	withSpec.Specialization = &vkinfo.SpecializationInfo{
		Data:       []byte{1, 2, 3, 4},
		MapEntries: []vkinfo.SpecializationMapEntry{{ConstantID: 0, Offset: 0, Size: 4}},
	}

	ciA := vkinfo.ComputePipelineCreateInfo{Stage: base, Layout: vkinfo.NullHandle}
	ciB := vkinfo.ComputePipelineCreateInfo{Stage: withSpec, Layout: vkinfo.NullHandle}

	fpA, err := ComputePipeline(&ciA, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fpB, err := ComputePipeline(&ciB, table.lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fpA == fpB {
		t.Fatalf("adding specialization data did not change the fingerprint")
	}
}
