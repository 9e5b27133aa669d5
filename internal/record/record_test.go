package record

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/pipelinearchive/archive"
	"github.com/gogpu/pipelinearchive/internal/arena"
	"github.com/gogpu/pipelinearchive/internal/archiveerr"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

func TestSamplerDedupSharesOneFingerprint(t *testing.T) {
	r := New(Options{})
	defer r.RecordEnd()

	ci := &vkinfo.SamplerCreateInfo{MaxLod: 16, MagFilter: vkinfo.FilterLinear}
	if err := r.RecordSampler(1, ci); err != nil {
		t.Fatalf("RecordSampler(1): %v", err)
	}
	if err := r.RecordSampler(2, &vkinfo.SamplerCreateInfo{MaxLod: 16, MagFilter: vkinfo.FilterLinear}); err != nil {
		t.Fatalf("RecordSampler(2): %v", err)
	}
	r.RecordEnd()

	fp1, err := r.GetHash(vkinfo.KindSampler, 1)
	if err != nil {
		t.Fatalf("GetHash(1): %v", err)
	}
	fp2, err := r.GetHash(vkinfo.KindSampler, 2)
	if err != nil {
		t.Fatalf("GetHash(2): %v", err)
	}
	if fp1 != fp2 {
		t.Fatalf("identical samplers recorded under different handles got different fingerprints: %x != %x", fp1, fp2)
	}
}

func TestGetHashUnregisteredHandle(t *testing.T) {
	r := New(Options{})
	defer r.RecordEnd()
	r.RecordEnd()

	if _, err := r.GetHash(vkinfo.KindSampler, 99); err != archiveerr.ErrNotRegistered {
		t.Fatalf("got err %v, want ErrNotRegistered", err)
	}
}

func TestShaderModuleSerializesOnceOnFirstSight(t *testing.T) {
	dir := t.TempDir()
	r := New(Options{SerializationPath: dir})
	defer r.RecordEnd()

	code := make([]byte, 16)
	for i := range code {
		code[i] = byte(i)
	}
	if err := r.RecordShaderModule(1, &vkinfo.ShaderModuleCreateInfo{Code: append([]byte(nil), code...)}); err != nil {
		t.Fatalf("RecordShaderModule(1): %v", err)
	}
	if err := r.RecordShaderModule(2, &vkinfo.ShaderModuleCreateInfo{Code: append([]byte(nil), code...)}); err != nil {
		t.Fatalf("RecordShaderModule(2): %v", err)
	}
	r.RecordEnd()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d serialized files, want exactly 1 (dedup on first sight)", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	a := arena.New()
	decoded, err := archive.Parse(data, a)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(decoded.ShaderModules) != 1 {
		t.Fatalf("decoded archive has %d shader modules, want 1", len(decoded.ShaderModules))
	}
	for _, m := range decoded.ShaderModules {
		if len(m.Code) != len(code) {
			t.Fatalf("Code length = %d, want %d", len(m.Code), len(code))
		}
	}
}

func TestComputePipelineEmitsResolvedClosure(t *testing.T) {
	dir := t.TempDir()
	r := New(Options{SerializationPath: dir})
	defer r.RecordEnd()

	const (
		samplerHandle    vkinfo.Handle = 10
		setLayoutHandle  vkinfo.Handle = 20
		pipeLayoutHandle vkinfo.Handle = 30
		shaderHandle     vkinfo.Handle = 40
		computeHandle    vkinfo.Handle = 50
	)

	if err := r.RecordSampler(samplerHandle, &vkinfo.SamplerCreateInfo{MaxLod: 1}); err != nil {
		t.Fatalf("RecordSampler: %v", err)
	}
	if err := r.RecordDescriptorSetLayout(setLayoutHandle, &vkinfo.DescriptorSetLayoutCreateInfo{
		Bindings: []vkinfo.DescriptorSetLayoutBinding{{
			Binding:           0,
			DescriptorType:    vkinfo.DescriptorTypeCombinedImageSampler,
			DescriptorCount:   1,
			StageFlags:        vkinfo.ShaderStageCompute,
			ImmutableSamplers: []vkinfo.Handle{samplerHandle},
		}},
	}); err != nil {
		t.Fatalf("RecordDescriptorSetLayout: %v", err)
	}
	if err := r.RecordPipelineLayout(pipeLayoutHandle, &vkinfo.PipelineLayoutCreateInfo{
		SetLayouts: []vkinfo.Handle{setLayoutHandle},
	}); err != nil {
		t.Fatalf("RecordPipelineLayout: %v", err)
	}
	if err := r.RecordShaderModule(shaderHandle, &vkinfo.ShaderModuleCreateInfo{Code: []byte{1, 2, 3, 4}}); err != nil {
		t.Fatalf("RecordShaderModule: %v", err)
	}
	if err := r.RecordComputePipeline(computeHandle, &vkinfo.ComputePipelineCreateInfo{
		Stage:  vkinfo.PipelineShaderStageCreateInfo{Stage: vkinfo.ShaderStageCompute, Module: shaderHandle, Name: "main"},
		Layout: pipeLayoutHandle,
	}); err != nil {
		t.Fatalf("RecordComputePipeline: %v", err)
	}
	r.RecordEnd()

	computeFP, err := r.GetHash(vkinfo.KindComputePipeline, computeHandle)
	if err != nil {
		t.Fatalf("GetHash(compute): %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d serialized files, want exactly 2 (the shader module and the compute pipeline each serialize standalone)", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("%016X.json", uint64(computeFP))))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	a := arena.New()
	decoded, err := archive.Parse(data, a)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := decoded.ComputePipelines[computeFP]; !ok {
		t.Fatalf("decoded archive missing compute pipeline %x", computeFP)
	}
	if len(decoded.PipelineLayouts) != 1 {
		t.Fatalf("decoded archive has %d pipeline layouts, want 1 (closure)", len(decoded.PipelineLayouts))
	}
	if len(decoded.SetLayouts) != 1 {
		t.Fatalf("decoded archive has %d set layouts, want 1 (closure)", len(decoded.SetLayouts))
	}
	if len(decoded.Samplers) != 1 {
		t.Fatalf("decoded archive has %d samplers, want 1 (closure)", len(decoded.Samplers))
	}
}

func TestGraphicsPipelineUnresolvedLayoutIsDroppedNotRegistered(t *testing.T) {
	r := New(Options{})
	defer r.RecordEnd()

	if err := r.RecordGraphicsPipeline(7, &vkinfo.GraphicsPipelineCreateInfo{
		Layout:     999, // never recorded
		RenderPass: 999,
	}); err != nil {
		t.Fatalf("RecordGraphicsPipeline enqueue: %v", err)
	}
	r.RecordEnd()

	if _, err := r.GetHash(vkinfo.KindGraphicsPipeline, 7); err != archiveerr.ErrNotRegistered {
		t.Fatalf("got err %v, want ErrNotRegistered (unresolved reference should drop the item, not register it)", err)
	}
}

func TestRecordEndIsIdempotentAndRejectsLateRecords(t *testing.T) {
	r := New(Options{})
	r.RecordEnd()
	r.RecordEnd() // must not panic or double-close

	if err := r.RecordSampler(1, &vkinfo.SamplerCreateInfo{}); err == nil {
		t.Fatalf("expected an error recording after RecordEnd")
	}
}
