package archive

import (
	"testing"

	"github.com/gogpu/pipelinearchive/internal/arena"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

func TestEmitShaderModuleRoundTripBitExact(t *testing.T) {
	code := make([]byte, 4001)
	for i := range code {
		code[i] = byte(i * 7)
	}
	fp := vkinfo.Fingerprint(0x1122334455667788)
	data, err := EmitShaderModule(fp, &vkinfo.ShaderModuleCreateInfo{Code: code}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := arena.New()
	decoded, err := Parse(data, a)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	got, ok := decoded.ShaderModules[fp]
	if !ok {
		t.Fatalf("parsed archive missing shader module %x", fp)
	}
	if len(got.Code) != len(code) {
		t.Fatalf("len(Code) = %d, want %d", len(got.Code), len(code))
	}
	for i := range code {
		if got.Code[i] != code[i] {
			t.Fatalf("Code[%d] = %d, want %d", i, got.Code[i], code[i])
		}
	}
}

func TestEmitSamplerTrivialFieldsRoundTrip(t *testing.T) {
	fp := vkinfo.Fingerprint(0xAABBCCDD)
	ci := &vkinfo.SamplerCreateInfo{MaxLod: 1000.0}
	doc := &Document{Samplers: map[string]Sampler{fpHex(fp): toWireSampler(ci)}}
	data, err := Emit(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := arena.New()
	decoded, err := Parse(data, a)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	got, ok := decoded.Samplers[fp]
	if !ok {
		t.Fatalf("parsed archive missing sampler")
	}
	if got.MaxLod != 1000.0 {
		t.Fatalf("MaxLod = %v, want 1000.0", got.MaxLod)
	}
}

func TestParseAcceptsJSONC(t *testing.T) {
	a := arena.New()
	withComments := []byte(`{
		// a hand-annotated archive
		"version": 1,
		"shaderModules": {
			"0000000000000001": {"flags": 0, "code": ""},
		},
	}`)
	decoded, err := Parse(withComments, a)
	if err != nil {
		t.Fatalf("unexpected error parsing JSONC: %v", err)
	}
	if len(decoded.ShaderModules) != 1 {
		t.Fatalf("expected one shader module, got %d", len(decoded.ShaderModules))
	}
}

func TestParseRejectsWrongVersion(t *testing.T) {
	a := arena.New()
	_, err := Parse([]byte(`{"version": 2}`), a)
	if err == nil {
		t.Fatalf("expected an error for an unsupported archive version")
	}
}

func TestMergeFirstWriterWins(t *testing.T) {
	dst := []byte(`{"version":1,"shaderModules":{"0000000000000001":{"flags":0,"code":"AAAA"}}}`)
	src := []byte(`{"version":1,"shaderModules":{"0000000000000001":{"flags":0,"code":"ZZZZ"},"0000000000000002":{"flags":0,"code":"BBBB"}}}`)

	merged, err := Merge(dst, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := arena.New()
	decoded, err := Parse(merged, a)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(decoded.ShaderModules) != 2 {
		t.Fatalf("expected 2 merged shader modules, got %d", len(decoded.ShaderModules))
	}
	kept := decoded.ShaderModules[vkinfo.Fingerprint(1)]
	if len(kept.Code) == 0 || kept.Code[0] != 0 {
		t.Fatalf("expected dst's entry to win the collision on fingerprint 1")
	}
}
