package archive

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/gogpu/pipelinearchive/internal/archiveerr"
	"github.com/gogpu/pipelinearchive/internal/arena"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// Decoded holds every description an archive contained, arena-backed
// and keyed by fingerprint. Parse is symmetric with Emit: decoding
// every Document a previous Emit produced reproduces the same
// fingerprint → description contents (§8, Round-trip).
type Decoded struct {
	Samplers          map[vkinfo.Fingerprint]*vkinfo.SamplerCreateInfo
	SetLayouts        map[vkinfo.Fingerprint]*vkinfo.DescriptorSetLayoutCreateInfo
	PipelineLayouts   map[vkinfo.Fingerprint]*vkinfo.PipelineLayoutCreateInfo
	ShaderModules     map[vkinfo.Fingerprint]*vkinfo.ShaderModuleCreateInfo
	RenderPasses      map[vkinfo.Fingerprint]*vkinfo.RenderPassCreateInfo
	ComputePipelines  map[vkinfo.Fingerprint]*vkinfo.ComputePipelineCreateInfo
	GraphicsPipelines map[vkinfo.Fingerprint]*vkinfo.GraphicsPipelineCreateInfo

	AppInfo *AppInfo
}

// Parse accepts either plain JSON or JSONC (comments, trailing commas —
// a convenience for hand-annotating an archive while debugging a driver
// repro) and decodes it into arena-backed descriptions. Missing optional
// sub-objects leave the corresponding pointer nil in the rebuilt
// description (§4.7).
func Parse(data []byte, a *arena.Allocator) (*Decoded, error) {
	stripped := jsonc.ToJSON(data)

	var doc Document
	if err := json.Unmarshal(stripped, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", archiveerr.ErrParseError, err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: unsupported archive version %d", archiveerr.ErrParseError, doc.Version)
	}

	d := &Decoded{
		Samplers:          map[vkinfo.Fingerprint]*vkinfo.SamplerCreateInfo{},
		SetLayouts:        map[vkinfo.Fingerprint]*vkinfo.DescriptorSetLayoutCreateInfo{},
		PipelineLayouts:   map[vkinfo.Fingerprint]*vkinfo.PipelineLayoutCreateInfo{},
		ShaderModules:     map[vkinfo.Fingerprint]*vkinfo.ShaderModuleCreateInfo{},
		RenderPasses:      map[vkinfo.Fingerprint]*vkinfo.RenderPassCreateInfo{},
		ComputePipelines:  map[vkinfo.Fingerprint]*vkinfo.ComputePipelineCreateInfo{},
		GraphicsPipelines: map[vkinfo.Fingerprint]*vkinfo.GraphicsPipelineCreateInfo{},
		AppInfo:           doc.AppInfo,
	}

	for key, w := range doc.Samplers {
		fp, err := parseFPHex(key)
		if err != nil {
			return nil, err
		}
		d.Samplers[fp] = fromWireSampler(w)
	}
	for key, w := range doc.SetLayouts {
		fp, err := parseFPHex(key)
		if err != nil {
			return nil, err
		}
		ci, err := fromWireSetLayout(w, a)
		if err != nil {
			return nil, err
		}
		d.SetLayouts[fp] = ci
	}
	for key, w := range doc.PipelineLayouts {
		fp, err := parseFPHex(key)
		if err != nil {
			return nil, err
		}
		ci, err := fromWirePipelineLayout(w, a)
		if err != nil {
			return nil, err
		}
		d.PipelineLayouts[fp] = ci
	}
	for key, w := range doc.ShaderModules {
		fp, err := parseFPHex(key)
		if err != nil {
			return nil, err
		}
		ci, err := fromWireShaderModule(w, a)
		if err != nil {
			return nil, err
		}
		d.ShaderModules[fp] = ci
	}
	for key, w := range doc.RenderPasses {
		fp, err := parseFPHex(key)
		if err != nil {
			return nil, err
		}
		ci, err := fromWireRenderPass(w, a)
		if err != nil {
			return nil, err
		}
		d.RenderPasses[fp] = ci
	}
	for key, w := range doc.ComputePipelines {
		fp, err := parseFPHex(key)
		if err != nil {
			return nil, err
		}
		ci, err := fromWireComputePipeline(w, a)
		if err != nil {
			return nil, err
		}
		d.ComputePipelines[fp] = ci
	}
	for key, w := range doc.GraphicsPipelines {
		fp, err := parseFPHex(key)
		if err != nil {
			return nil, err
		}
		ci, err := fromWireGraphicsPipeline(w, a)
		if err != nil {
			return nil, err
		}
		d.GraphicsPipelines[fp] = ci
	}

	return d, nil
}
