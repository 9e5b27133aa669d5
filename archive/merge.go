package archive

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/gogpu/pipelinearchive/internal/archiveerr"
)

// Merge unions dst and every src archive's fingerprint → description
// tables, first-writer-wins on a colliding fingerprint key (mirroring
// invariant 2: a fingerprint's entry, once written, is never
// overwritten). It is pure data-plane logic over the schema Emit/Parse
// already define, reusing both rather than a separate merge format.
func Merge(dst []byte, srcs ...[]byte) ([]byte, error) {
	base, err := decodeDocument(dst)
	if err != nil {
		return nil, err
	}
	ensureMaps(base)

	for _, src := range srcs {
		doc, err := decodeDocument(src)
		if err != nil {
			return nil, err
		}
		mergeStrings(base.Samplers, doc.Samplers)
		mergeStrings(base.SetLayouts, doc.SetLayouts)
		mergeStrings(base.PipelineLayouts, doc.PipelineLayouts)
		mergeStrings(base.ShaderModules, doc.ShaderModules)
		mergeStrings(base.RenderPasses, doc.RenderPasses)
		mergeStrings(base.ComputePipelines, doc.ComputePipelines)
		mergeStrings(base.GraphicsPipelines, doc.GraphicsPipelines)
		if base.AppInfo == nil {
			base.AppInfo = doc.AppInfo
		}
	}

	return Emit(base)
}

func decodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", archiveerr.ErrParseError, err)
	}
	return &doc, nil
}

func ensureMaps(d *Document) {
	if d.Samplers == nil {
		d.Samplers = map[string]Sampler{}
	}
	if d.SetLayouts == nil {
		d.SetLayouts = map[string]SetLayout{}
	}
	if d.PipelineLayouts == nil {
		d.PipelineLayouts = map[string]PipelineLayout{}
	}
	if d.ShaderModules == nil {
		d.ShaderModules = map[string]ShaderModule{}
	}
	if d.RenderPasses == nil {
		d.RenderPasses = map[string]RenderPass{}
	}
	if d.ComputePipelines == nil {
		d.ComputePipelines = map[string]ComputePipeline{}
	}
	if d.GraphicsPipelines == nil {
		d.GraphicsPipelines = map[string]GraphicsPipeline{}
	}
}

// mergeStrings inserts every key of src into dst that dst does not
// already hold.
func mergeStrings[V any](dst, src map[string]V) {
	for k, v := range src {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
}
