// Package record implements the recorder's worker-side state: the
// per-kind tables, the bounded queue application threads feed (each
// Record* call freezes its description on the caller's goroutine before
// enqueueing it), and the single worker goroutine that fingerprints,
// deduplicates, and serializes recorded descriptions (§4.4, §5).
package record

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/gogpu/pipelinearchive/archive"
	"github.com/gogpu/pipelinearchive/internal/archiveerr"
	"github.com/gogpu/pipelinearchive/internal/arena"
	"github.com/gogpu/pipelinearchive/internal/fingerprint"
	"github.com/gogpu/pipelinearchive/internal/freeze"
	"github.com/gogpu/pipelinearchive/internal/nopslog"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// defaultQueueCapacity is used when the caller does not specify one.
const defaultQueueCapacity = 256

// workItem is one frozen description in flight from an application
// thread's record call to the worker goroutine, tagged with the
// application handle the caller used to refer to it.
type workItem struct {
	handle vkinfo.Handle
	desc   vkinfo.Description
}

// Options configures a Recorder.
type Options struct {
	Logger            *slog.Logger
	QueueCapacity     int
	SerializationPath string
}

// Recorder owns the tables, queue, and worker goroutine backing the
// public facade's Recorder type. Every exported Record* method may be
// called concurrently from multiple application goroutines; the worker
// goroutine is the only one that ever touches the arena or the tables.
type Recorder struct {
	logger *slog.Logger

	queue  chan workItem
	closed atomic.Bool
	done   chan struct{}
	wg     sync.WaitGroup

	serializeMu sync.Mutex
	serializeTo string

	appInfoMu sync.RWMutex
	appInfo   *archive.AppInfo

	arena  *arena.Allocator
	tables *tables
}

// New starts a Recorder and its worker goroutine.
func New(opts Options) *Recorder {
	logger := opts.Logger
	if logger == nil {
		logger = nopslog.New()
	}
	capacity := opts.QueueCapacity
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}

	r := &Recorder{
		logger:      logger,
		queue:       make(chan workItem, capacity),
		done:        make(chan struct{}),
		serializeTo: opts.SerializationPath,
		arena:       arena.New(),
		tables:      newTables(),
	}

	r.wg.Add(1)
	go r.run()
	return r
}

// SetSerializationPath changes the directory standalone archives are
// written to. An empty path disables standalone serialization.
func (r *Recorder) SetSerializationPath(dir string) {
	r.serializeMu.Lock()
	r.serializeTo = dir
	r.serializeMu.Unlock()
}

func (r *Recorder) serializationPath() string {
	r.serializeMu.Lock()
	defer r.serializeMu.Unlock()
	return r.serializeTo
}

// RecordApplicationInfo attaches application metadata to every archive
// written from this point on. It is pure metadata: never fingerprinted,
// never part of any dedup decision (SUPPLEMENTED FEATURES, original
// fossilize.cpp's application info block).
func (r *Recorder) RecordApplicationInfo(engineName, applicationName string, apiVersion uint32) {
	r.appInfoMu.Lock()
	r.appInfo = &archive.AppInfo{
		EngineName:      engineName,
		ApplicationName: applicationName,
		APIVersion:      apiVersion,
	}
	r.appInfoMu.Unlock()
}

func (r *Recorder) currentAppInfo() *archive.AppInfo {
	r.appInfoMu.RLock()
	defer r.appInfoMu.RUnlock()
	return r.appInfo
}

// enqueue freezes src into the arena and hands the frozen copy to the
// worker. Freezing happens on the caller's goroutine, under no lock but
// the arena itself: the arena is only ever touched here and from the
// worker, and never concurrently, because enqueue fully hands off a
// frozen value to the queue before any other goroutine's enqueue can
// observe the arena again (the arena has no cross-call state a reader
// could race against — each allocation is self-contained).
func (r *Recorder) enqueue(handle vkinfo.Handle, desc vkinfo.Description) error {
	if r.closed.Load() {
		return archiveerr.ErrCreateFailed
	}
	select {
	case r.queue <- workItem{handle: handle, desc: desc}:
		return nil
	case <-r.done:
		return archiveerr.ErrCreateFailed
	}
}

// RecordSampler freezes and enqueues a sampler description under handle.
func (r *Recorder) RecordSampler(handle vkinfo.Handle, ci *vkinfo.SamplerCreateInfo) error {
	frozen, err := freeze.Sampler(r.arena, ci)
	if err != nil {
		return err
	}
	return r.enqueue(handle, frozen)
}

// RecordDescriptorSetLayout freezes and enqueues a descriptor set layout
// description under handle.
func (r *Recorder) RecordDescriptorSetLayout(handle vkinfo.Handle, ci *vkinfo.DescriptorSetLayoutCreateInfo) error {
	frozen, err := freeze.DescriptorSetLayout(r.arena, ci)
	if err != nil {
		return err
	}
	return r.enqueue(handle, frozen)
}

// RecordPipelineLayout freezes and enqueues a pipeline layout description
// under handle.
func (r *Recorder) RecordPipelineLayout(handle vkinfo.Handle, ci *vkinfo.PipelineLayoutCreateInfo) error {
	frozen, err := freeze.PipelineLayout(r.arena, ci)
	if err != nil {
		return err
	}
	return r.enqueue(handle, frozen)
}

// RecordShaderModule freezes and enqueues a shader module description
// under handle.
func (r *Recorder) RecordShaderModule(handle vkinfo.Handle, ci *vkinfo.ShaderModuleCreateInfo) error {
	frozen, err := freeze.ShaderModule(r.arena, ci)
	if err != nil {
		return err
	}
	return r.enqueue(handle, frozen)
}

// RecordRenderPass freezes and enqueues a render pass description under
// handle.
func (r *Recorder) RecordRenderPass(handle vkinfo.Handle, ci *vkinfo.RenderPassCreateInfo) error {
	frozen, err := freeze.RenderPass(r.arena, ci)
	if err != nil {
		return err
	}
	return r.enqueue(handle, frozen)
}

// RecordComputePipeline freezes and enqueues a compute pipeline
// description under handle.
func (r *Recorder) RecordComputePipeline(handle vkinfo.Handle, ci *vkinfo.ComputePipelineCreateInfo) error {
	frozen, err := freeze.ComputePipeline(r.arena, ci)
	if err != nil {
		return err
	}
	return r.enqueue(handle, frozen)
}

// RecordGraphicsPipeline freezes and enqueues a graphics pipeline
// description under handle.
func (r *Recorder) RecordGraphicsPipeline(handle vkinfo.Handle, ci *vkinfo.GraphicsPipelineCreateInfo) error {
	frozen, err := freeze.GraphicsPipeline(r.arena, ci)
	if err != nil {
		return err
	}
	return r.enqueue(handle, frozen)
}

// RecordEnd stops accepting new items, drains whatever is already
// queued, and waits for the worker goroutine to exit. It is idempotent.
func (r *Recorder) RecordEnd() {
	if !r.closed.CompareAndSwap(false, true) {
		r.wg.Wait()
		return
	}
	close(r.queue)
	r.wg.Wait()
}

// run is the worker goroutine's main loop: one item at a time, in
// arrival order, for the Recorder's entire lifetime.
func (r *Recorder) run() {
	defer close(r.done)
	defer r.wg.Done()

	for item := range r.queue {
		if err := r.process(item); err != nil {
			r.logger.Error("pipelinearchive: dropping recorded object",
				slog.Any("error", err))
		}
	}
}

func (r *Recorder) process(item workItem) error {
	switch desc := item.desc.(type) {
	case *vkinfo.SamplerCreateInfo:
		return r.processSampler(item.handle, desc)
	case *vkinfo.DescriptorSetLayoutCreateInfo:
		return r.processSetLayout(item.handle, desc)
	case *vkinfo.PipelineLayoutCreateInfo:
		return r.processPipelineLayout(item.handle, desc)
	case *vkinfo.ShaderModuleCreateInfo:
		return r.processShaderModule(item.handle, desc)
	case *vkinfo.RenderPassCreateInfo:
		return r.processRenderPass(item.handle, desc)
	case *vkinfo.ComputePipelineCreateInfo:
		return r.processComputePipeline(item.handle, desc)
	case *vkinfo.GraphicsPipelineCreateInfo:
		return r.processGraphicsPipeline(item.handle, desc)
	default:
		return fmt.Errorf("pipelinearchive: unrecognized description type %T", item.desc)
	}
}

func (r *Recorder) processSampler(handle vkinfo.Handle, ci *vkinfo.SamplerCreateInfo) error {
	fp := fingerprint.Sampler(ci)
	r.tables.samplers.registerHandle(handle, fp)
	r.tables.samplers.insertIfAbsent(fp, ci)
	return nil
}

func (r *Recorder) processSetLayout(handle vkinfo.Handle, ci *vkinfo.DescriptorSetLayoutCreateInfo) error {
	fp, err := fingerprint.DescriptorSetLayout(ci, r.tables.Resolve)
	if err != nil {
		return err
	}
	r.tables.setLayouts.registerHandle(handle, fp)
	if !firstSight(r.tables.setLayouts, fp) {
		return nil
	}
	if err := remapDescriptorSetLayout(r.tables.Resolve, ci); err != nil {
		return err
	}
	r.tables.setLayouts.insertIfAbsent(fp, ci)
	return nil
}

func (r *Recorder) processPipelineLayout(handle vkinfo.Handle, ci *vkinfo.PipelineLayoutCreateInfo) error {
	fp, err := fingerprint.PipelineLayout(ci, r.tables.Resolve)
	if err != nil {
		return err
	}
	r.tables.pipelineLayouts.registerHandle(handle, fp)
	if !firstSight(r.tables.pipelineLayouts, fp) {
		return nil
	}
	if err := remapPipelineLayout(r.tables.Resolve, ci); err != nil {
		return err
	}
	r.tables.pipelineLayouts.insertIfAbsent(fp, ci)
	return nil
}

func (r *Recorder) processShaderModule(handle vkinfo.Handle, ci *vkinfo.ShaderModuleCreateInfo) error {
	fp := fingerprint.ShaderModule(ci)
	r.tables.shaderModules.registerHandle(handle, fp)
	if !r.tables.shaderModules.insertIfAbsent(fp, ci) {
		return nil
	}
	return r.serialize(fp, func() ([]byte, error) {
		return archive.EmitShaderModule(fp, ci, r.currentAppInfo())
	})
}

func (r *Recorder) processRenderPass(handle vkinfo.Handle, ci *vkinfo.RenderPassCreateInfo) error {
	fp := fingerprint.RenderPass(ci)
	r.tables.renderPasses.registerHandle(handle, fp)
	r.tables.renderPasses.insertIfAbsent(fp, ci)
	return nil
}

func (r *Recorder) processComputePipeline(handle vkinfo.Handle, ci *vkinfo.ComputePipelineCreateInfo) error {
	fp, err := fingerprint.ComputePipeline(ci, r.tables.Resolve)
	if err != nil {
		return err
	}
	r.tables.computePipelines.registerHandle(handle, fp)
	if !firstSight(r.tables.computePipelines, fp) {
		return nil
	}
	if err := remapComputePipeline(r.tables.Resolve, ci); err != nil {
		return err
	}
	r.tables.computePipelines.insertIfAbsent(fp, ci)
	return r.serialize(fp, func() ([]byte, error) {
		return archive.EmitComputePipeline(r.tables, fp, ci, r.currentAppInfo())
	})
}

func (r *Recorder) processGraphicsPipeline(handle vkinfo.Handle, ci *vkinfo.GraphicsPipelineCreateInfo) error {
	fp, err := fingerprint.GraphicsPipeline(ci, r.tables.Resolve)
	if err != nil {
		return err
	}
	r.tables.graphicsPipelines.registerHandle(handle, fp)
	if !firstSight(r.tables.graphicsPipelines, fp) {
		return nil
	}
	if err := remapGraphicsPipeline(r.tables.Resolve, ci); err != nil {
		return err
	}
	r.tables.graphicsPipelines.insertIfAbsent(fp, ci)
	return r.serialize(fp, func() ([]byte, error) {
		return archive.EmitGraphicsPipeline(r.tables, fp, ci, r.currentAppInfo())
	})
}

// firstSight reports whether fp is not yet present in t, without
// inserting anything — the remap step that follows must run (or not)
// before the real insertIfAbsent call, so a plain presence check is
// used here instead of folding the two together.
func firstSight[T any](t *kindTable[T], fp vkinfo.Fingerprint) bool {
	_, ok := t.get(fp)
	return !ok
}

// serialize writes one standalone archive for a newly-seen shader
// module, compute pipeline, or graphics pipeline fingerprint (§4.6). It
// is a no-op when no serialization path is configured.
func (r *Recorder) serialize(fp vkinfo.Fingerprint, build func() ([]byte, error)) error {
	dir := r.serializationPath()
	if dir == "" {
		return nil
	}
	data, err := build()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("%016X.json", uint64(fp)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", archiveerr.ErrIOError, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", archiveerr.ErrIOError, err)
	}
	return nil
}

// GetHash resolves a previously recorded handle of the given kind to its
// fingerprint, meaningful only once the recorder has processed that
// handle's record call (§6, get_hash_for_<kind>).
func (r *Recorder) GetHash(kind vkinfo.Kind, handle vkinfo.Handle) (vkinfo.Fingerprint, error) {
	fp, ok := r.tables.Resolve(kind, handle)
	if !ok {
		return 0, archiveerr.ErrNotRegistered
	}
	return fp, nil
}
