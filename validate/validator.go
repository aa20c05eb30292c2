// Package validate implements the single-pass command-buffer validator:
// a resource registry, a pass/pipeline state machine, a flat opcode
// dispatcher that applies each opcode's rule set, and the read-only
// query surface over the result.
package validate

import (
	"github.com/gogpu/gpuvalidate/command"
	"github.com/gogpu/gpuvalidate/internal/obslog"
	"github.com/gogpu/gpuvalidate/types"
)

// Validator is a single validation run's owned state. It is not safe
// for concurrent use by multiple goroutines — a run is strictly
// sequential within one Validator instance — but independent Validator
// values share no state and may run on separate threads.
type Validator struct {
	buffers          *Registry[types.Buffer]
	textures         *Registry[types.Texture]
	samplers         *Registry[Resource]
	shaders          *Registry[Resource]
	bindGroups       *Registry[Resource]
	textureViews     *Registry[Resource]
	imageBitmaps     *Registry[Resource]
	typedArrays      *Registry[Resource]
	wasmModules      *Registry[Resource]
	renderPipelines  *Registry[PipelineResource]
	computePipelines *Registry[PipelineResource]

	passState PassState
	pipeline  pipelineRef
	slots     slotArrays

	drawCount     uint32
	dispatchCount uint32
	maxWorkgroup  [3]uint32

	wasmMemorySize uint32
	wasmMemory     []byte
	limits         types.Limits

	bufferWritten         map[uint16]bool
	bindGroupEverBound    map[uint16]bool
	vertexBufferEverBound bool
	indexBufferEverBound  bool
	everRenderPass        bool
	everComputePass       bool

	issues IssueList
}

// New creates a Validator ready to accept a parsed command sequence.
func New() *Validator {
	return &Validator{
		buffers:          NewRegistry[types.Buffer](),
		textures:         NewRegistry[types.Texture](),
		samplers:         NewRegistry[Resource](),
		shaders:          NewRegistry[Resource](),
		bindGroups:       NewRegistry[Resource](),
		textureViews:     NewRegistry[Resource](),
		imageBitmaps:     NewRegistry[Resource](),
		typedArrays:      NewRegistry[Resource](),
		wasmModules:      NewRegistry[Resource](),
		renderPipelines:  NewRegistry[PipelineResource](),
		computePipelines: NewRegistry[PipelineResource](),
		limits:           types.DefaultLimits(),
		bufferWritten:    make(map[uint16]bool),
		bindGroupEverBound: make(map[uint16]bool),
	}
}

// SetWasmMemorySize opts in to E004 bounds checks against a configured
// linear-memory size.
func (v *Validator) SetWasmMemorySize(size uint32) {
	v.wasmMemorySize = size
}

// SetWasmMemory additionally supplies a byte snapshot of the producer's
// WASM linear memory, letting the validator parse texture descriptors
// instead of falling back to all-default field values. This is
// optional: a Validator with no snapshot still performs every other
// check, just without the descriptor-dependent texture creation rules,
// which are only enforced when the descriptor is actually parsed.
func (v *Validator) SetWasmMemory(mem []byte) {
	v.wasmMemory = mem
}

// SetLimits overrides the resource limits used by the live buffer-size
// and dispatch workgroup-count checks. Unset, a Validator uses
// types.DefaultLimits.
func (v *Validator) SetLimits(limits types.Limits) {
	v.limits = limits
}

// Validate walks a parsed command sequence, updating internal state
// and appending diagnostics. It may be called at most once
// per Validator; call New for a fresh run.
func (v *Validator) Validate(commands []command.Command) {
	log := obslog.Logger()
	log.Info("validate start", "commands", len(commands))

	for _, cmd := range commands {
		v.dispatch(cmd)
	}

	if v.passState != PassStateNone {
		var idx uint32
		if len(commands) > 0 {
			idx = commands[len(commands)-1].Index
		}
		v.issues.add(CodePassMismatch, msgPassLeftOpen, idx, nil)
	}

	log.Info("validate done", "issues", v.issues.Len(), "errors", v.issues.ErrorCount(), "warnings", v.issues.WarningCount())
}

// HasErrors reports whether any error-severity issue was recorded.
func (v *Validator) HasErrors() bool { return v.issues.HasErrors() }

// ErrorCount returns the number of error-severity issues.
func (v *Validator) ErrorCount() int { return v.issues.ErrorCount() }

// WarningCount returns the number of warning-severity issues.
func (v *Validator) WarningCount() int { return v.issues.WarningCount() }

// Issues returns the recorded diagnostics in command order.
func (v *Validator) Issues() []Issue { return v.issues.Items() }

// DrawCount returns the number of draw/draw_indexed attempts.
func (v *Validator) DrawCount() uint32 { return v.drawCount }

// DispatchCount returns the number of dispatch attempts.
func (v *Validator) DispatchCount() uint32 { return v.dispatchCount }

// MaxWorkgroupCounts returns the largest x/y/z seen across every
// dispatch attempt, used by diagnose.ValidateParameterValues.
func (v *Validator) MaxWorkgroupCounts() (x, y, z uint32) {
	return v.maxWorkgroup[0], v.maxWorkgroup[1], v.maxWorkgroup[2]
}

// GetResourceCounts returns the live count of every resource kind.
func (v *Validator) GetResourceCounts() map[string]int {
	return map[string]int{
		"buffers":           v.buffers.Count(),
		"textures":          v.textures.Count(),
		"samplers":          v.samplers.Count(),
		"shaders":           v.shaders.Count(),
		"bind_groups":       v.bindGroups.Count(),
		"texture_views":     v.textureViews.Count(),
		"image_bitmaps":     v.imageBitmaps.Count(),
		"typed_arrays":      v.typedArrays.Count(),
		"wasm_modules":      v.wasmModules.Count(),
		"render_pipelines":  v.renderPipelines.Count(),
		"compute_pipelines": v.computePipelines.Count(),
	}
}

// PassState returns the pass state at the point Validate returned.
func (v *Validator) PassState() PassState { return v.passState }

// Buffers exposes the buffer registry for the diagnosis layer.
func (v *Validator) Buffers() map[uint16]types.Buffer { return v.buffers.All() }

// Textures exposes the texture registry for the diagnosis layer.
func (v *Validator) Textures() map[uint16]types.Texture { return v.textures.All() }

// RenderPipelines exposes the render-pipeline registry.
func (v *Validator) RenderPipelines() map[uint16]PipelineResource { return v.renderPipelines.All() }

// ComputePipelines exposes the compute-pipeline registry.
func (v *Validator) ComputePipelines() map[uint16]PipelineResource { return v.computePipelines.All() }

// Shaders exposes the shader registry.
func (v *Validator) Shaders() map[uint16]Resource { return v.shaders.All() }

// BindGroups exposes the bind-group registry.
func (v *Validator) BindGroups() map[uint16]Resource { return v.bindGroups.All() }

// BindGroupEverBound reports whether id was ever the target of
// set_bind_group, regardless of pass-boundary slot clears.
func (v *Validator) BindGroupEverBound(id uint16) bool { return v.bindGroupEverBound[id] }

// VertexBufferEverBound reports whether set_vertex_buffer was ever
// issued over the whole run.
func (v *Validator) VertexBufferEverBound() bool { return v.vertexBufferEverBound }

// BufferWritten reports whether id was ever the target of a
// buffer-write opcode.
func (v *Validator) BufferWritten(id uint16) bool { return v.bufferWritten[id] }

// IndexBufferEverBound reports whether set_index_buffer was ever issued.
func (v *Validator) IndexBufferEverBound() bool { return v.indexBufferEverBound }

// EverEnteredRenderPass reports whether begin_render_pass ever
// succeeded over the whole run.
func (v *Validator) EverEnteredRenderPass() bool { return v.everRenderPass }

// EverEnteredComputePass reports whether begin_compute_pass ever
// succeeded over the whole run.
func (v *Validator) EverEnteredComputePass() bool { return v.everComputePass }

// Limits returns the limits this validator used for live checks.
func (v *Validator) Limits() types.Limits { return v.limits }
