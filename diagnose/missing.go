package diagnose

import (
	"sort"

	"github.com/gogpu/gpuvalidate/types"
	"github.com/gogpu/gpuvalidate/validate"
)

// DetectMissingOperations scans the registry and counters for gaps in
// the render and compute paths. Results are capped at 16 and returned
// in a fixed order: render-path errors, compute-path errors, unbound
// bind-group warnings, then unwritten uniform-buffer warnings; each group
// of warnings is sorted by resource id for determinism.
func DetectMissingOperations(v *validate.Validator) []MissingOperation {
	var out []MissingOperation

	renderPipelineExists := len(v.RenderPipelines()) > 0
	if renderPipelineExists || v.DrawCount() > 0 {
		if len(v.Shaders()) == 0 {
			out = append(out, MissingOperation{
				Operation: "create_shader",
				Severity:  validate.SeverityError,
				Message:   "no shader was created for the render path",
			})
		}
		if !renderPipelineExists {
			out = append(out, MissingOperation{
				Operation: "create_render_pipeline",
				Severity:  validate.SeverityError,
				Message:   "no render pipeline was created",
			})
		}
		if v.DrawCount() == 0 {
			out = append(out, MissingOperation{
				Operation: "draw",
				Severity:  validate.SeverityError,
				Message:   "no draw was issued",
			})
		}
		if v.DrawCount() > 0 && !v.EverEnteredRenderPass() {
			out = append(out, MissingOperation{
				Operation: "begin_render_pass",
				Severity:  validate.SeverityError,
				Message:   "draws were issued without ever beginning a render pass",
			})
		}
	}

	computePipelineExists := len(v.ComputePipelines()) > 0
	if computePipelineExists || v.DispatchCount() > 0 {
		if !computePipelineExists {
			out = append(out, MissingOperation{
				Operation: "create_compute_pipeline",
				Severity:  validate.SeverityError,
				Message:   "no compute pipeline was created",
			})
		}
		if v.DispatchCount() == 0 {
			out = append(out, MissingOperation{
				Operation: "dispatch",
				Severity:  validate.SeverityError,
				Message:   "no dispatch was issued",
			})
		}
		if v.DispatchCount() > 0 && !v.EverEnteredComputePass() {
			out = append(out, MissingOperation{
				Operation: "begin_compute_pass",
				Severity:  validate.SeverityError,
				Message:   "dispatches were issued without ever beginning a compute pass",
			})
		}
	}

	for _, id := range sortedBindGroupIDs(v) {
		if !v.BindGroupEverBound(id) {
			out = append(out, MissingOperation{
				Operation: "set_bind_group",
				Severity:  validate.SeverityWarning,
				Message:   "a created bind group was never bound to a slot",
				Context:   idContext(id),
			})
		}
	}

	for _, id := range sortedUniformBufferIDs(v) {
		if !v.BufferWritten(id) {
			out = append(out, MissingOperation{
				Operation: "write_buffer",
				Severity:  validate.SeverityWarning,
				Message:   "a uniform buffer was created but never written",
				Context:   idContext(id),
			})
		}
	}

	if len(out) > maxMissingOperations {
		out = out[:maxMissingOperations]
	}
	return out
}

func sortedBindGroupIDs(v *validate.Validator) []uint16 {
	ids := make([]uint16, 0, len(v.BindGroups()))
	for id := range v.BindGroups() {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedUniformBufferIDs(v *validate.Validator) []uint16 {
	buffers := v.Buffers()
	ids := make([]uint16, 0, len(buffers))
	for id, buf := range buffers {
		if buf.Usage.Has(types.BufferUsageUniform) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
