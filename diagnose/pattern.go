package diagnose

import (
	"github.com/gogpu/gpuvalidate/types"
	"github.com/gogpu/gpuvalidate/validate"
)

// DetectPatterns scans resource usage for five recognizable authoring
// patterns. Results are capped at 8 and returned in a fixed order,
// omitting any pattern whose condition does not hold.
func DetectPatterns(v *validate.Validator) []Pattern {
	var out []Pattern

	if v.DrawCount() > 0 && !v.VertexBufferEverBound() {
		out = append(out, Pattern{
			Name:        "fullscreen_quad",
			Description: "draws issued with no vertex buffer ever bound, typical of a fullscreen triangle/quad pass",
			Confidence:  85,
		})
	}

	storageBuffers := buffersWithUsage(v, types.BufferUsageStorage)
	if len(storageBuffers) > 0 && len(v.RenderPipelines()) > 0 {
		out = append(out, Pattern{
			Name:        "instanced_rendering",
			Description: "a storage buffer combined with a render pipeline, typical of instanced draws reading per-instance data",
			Confidence:  60,
		})
	}

	if hasMatchingSizedPair(v, storageBuffers) {
		out = append(out, Pattern{
			Name:        "ping_pong_buffers",
			Description: "two identically sized storage buffers, typical of a ping-pong compute pass",
			Confidence:  75,
		})
	}

	computePipelineExists := len(v.ComputePipelines()) > 0
	if computePipelineExists && v.DispatchCount() > 0 {
		confidence := uint8(50)
		if len(v.RenderPipelines()) > 0 && v.DrawCount() > 0 {
			confidence = 80
		}
		out = append(out, Pattern{
			Name:        "compute_simulation",
			Description: "a compute pipeline combined with at least one dispatch, typical of a simulation step",
			Confidence:  confidence,
		})
	}

	if computePipelineExists && v.DispatchCount() > 0 && v.DrawCount() > 0 && anyBufferWithUsage(v, types.BufferUsageStorage|types.BufferUsageVertex) {
		out = append(out, Pattern{
			Name:        "particle_system",
			Description: "a compute pipeline writing a buffer that is also drawn as vertex data, typical of a GPU particle system",
			Confidence:  75,
		})
	}

	if len(out) > maxPatterns {
		out = out[:maxPatterns]
	}
	return out
}

func buffersWithUsage(v *validate.Validator, mask types.BufferUsage) []types.Buffer {
	var out []types.Buffer
	for _, buf := range v.Buffers() {
		if buf.Usage.Has(mask) {
			out = append(out, buf)
		}
	}
	return out
}

func anyBufferWithUsage(v *validate.Validator, mask types.BufferUsage) bool {
	for _, buf := range v.Buffers() {
		if buf.Usage.Has(mask) {
			return true
		}
	}
	return false
}

func hasMatchingSizedPair(v *validate.Validator, storageBuffers []types.Buffer) bool {
	seen := make(map[uint32]bool, len(storageBuffers))
	for _, buf := range storageBuffers {
		if seen[buf.Size] {
			return true
		}
		seen[buf.Size] = true
	}
	return false
}
