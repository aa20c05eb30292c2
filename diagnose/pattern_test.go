package diagnose

import (
	"testing"

	"github.com/gogpu/gpuvalidate/command"
)

const usageVertex = uint8(1 << 5)
const usageStorage = uint8(1 << 7)

func TestDetectPatternsFullscreenQuad(t *testing.T) {
	v := validated(
		cmd(command.OpCreateShader, command.CreateShaderParams{ID: 0, Code: command.PtrRange{Len: 4}}),
		cmd(command.OpCreateRenderPipeline, command.CreateResourceParams{ID: 0}),
		cmd(command.OpBeginRenderPass, command.BeginRenderPassParams{ColorID: 0xFFFF, DepthID: 0xFFFF}),
		cmd(command.OpSetPipeline, command.SetPipelineParams{ID: 0}),
		cmd(command.OpDraw, command.DrawParams{VertexCount: 3, InstanceCount: 1}),
		cmd(command.OpEndPass, nil),
	)
	patterns := DetectPatterns(v)

	var found bool
	for _, p := range patterns {
		if p.Name == "fullscreen_quad" {
			found = true
			if p.Confidence != 85 {
				t.Errorf("confidence = %d, want 85", p.Confidence)
			}
		}
	}
	if !found {
		t.Fatalf("expected fullscreen_quad pattern, got %+v", patterns)
	}
}

func TestDetectPatternsNoPatternsOnEmptyRun(t *testing.T) {
	v := validated()
	if patterns := DetectPatterns(v); len(patterns) != 0 {
		t.Fatalf("expected no patterns, got %+v", patterns)
	}
}

func TestDetectPatternsPingPongBuffers(t *testing.T) {
	v := validated(
		cmd(command.OpCreateBuffer, command.CreateBufferParams{ID: 0, Size: 1024, Usage: usageStorage}),
		cmd(command.OpCreateBuffer, command.CreateBufferParams{ID: 1, Size: 1024, Usage: usageStorage}),
	)
	patterns := DetectPatterns(v)

	var found bool
	for _, p := range patterns {
		if p.Name == "ping_pong_buffers" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ping_pong_buffers, got %+v", patterns)
	}
}

func TestDetectPatternsComputeSimulationConfidenceRisesWithRenderPath(t *testing.T) {
	computeOnly := validated(
		cmd(command.OpCreateComputePipeline, command.CreateResourceParams{ID: 0}),
		cmd(command.OpBeginComputePass, nil),
		cmd(command.OpSetPipeline, command.SetPipelineParams{ID: 0}),
		cmd(command.OpDispatch, command.DispatchParams{X: 1, Y: 1, Z: 1}),
		cmd(command.OpEndPass, nil),
	)
	var computeOnlyConfidence uint8
	for _, p := range DetectPatterns(computeOnly) {
		if p.Name == "compute_simulation" {
			computeOnlyConfidence = p.Confidence
		}
	}
	if computeOnlyConfidence != 50 {
		t.Fatalf("compute-only confidence = %d, want 50", computeOnlyConfidence)
	}

	withRender := validated(
		cmd(command.OpCreateComputePipeline, command.CreateResourceParams{ID: 0}),
		cmd(command.OpBeginComputePass, nil),
		cmd(command.OpSetPipeline, command.SetPipelineParams{ID: 0}),
		cmd(command.OpDispatch, command.DispatchParams{X: 1, Y: 1, Z: 1}),
		cmd(command.OpEndPass, nil),
		cmd(command.OpCreateRenderPipeline, command.CreateResourceParams{ID: 1}),
		cmd(command.OpBeginRenderPass, command.BeginRenderPassParams{ColorID: 0xFFFF, DepthID: 0xFFFF}),
		cmd(command.OpSetPipeline, command.SetPipelineParams{ID: 1}),
		cmd(command.OpDraw, command.DrawParams{VertexCount: 3, InstanceCount: 1}),
		cmd(command.OpEndPass, nil),
	)
	var withRenderConfidence uint8
	for _, p := range DetectPatterns(withRender) {
		if p.Name == "compute_simulation" {
			withRenderConfidence = p.Confidence
		}
	}
	if withRenderConfidence != 80 {
		t.Fatalf("compute+render confidence = %d, want 80", withRenderConfidence)
	}
}
