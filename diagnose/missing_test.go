package diagnose

import (
	"testing"

	"github.com/gogpu/gpuvalidate/command"
	"github.com/gogpu/gpuvalidate/validate"
)

func TestDetectMissingOperationsEmptyRun(t *testing.T) {
	v := validated()
	missing := DetectMissingOperations(v)
	if len(missing) != 0 {
		t.Fatalf("expected no missing operations for an empty run, got %+v", missing)
	}
}

func TestDetectMissingOperationsRenderPathGaps(t *testing.T) {
	v := validated(cmd(command.OpCreateRenderPipeline, command.CreateResourceParams{ID: 0}))
	missing := DetectMissingOperations(v)

	var ops []string
	for _, m := range missing {
		ops = append(ops, m.Operation)
	}
	wantOrder := []string{"create_shader", "draw"}
	if len(ops) != len(wantOrder) {
		t.Fatalf("got operations %v, want %v", ops, wantOrder)
	}
	for i, want := range wantOrder {
		if ops[i] != want {
			t.Errorf("operation %d = %q, want %q", i, ops[i], want)
		}
	}
}

func TestDetectMissingOperationsDrawsWithoutPass(t *testing.T) {
	v := validated(
		cmd(command.OpCreateShader, command.CreateShaderParams{ID: 0, Code: command.PtrRange{Len: 4}}),
		cmd(command.OpCreateRenderPipeline, command.CreateResourceParams{ID: 0}),
		cmd(command.OpDraw, command.DrawParams{VertexCount: 3, InstanceCount: 1}),
	)
	missing := DetectMissingOperations(v)

	var found bool
	for _, m := range missing {
		if m.Operation == "begin_render_pass" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected begin_render_pass in %+v", missing)
	}
}

func TestDetectMissingOperationsUnboundBindGroupsSortedByID(t *testing.T) {
	v := validated(
		cmd(command.OpCreateBindGroup, command.CreateBindGroupParams{ID: 5, Entries: command.PtrRange{}}),
		cmd(command.OpCreateBindGroup, command.CreateBindGroupParams{ID: 2, Entries: command.PtrRange{}}),
	)
	missing := DetectMissingOperations(v)

	var contexts []string
	for _, m := range missing {
		if m.Operation == "set_bind_group" {
			contexts = append(contexts, m.Context)
		}
	}
	if len(contexts) != 2 {
		t.Fatalf("expected 2 unbound bind-group findings, got %+v", missing)
	}
	if contexts[0] != "resource id 2" || contexts[1] != "resource id 5" {
		t.Errorf("expected sorted ids [2, 5], got %v", contexts)
	}
}

func TestDetectMissingOperationsWrittenBindGroupIsNotFlagged(t *testing.T) {
	v := validated(
		cmd(command.OpCreateBindGroup, command.CreateBindGroupParams{ID: 0, Entries: command.PtrRange{}}),
		cmd(command.OpBeginRenderPass, command.BeginRenderPassParams{ColorID: 0xFFFF, DepthID: 0xFFFF}),
		cmd(command.OpSetBindGroup, command.SetBindGroupParams{Slot: 0, ID: 0}),
		cmd(command.OpEndPass, nil),
	)
	missing := DetectMissingOperations(v)
	for _, m := range missing {
		if m.Operation == "set_bind_group" {
			t.Errorf("did not expect set_bind_group finding, got %+v", missing)
		}
	}
}

func TestDetectMissingOperationsUnwrittenUniformBuffer(t *testing.T) {
	v := validated(cmd(command.OpCreateBuffer, command.CreateBufferParams{ID: 7, Size: 64, Usage: uint8(1 << 6)}))
	missing := DetectMissingOperations(v)

	var found bool
	for _, m := range missing {
		if m.Operation == "write_buffer" && m.Severity == validate.SeverityWarning && m.Context == "resource id 7" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an unwritten-uniform-buffer finding, got %+v", missing)
	}
}
