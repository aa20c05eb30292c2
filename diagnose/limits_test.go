package diagnose

import (
	"testing"

	"github.com/gogpu/gpuvalidate/command"
	"github.com/gogpu/gpuvalidate/types"
	"github.com/gogpu/gpuvalidate/validate"
)

func TestValidateParameterValuesBufferOverLimit(t *testing.T) {
	v := validated(cmd(command.OpCreateBuffer, command.CreateBufferParams{ID: 0, Size: 1000, Usage: usageVertex}))

	limits := types.DefaultLimits()
	limits.MaxBufferSize = 500
	issues := ValidateParameterValues(v, limits)

	if len(issues) != 1 || issues[0].Code != validate.CodePassMismatch {
		t.Fatalf("expected one over-limit issue, got %+v", issues)
	}
	if issues[0].ResourceID == nil || *issues[0].ResourceID != 0 {
		t.Errorf("expected resource id 0, got %v", issues[0].ResourceID)
	}
}

func TestValidateParameterValuesWithinDefaultLimits(t *testing.T) {
	v := validated(cmd(command.OpCreateBuffer, command.CreateBufferParams{ID: 0, Size: 1024, Usage: usageVertex}))
	issues := ValidateParameterValues(v, types.DefaultLimits())
	if len(issues) != 0 {
		t.Fatalf("expected no issues under default limits, got %+v", issues)
	}
}

func TestValidateParameterValuesWorkgroupOverLimit(t *testing.T) {
	v := validated(
		cmd(command.OpCreateComputePipeline, command.CreateResourceParams{ID: 0}),
		cmd(command.OpBeginComputePass, nil),
		cmd(command.OpSetPipeline, command.SetPipelineParams{ID: 0}),
		cmd(command.OpDispatch, command.DispatchParams{X: 70000, Y: 1, Z: 1}),
		cmd(command.OpEndPass, nil),
	)

	limits := types.DefaultLimits()
	issues := ValidateParameterValues(v, limits)

	var found bool
	for _, issue := range issues {
		if issue.Message == msgWorkgroupCountOverLimit {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a workgroup-count-over-limit issue, got %+v", issues)
	}
}
