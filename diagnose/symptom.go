package diagnose

import "github.com/gogpu/gpuvalidate/validate"

// DiagnoseSymptom dispatches to one of the six independent, pure
// symptom routines. None of them mutate the validator.
func DiagnoseSymptom(v *validate.Validator, symptom Symptom) SymptomResult {
	switch symptom {
	case SymptomBlackScreen:
		return diagnoseBlackScreen(v)
	case SymptomWrongColors:
		return diagnoseWrongColors(v)
	case SymptomBlendIssues:
		return diagnoseBlendIssues(v)
	case SymptomTransparentOutput:
		return diagnoseTransparentOutput(v)
	case SymptomFlickering:
		return diagnoseFlickering(v)
	case SymptomGeometryIssues:
		return diagnoseGeometryIssues(v)
	default:
		return SymptomResult{Symptom: symptom}
	}
}

func check(name string, passed bool, severity validate.Severity, message, suggestion string) Check {
	return Check{Name: name, Passed: passed, Severity: severity, Message: message, Suggestion: suggestion}
}

// diagnoseBlackScreen checks draw_count first, then render-pass
// presence, then pipeline presence, then shader presence, in that
// fixed order.
func diagnoseBlackScreen(v *validate.Validator) SymptomResult {
	hasDraws := v.DrawCount() > 0
	hasPass := v.EverEnteredRenderPass()
	hasPipeline := len(v.RenderPipelines()) > 0
	hasShader := len(v.Shaders()) > 0

	checks := []Check{
		check("draws_issued", hasDraws, validate.SeverityError,
			"no draw command was ever issued", "issue at least one draw call"),
		check("render_pass_entered", hasPass, validate.SeverityError,
			"no render pass was ever begun", "wrap draws in begin_render_pass/end_pass"),
		check("render_pipeline_created", hasPipeline, validate.SeverityError,
			"no render pipeline was created", "create a render pipeline before drawing"),
		check("shader_created", hasShader, validate.SeverityError,
			"no shader was created", "create a shader for the render pipeline"),
	}

	cause, probability := "", uint8(0)
	switch {
	case !hasDraws:
		cause, probability = "no draws were issued", 95
	case !hasPass:
		cause, probability = "no render pass was ever begun", 90
	case !hasPipeline:
		cause, probability = "no render pipeline was created", 85
	case !hasShader:
		cause, probability = "no shader was created", 80
	}

	return SymptomResult{Symptom: SymptomBlackScreen, Checks: checks, LikelyCause: cause, Probability: probability}
}

func diagnoseWrongColors(v *validate.Validator) SymptomResult {
	hasShader := len(v.Shaders()) > 0
	hasBoundBindGroup := anyBindGroupBound(v)

	checks := []Check{
		check("shader_created", hasShader, validate.SeverityError,
			"no shader was created", "create a shader that writes the intended color"),
		check("bind_group_bound", hasBoundBindGroup, validate.SeverityWarning,
			"no bind group was ever bound to a slot", "bind the bind group carrying color/texture data"),
	}

	cause, probability := "", uint8(0)
	switch {
	case !hasShader:
		cause, probability = "missing or incorrect shader", 85
	case !hasBoundBindGroup:
		cause, probability = "unbound resources produce undefined colors", 70
	}

	return SymptomResult{Symptom: SymptomWrongColors, Checks: checks, LikelyCause: cause, Probability: probability}
}

func diagnoseBlendIssues(v *validate.Validator) SymptomResult {
	hasPipeline := len(v.RenderPipelines()) > 0
	multipleDraws := v.DrawCount() > 1

	checks := []Check{
		check("render_pipeline_created", hasPipeline, validate.SeverityError,
			"no render pipeline was created", "create a render pipeline with the intended blend state"),
		check("multiple_draws", multipleDraws, validate.SeverityWarning,
			"fewer than two draws were issued", "blending is only observable across overlapping draws"),
	}

	cause, probability := "", uint8(0)
	switch {
	case !hasPipeline:
		cause, probability = "no render pipeline was created", 85
	case !multipleDraws:
		cause, probability = "a single draw cannot exhibit blending artifacts", 50
	}

	return SymptomResult{Symptom: SymptomBlendIssues, Checks: checks, LikelyCause: cause, Probability: probability}
}

func diagnoseTransparentOutput(v *validate.Validator) SymptomResult {
	hasShader := len(v.Shaders()) > 0
	hasBoundBindGroup := anyBindGroupBound(v)

	checks := []Check{
		check("shader_created", hasShader, validate.SeverityError,
			"no shader was created", "create a shader that writes alpha correctly"),
		check("bind_group_bound", hasBoundBindGroup, validate.SeverityWarning,
			"no bind group was ever bound to a slot", "bind the bind group carrying alpha/texture data"),
	}

	cause, probability := "", uint8(0)
	switch {
	case !hasShader:
		cause, probability = "missing or incorrect shader", 80
	case !hasBoundBindGroup:
		cause, probability = "unbound resources leave alpha undefined", 65
	}

	return SymptomResult{Symptom: SymptomTransparentOutput, Checks: checks, LikelyCause: cause, Probability: probability}
}

func diagnoseFlickering(v *validate.Validator) SymptomResult {
	hasBufferWrite := anyBufferWritten(v)
	hasDraws := v.DrawCount() > 0

	checks := []Check{
		check("buffer_written", hasBufferWrite, validate.SeverityWarning,
			"no buffer was ever written", "initialize buffer contents before drawing"),
		check("draws_issued", hasDraws, validate.SeverityError,
			"no draw command was ever issued", "issue at least one draw call"),
	}

	cause, probability := "", uint8(0)
	switch {
	case !hasBufferWrite:
		cause, probability = "uninitialized buffer contents", 75
	case !hasDraws:
		cause, probability = "no draws were issued", 60
	}

	return SymptomResult{Symptom: SymptomFlickering, Checks: checks, LikelyCause: cause, Probability: probability}
}

func diagnoseGeometryIssues(v *validate.Validator) SymptomResult {
	hasVertexBuffer := v.VertexBufferEverBound()
	hasDraws := v.DrawCount() > 0

	checks := []Check{
		check("vertex_buffer_bound", hasVertexBuffer, validate.SeverityError,
			"no vertex buffer was ever bound", "bind a vertex buffer before drawing"),
		check("draws_issued", hasDraws, validate.SeverityError,
			"no draw command was ever issued", "issue at least one draw call"),
	}

	cause, probability := "", uint8(0)
	switch {
	case !hasVertexBuffer:
		cause, probability = "no vertex data was ever supplied", 85
	case !hasDraws:
		cause, probability = "no draws were issued", 60
	}

	return SymptomResult{Symptom: SymptomGeometryIssues, Checks: checks, LikelyCause: cause, Probability: probability}
}

func anyBindGroupBound(v *validate.Validator) bool {
	for id := range v.BindGroups() {
		if v.BindGroupEverBound(id) {
			return true
		}
	}
	return false
}

func anyBufferWritten(v *validate.Validator) bool {
	for id := range v.Buffers() {
		if v.BufferWritten(id) {
			return true
		}
	}
	return false
}
