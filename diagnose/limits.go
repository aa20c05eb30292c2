package diagnose

import (
	"github.com/gogpu/gpuvalidate/types"
	"github.com/gogpu/gpuvalidate/validate"
)

// Static messages for the ValidateParameterValues re-check. They are a
// separate catalogue from package validate's: this is a post-hoc
// analysis against a caller-supplied Limits, not the validator's own
// live E007 checks (which cover buffer size and workgroup counts only;
// texture dimensions are checked here alone).
const (
	msgBufferOverLimit          = "buffer size exceeds the supplied limit"
	msgTexture1DOverLimit       = "1D texture width exceeds the supplied limit"
	msgTexture2DOverLimit       = "2D texture width or height exceeds the supplied limit"
	msgTexture3DOverLimit       = "3D texture width, height, or depth exceeds the supplied limit"
	msgWorkgroupCountOverLimit = "a dispatch workgroup count exceeded the supplied limit"
)

// ValidateParameterValues re-checks every resource already recorded by
// v against a caller-supplied Limits. Passing a zero Limits is not
// meaningful; callers that want the defaults should pass
// types.DefaultLimits().
func ValidateParameterValues(v *validate.Validator, limits types.Limits) []validate.Issue {
	var issues []validate.Issue

	for id, buf := range v.Buffers() {
		if uint64(buf.Size) > limits.MaxBufferSize {
			issues = append(issues, newIssue(validate.CodePassMismatch, msgBufferOverLimit, buf.CreatedAt, id))
		}
	}

	for id, tex := range v.Textures() {
		switch tex.Dimension {
		case types.TextureDimension1D:
			if tex.Width > limits.MaxTextureDimension1D {
				issues = append(issues, newIssue(validate.CodePassMismatch, msgTexture1DOverLimit, tex.CreatedAt, id))
			}
		case types.TextureDimension2D:
			if tex.Width > limits.MaxTextureDimension2D || tex.Height > limits.MaxTextureDimension2D {
				issues = append(issues, newIssue(validate.CodePassMismatch, msgTexture2DOverLimit, tex.CreatedAt, id))
			}
		case types.TextureDimension3D:
			if tex.Width > limits.MaxTextureDimension3D || tex.Height > limits.MaxTextureDimension3D || tex.Depth > limits.MaxTextureDimension3D {
				issues = append(issues, newIssue(validate.CodePassMismatch, msgTexture3DOverLimit, tex.CreatedAt, id))
			}
		}
	}

	x, y, z := v.MaxWorkgroupCounts()
	if x > limits.MaxComputeWorkgroupsPerDimension || y > limits.MaxComputeWorkgroupsPerDimension || z > limits.MaxComputeWorkgroupsPerDimension {
		issues = append(issues, validate.Issue{
			Code:     validate.CodePassMismatch,
			Severity: validate.SeverityError,
			Message:  msgWorkgroupCountOverLimit,
		})
	}

	return issues
}

func newIssue(code validate.Code, message string, commandIndex uint32, resourceID uint16) validate.Issue {
	id := resourceID
	return validate.Issue{
		Code:         code,
		Severity:     validate.SeverityError,
		Message:      message,
		CommandIndex: commandIndex,
		ResourceID:   &id,
	}
}
