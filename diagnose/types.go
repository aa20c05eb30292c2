// Package diagnose implements the post-validation diagnosis layer:
// symptom-driven checks, missing-operation detection, pattern
// detection, and likely-cause ranking over an already-populated
// validate.Validator, plus the deterministic JSON emitters for each
// record type.
package diagnose

import "github.com/gogpu/gpuvalidate/validate"

// Symptom is one of the six user-visible failure modes this layer can
// diagnose.
type Symptom uint8

const (
	SymptomBlackScreen Symptom = iota
	SymptomWrongColors
	SymptomBlendIssues
	SymptomTransparentOutput
	SymptomFlickering
	SymptomGeometryIssues
)

// String implements fmt.Stringer.
func (s Symptom) String() string {
	switch s {
	case SymptomBlackScreen:
		return "black_screen"
	case SymptomWrongColors:
		return "wrong_colors"
	case SymptomBlendIssues:
		return "blend_issues"
	case SymptomTransparentOutput:
		return "transparent_output"
	case SymptomFlickering:
		return "flickering"
	case SymptomGeometryIssues:
		return "geometry_issues"
	default:
		return "unknown_symptom"
	}
}

// Check is one named assertion evaluated while diagnosing a symptom.
// Suggestion is empty when the check carries none.
type Check struct {
	Name       string
	Passed     bool
	Severity   validate.Severity
	Message    string
	Suggestion string
}

// SymptomResult is the outcome of diagnosing one Symptom. LikelyCause
// is empty when the cascade found nothing conclusive.
type SymptomResult struct {
	Symptom     Symptom
	Checks      []Check
	LikelyCause string
	Probability uint8
}

// MissingOperation is one gap detected by DetectMissingOperations.
// Context is empty when the finding carries none.
type MissingOperation struct {
	Operation string
	Severity  validate.Severity
	Message   string
	Context   string
}

// Pattern is one usage pattern detected by DetectPatterns.
type Pattern struct {
	Name        string
	Description string
	Confidence  uint8
}

// Cause is one ranked hypothesis produced by AnalyzeLikelyCauses.
type Cause struct {
	Name        string
	Probability uint8
}

const (
	maxMissingOperations = 16
	maxPatterns          = 8
	maxCauses            = 16
	maxChecksPerSymptom  = 16
)
