package diagnose

import (
	"strings"

	"github.com/gogpu/gpuvalidate/validate"
)

// causeBaseline maps each stable diagnostic code to a fixed cause name
// and base probability.
var causeBaseline = map[validate.Code]struct {
	name        string
	probability uint8
}{
	validate.CodeMissingResource:   {"a missing resource reference", 70},
	validate.CodeStateViolation:    {"an invalid pass or pipeline state", 80},
	validate.CodeMemoryBounds:      {"an out-of-bounds memory access", 85},
	validate.CodeDuplicateID:       {"a duplicate resource id", 40},
	validate.CodeInvalidDescriptor: {"an invalid resource descriptor", 75},
	validate.CodePassMismatch:      {"a pass or limit mismatch", 70},
	validate.CodeNestedPass:        {"a nested pass", 65},
	validate.CodeResourceExhausted: {"the per-kind resource limit was reached", 55},
	validate.CodeZeroCount:         {"a zero-sized draw or dispatch", 30},
	validate.CodeNullPointer:       {"a null or misaligned pointer", 25},
	validate.CodeSuspiciousDesc:    {"an oversized descriptor", 20},
}

// AnalyzeLikelyCauses merges issue-derived causes, missing-operation
// causes, and pattern-aware probability adjustments into a single
// ranked list. The result is insertion-sort stable descending by
// probability, capped at 16.
func AnalyzeLikelyCauses(issues []validate.Issue, missing []MissingOperation, patterns []Pattern) []Cause {
	var causes []Cause

	for _, issue := range issues {
		if base, ok := causeBaseline[issue.Code]; ok {
			causes = append(causes, Cause{Name: base.name, Probability: base.probability})
		}
	}
	for _, mo := range missing {
		probability := uint8(60)
		if mo.Severity == validate.SeverityError {
			probability = 90
		}
		causes = append(causes, Cause{Name: mo.Message, Probability: probability})
	}

	applyPatternAdjustments(causes, patterns)

	insertionSortDescending(causes)
	if len(causes) > maxCauses {
		causes = causes[:maxCauses]
	}
	return causes
}

func applyPatternAdjustments(causes []Cause, patterns []Pattern) {
	for _, p := range patterns {
		switch p.Name {
		case "fullscreen_quad":
			adjustCausesContaining(causes, "vertex", -30)
		case "compute_simulation":
			adjustCausesContaining(causes, "compute", 15)
			adjustCausesContaining(causes, "dispatch", 15)
		case "ping_pong_buffers":
			adjustCausesContaining(causes, "buffer", 10)
		}
	}
}

func adjustCausesContaining(causes []Cause, substr string, delta int) {
	for i := range causes {
		if strings.Contains(causes[i].Name, substr) {
			causes[i].Probability = satAdd(causes[i].Probability, delta)
		}
	}
}

// insertionSortDescending sorts causes by probability, descending,
// preserving the relative order of equal-probability entries.
func insertionSortDescending(causes []Cause) {
	for i := 1; i < len(causes); i++ {
		key := causes[i]
		j := i - 1
		for j >= 0 && causes[j].Probability < key.Probability {
			causes[j+1] = causes[j]
			j--
		}
		causes[j+1] = key
	}
}
