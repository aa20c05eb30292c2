package diagnose

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// writeJSONString escapes s and writes it, quotes included, to w.
// Escaping never allocates an intermediate string for
// the common case of a clean ASCII input: it copies runs of
// pass-through bytes directly and only builds an escape when needed.
func writeJSONString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, `"`); err != nil {
		return err
	}
	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		esc, ok := shortEscape(b)
		switch {
		case ok:
			if _, err := io.WriteString(w, s[start:i]); err != nil {
				return err
			}
			if _, err := io.WriteString(w, esc); err != nil {
				return err
			}
			start = i + 1
		case b < 0x20:
			if _, err := io.WriteString(w, s[start:i]); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `\u%04x`, b); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if _, err := io.WriteString(w, s[start:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, `"`)
	return err
}

// shortEscape returns the two-character escape for the five bytes that
// get one (backslash, quote, newline, tab, carriage return).
func shortEscape(b byte) (string, bool) {
	switch b {
	case '\\':
		return `\\`, true
	case '"':
		return `\"`, true
	case '\n':
		return `\n`, true
	case '\t':
		return `\t`, true
	case '\r':
		return `\r`, true
	default:
		return "", false
	}
}

// WriteCausesJSON streams causes as a JSON array of {name, probability}
// objects, sorted descending by probability (stable for equal
// probabilities). The caller's slice is not reordered.
func WriteCausesJSON(w io.Writer, causes []Cause) error {
	causes = append([]Cause(nil), causes...)
	insertionSortDescending(causes)
	io.WriteString(w, "[")
	for i, c := range causes {
		if i > 0 {
			io.WriteString(w, ",")
		}
		io.WriteString(w, `{"name":`)
		writeJSONString(w, c.Name)
		io.WriteString(w, `,"probability":`)
		io.WriteString(w, strconv.Itoa(int(c.Probability)))
		io.WriteString(w, "}")
	}
	_, err := io.WriteString(w, "]")
	return err
}

// CausesJSON is the allocating convenience form of WriteCausesJSON.
func CausesJSON(causes []Cause) string {
	var b strings.Builder
	_ = WriteCausesJSON(&b, causes)
	return b.String()
}

// WritePatternsJSON streams patterns as a JSON array.
func WritePatternsJSON(w io.Writer, patterns []Pattern) error {
	io.WriteString(w, "[")
	for i, p := range patterns {
		if i > 0 {
			io.WriteString(w, ",")
		}
		io.WriteString(w, `{"name":`)
		writeJSONString(w, p.Name)
		io.WriteString(w, `,"description":`)
		writeJSONString(w, p.Description)
		io.WriteString(w, `,"confidence":`)
		io.WriteString(w, strconv.Itoa(int(p.Confidence)))
		io.WriteString(w, "}")
	}
	_, err := io.WriteString(w, "]")
	return err
}

// PatternsJSON is the allocating convenience form of WritePatternsJSON.
func PatternsJSON(patterns []Pattern) string {
	var b strings.Builder
	_ = WritePatternsJSON(&b, patterns)
	return b.String()
}

// WriteMissingOperationsJSON streams missing operations as a JSON array.
func WriteMissingOperationsJSON(w io.Writer, ops []MissingOperation) error {
	io.WriteString(w, "[")
	for i, op := range ops {
		if i > 0 {
			io.WriteString(w, ",")
		}
		io.WriteString(w, `{"operation":`)
		writeJSONString(w, op.Operation)
		io.WriteString(w, `,"severity":`)
		writeJSONString(w, op.Severity.String())
		io.WriteString(w, `,"message":`)
		writeJSONString(w, op.Message)
		if op.Context != "" {
			io.WriteString(w, `,"context":`)
			writeJSONString(w, op.Context)
		}
		io.WriteString(w, "}")
	}
	_, err := io.WriteString(w, "]")
	return err
}

// MissingOperationsJSON is the allocating convenience form of
// WriteMissingOperationsJSON.
func MissingOperationsJSON(ops []MissingOperation) string {
	var b strings.Builder
	_ = WriteMissingOperationsJSON(&b, ops)
	return b.String()
}

// WriteSymptomResultJSON streams a single symptom diagnosis.
func WriteSymptomResultJSON(w io.Writer, r SymptomResult) error {
	io.WriteString(w, `{"symptom":`)
	writeJSONString(w, r.Symptom.String())
	io.WriteString(w, `,"checks":[`)
	for i, c := range r.Checks {
		if i > 0 {
			io.WriteString(w, ",")
		}
		io.WriteString(w, `{"name":`)
		writeJSONString(w, c.Name)
		io.WriteString(w, `,"passed":`)
		io.WriteString(w, strconv.FormatBool(c.Passed))
		io.WriteString(w, `,"severity":`)
		writeJSONString(w, c.Severity.String())
		io.WriteString(w, `,"message":`)
		writeJSONString(w, c.Message)
		if c.Suggestion != "" {
			io.WriteString(w, `,"suggestion":`)
			writeJSONString(w, c.Suggestion)
		}
		io.WriteString(w, "}")
	}
	io.WriteString(w, `]`)
	if r.LikelyCause != "" {
		io.WriteString(w, `,"likely_cause":`)
		writeJSONString(w, r.LikelyCause)
		io.WriteString(w, `,"probability":`)
		io.WriteString(w, strconv.Itoa(int(r.Probability)))
	}
	_, err := io.WriteString(w, "}")
	return err
}

// SymptomResultJSON is the allocating convenience form of
// WriteSymptomResultJSON.
func SymptomResultJSON(r SymptomResult) string {
	var b strings.Builder
	_ = WriteSymptomResultJSON(&b, r)
	return b.String()
}
