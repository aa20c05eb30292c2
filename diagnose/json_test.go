package diagnose

import "testing"

func TestCausesJSONOrderAndShape(t *testing.T) {
	causes := []Cause{{Name: "a", Probability: 90}, {Name: "b", Probability: 10}}
	got := CausesJSON(causes)
	want := `[{"name":"a","probability":90},{"name":"b","probability":10}]`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestCausesJSONEmpty(t *testing.T) {
	if got := CausesJSON(nil); got != "[]" {
		t.Errorf("got %s, want []", got)
	}
}

func TestWriteJSONStringEscaping(t *testing.T) {
	patterns := []Pattern{{Name: "quote\"and\\backslash", Description: "line1\nline2\ttab", Confidence: 50}}
	got := PatternsJSON(patterns)
	want := `[{"name":"quote\"and\\backslash","description":"line1\nline2\ttab","confidence":50}]`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestWriteJSONStringControlCharacterEscape(t *testing.T) {
	patterns := []Pattern{{Name: "bell\x07char", Description: "", Confidence: 1}}
	got := PatternsJSON(patterns)
	want := `[{"name":"bellchar","description":"","confidence":1}]`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMissingOperationsJSONOmitsEmptyContext(t *testing.T) {
	ops := []MissingOperation{{Operation: "draw", Severity: 1, Message: "no draw was issued"}}
	got := MissingOperationsJSON(ops)
	want := `[{"operation":"draw","severity":"error","message":"no draw was issued"}]`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMissingOperationsJSONIncludesContextWhenSet(t *testing.T) {
	ops := []MissingOperation{{Operation: "set_bind_group", Severity: 0, Message: "m", Context: "resource id 3"}}
	got := MissingOperationsJSON(ops)
	want := `[{"operation":"set_bind_group","severity":"warning","message":"m","context":"resource id 3"}]`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSymptomResultJSONWithAndWithoutCause(t *testing.T) {
	v := validated()
	withCause := DiagnoseSymptom(v, SymptomBlackScreen)
	if got := SymptomResultJSON(withCause); got == "" {
		t.Fatalf("expected non-empty JSON")
	} else if !containsAll(got, `"likely_cause"`, `"probability"`, `"symptom":"black_screen"`) {
		t.Errorf("got %s", got)
	}

	noCause := SymptomResult{Symptom: SymptomBlackScreen}
	got := SymptomResultJSON(noCause)
	want := `{"symptom":"black_screen","checks":[]}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !contains(s, sub) {
			return false
		}
	}
	return true
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
