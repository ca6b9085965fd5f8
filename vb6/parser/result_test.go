package parser

import (
	"strings"
	"testing"
)

func TestResultOK(t *testing.T) {
	r := OK(42)
	if !r.HasResult() {
		t.Error("OK result must have a value")
	}
	if r.HasFailures() {
		t.Error("OK result must have no failures")
	}
	v, ok := r.Value()
	if !ok || v != 42 {
		t.Errorf("Value = %v %v, want 42 true", v, ok)
	}
	if r.MustValue() != 42 {
		t.Error("MustValue mismatch")
	}
}

func TestResultValueWithFailures(t *testing.T) {
	r := OK("tree", Failure{Kind: FailUnknownToken, Offset: 3, LineStart: 1, LineEnd: 1})
	if !r.HasResult() || !r.HasFailures() {
		t.Error("a value and failures must coexist")
	}
	v, ok, failures := r.Unpack()
	if !ok || v != "tree" {
		t.Errorf("Unpack value = %v %v", v, ok)
	}
	if len(failures) != 1 {
		t.Fatalf("len(failures) = %d, want 1", len(failures))
	}
}

func TestResultFail(t *testing.T) {
	r := Fail[int](Failure{Kind: FailUnexpectedEOF})
	if r.HasResult() {
		t.Error("Fail result must have no value")
	}
	if _, ok := r.Value(); ok {
		t.Error("Value must report absence")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustValue on a failed result must panic")
		}
	}()
	r.MustValue()
}

func TestResultAccumulation(t *testing.T) {
	r := OK(1)
	r.PushFailure(Failure{Kind: FailUnknownToken, Offset: 0})
	r.AppendFailures([]Failure{
		{Kind: FailUnknownStatement, Offset: 5},
		{Kind: FailUnexpectedEOF, Offset: 9},
	})
	failures := r.Failures()
	if len(failures) != 3 {
		t.Fatalf("len(failures) = %d, want 3", len(failures))
	}
	// order of accumulation is preserved
	want := []FailureKind{FailUnknownToken, FailUnknownStatement, FailUnexpectedEOF}
	for i, kind := range want {
		if failures[i].Kind != kind {
			t.Errorf("failures[%d].Kind = %v, want %v", i, failures[i].Kind, kind)
		}
	}
}

func TestFailureString(t *testing.T) {
	f := Failure{Kind: FailUnknownToken, Offset: 12, LineStart: 3, LineEnd: 3, Detail: "?"}
	out := f.String()
	if !strings.Contains(out, "3") || !strings.Contains(out, string(FailUnknownToken)) {
		t.Errorf("String = %q, want line and kind present", out)
	}
}
