package bench

import (
	"context"
	"errors"
	"strings"
	"testing"

	pangu "github.com/jamesainslie/go-pangu"
)

func testCases() []*Case {
	return []*Case{
		{ID: "a_hash", Input: "你好#world", Want: "你好 #world"},
		{ID: "b_plain", Input: "中文abc", Want: "中文 abc"},
		{ID: "c_noop", Input: "中文", Want: "中文"},
	}
}

func TestEvaluateCase(t *testing.T) {
	c := &Case{ID: "x", Input: "當你凝視著bug，bug也凝視著你", Want: "當你凝視著 bug，bug 也凝視著你"}

	r, err := EvaluateCase(c, pangu.SpacingText, DefaultConfig())
	if err != nil {
		t.Fatalf("EvaluateCase() error = %v", err)
	}
	if !r.Pass {
		t.Errorf("expected pass, got %q", r.Got)
	}
	if r.Metrics.TruePositives != 2 || r.Metrics.F1 != 1 {
		t.Errorf("Metrics = %+v", r.Metrics)
	}
}

func TestEvaluateCase_BadExpectation(t *testing.T) {
	c := &Case{ID: "bad", Input: "中文abc", Want: "中文 xyz"}

	_, err := EvaluateCase(c, pangu.SpacingText, DefaultConfig())
	if !errors.Is(err, ErrNotSpacingEdit) {
		t.Errorf("expected ErrNotSpacingEdit, got: %v", err)
	}
}

func TestRun(t *testing.T) {
	// A transform that never inserts spaces fails every case with edits.
	identity := func(s string) string { return s }

	results, err := Run(context.Background(), testCases(), identity, DefaultConfig(), 2)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	// Failures first, then ordered by ID.
	wantOrder := []string{"a_hash", "b_plain", "c_noop"}
	for i, id := range wantOrder {
		if results[i].Case.ID != id {
			t.Errorf("results[%d] = %s, want %s", i, results[i].Case.ID, id)
		}
	}
	if results[0].Pass || !results[2].Pass {
		t.Errorf("unexpected pass flags: %v %v", results[0].Pass, results[2].Pass)
	}

	s := Summarize(results, DefaultConfig())
	if s.Cases != 3 || s.Passed != 1 {
		t.Errorf("Summary = %+v", s)
	}
	if s.Metrics.FalseNegatives != 2 {
		t.Errorf("FalseNegatives = %d, want 2", s.Metrics.FalseNegatives)
	}
}

func TestRun_Spacer(t *testing.T) {
	results, err := Run(context.Background(), testCases(), pangu.SpacingText, DefaultConfig(), 0)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	s := Summarize(results, DefaultConfig())
	if s.Passed != s.Cases {
		for _, r := range results {
			if !r.Pass {
				t.Logf("%s: got %q, want %q", r.Case.ID, r.Got, r.Case.Want)
			}
		}
		t.Errorf("passed %d of %d", s.Passed, s.Cases)
	}
}

func TestRun_Corpus(t *testing.T) {
	cases, err := LoadCorpus("../../testdata/corpus")
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}

	results, err := Run(context.Background(), cases, pangu.SpacingText, DefaultConfig(), 4)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, r := range results {
		if !r.Pass {
			t.Errorf("%s: got %q, want %q", r.Case.ID, r.Got, r.Case.Want)
		}
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := Run(ctx, testCases(), strings.ToUpper, DefaultConfig(), 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestRun_Empty(t *testing.T) {
	results, err := Run(context.Background(), nil, pangu.SpacingText, DefaultConfig(), 1)
	if err != nil || results != nil {
		t.Errorf("Run(nil) = %v, %v", results, err)
	}
}
