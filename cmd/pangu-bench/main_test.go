package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/jamesainslie/go-pangu/internal/bench"
)

func writeCase(t *testing.T, dir, name, input, want string) {
	t.Helper()
	content := "# Source: manual\n# Title: " + name + "\n\n" + input + "\n---\n" + want + "\n"
	if err := os.WriteFile(filepath.Join(dir, name+".txt"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBench_AllPass(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "hash", "你好#world", "你好 #world")
	writeCase(t, dir, "plain", "中文abc", "中文 abc")

	out, err := execute(t, "--corpus", dir, "--all")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "Loaded 2 cases") {
		t.Errorf("missing load line:\n%s", out)
	}
	if !strings.Contains(out, "Passed: 2/2") {
		t.Errorf("missing summary:\n%s", out)
	}
	if !strings.Contains(out, "PASS hash") {
		t.Errorf("--all should list passing cases:\n%s", out)
	}
}

func TestBench_Failure(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "ok", "中文abc", "中文 abc")
	writeCase(t, dir, "wrong", "中文abc", "中文abc")

	out, err := execute(t, "--corpus", dir)
	if err == nil {
		t.Fatal("expected error when a case fails")
	}
	if !strings.Contains(err.Error(), "1 of 2 cases failed") {
		t.Errorf("error = %v", err)
	}
	if !strings.Contains(out, "FAIL wrong") {
		t.Errorf("missing failing row:\n%s", out)
	}
	if strings.Contains(out, "PASS ok") {
		t.Errorf("passing rows should be hidden without --all:\n%s", out)
	}
}

func TestBench_BadNormalize(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "plain", "中文abc", "中文 abc")

	if _, err := execute(t, "--corpus", dir, "--normalize", "nfc"); err != nil {
		t.Errorf("Execute(nfc) error = %v", err)
	}
	if _, err := execute(t, "--corpus", dir, "--normalize", "bogus"); err == nil {
		t.Error("expected error for unknown normalization form")
	}
}

func TestBench_MissingCorpus(t *testing.T) {
	if _, err := execute(t, "--corpus", filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing corpus")
	}
}

func TestBench_Testdata(t *testing.T) {
	corpus, err := filepath.Abs("../../testdata/corpus")
	if err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--corpus", corpus, "--workers", "2")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads ascii", "abc", 5, "abc  "},
		{"pads wide", "中文", 6, "中文  "},
		{"truncates wide", "當你凝視著bug", 8, "當你... "},
		{"newlines", "a\nb", 4, "a⏎b "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fit(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("fit(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if w := runewidth.StringWidth(got); w != tt.width {
				t.Errorf("width = %d, want %d", w, tt.width)
			}
		})
	}
}

func TestWriteReport(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = true

	c := &bench.Case{ID: "x", Input: "中文abc", Want: "中文 abc"}
	results := []bench.Result{{Case: c, Got: "中文abc", Metrics: bench.Metrics{FalseNegatives: 1}}}
	s := bench.Summarize(results, bench.DefaultConfig())

	var buf bytes.Buffer
	writeReport(&buf, results, s, 10, false)

	out := buf.String()
	for _, want := range []string{"FAIL x", "want:", "中文 abc", "Passed: 0/1", "(TP: 0, FP: 0, FN: 1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
