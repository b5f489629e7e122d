package pangu

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSpacingFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.txt", "與PM戰鬥的人，應當小心自己不要成為PM\n")

	got, err := SpacingFile(path)
	if err != nil {
		t.Fatalf("SpacingFile() error = %v", err)
	}
	want := "與 PM 戰鬥的人，應當小心自己不要成為 PM"
	if got != want {
		t.Errorf("SpacingFile() = %q, want %q", got, want)
	}
}

func TestSpacingFile_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "latin1.txt")
	if err := os.WriteFile(invalid, []byte{'c', 'a', 'f', 0xe9}, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"not found", filepath.Join(dir, "missing.txt"), ErrFileNotFound},
		{"directory", dir, ErrNotRegularFile},
		{"invalid utf-8", invalid, ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SpacingFile(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestDetectFilepath(t *testing.T) {
	dir := t.TempDir()
	abs := writeFile(t, dir, "note.txt", "中文abc")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	home := t.TempDir()
	homeFile := writeFile(t, home, "home.txt", "中文abc")
	t.Setenv("HOME", home)
	t.Chdir(dir)

	tests := []struct {
		name   string
		src    string
		want   string
		wantOK bool
	}{
		{"empty", "", "", false},
		{"absolute file", abs, abs, true},
		{"absolute missing", filepath.Join(dir, "missing.txt"), "", false},
		{"relative file", "note.txt", abs, true},
		{"relative dot file", "./note.txt", abs, true},
		{"relative directory", "sub", "", false},
		{"home file", "~/home.txt", homeFile, true},
		{"home missing", "~/missing.txt", "", false},
		{"other user", "~nobody/home.txt", "", false},
		{"plain text", "當你凝視著bug", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectFilepath(tt.src)
			if ok != tt.wantOK {
				t.Fatalf("DetectFilepath(%q) ok = %v, want %v", tt.src, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("DetectFilepath(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestSpacing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "input.txt", "你好#world")
	t.Chdir(dir)

	got, err := Spacing("input.txt")
	if err != nil {
		t.Fatalf("Spacing(file) error = %v", err)
	}
	if got != "你好 #world" {
		t.Errorf("Spacing(file) = %q", got)
	}

	got, err = Spacing("hello#你好")
	if err != nil {
		t.Fatalf("Spacing(text) error = %v", err)
	}
	if got != "hello# 你好" {
		t.Errorf("Spacing(text) = %q", got)
	}
}

func TestSpacer_Reader(t *testing.T) {
	s := New()

	got, err := s.Reader(strings.NewReader("這是一個ANDROID APP\n"))
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	if got != "這是一個 ANDROID APP" {
		t.Errorf("Reader() = %q", got)
	}

	if _, err := s.Reader(strings.NewReader("\xff\xfe")); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got: %v", err)
	}

	readErr := errors.New("boom")
	if _, err := s.Reader(iotest.ErrReader(readErr)); !errors.Is(err, readErr) {
		t.Errorf("expected wrapped read error, got: %v", err)
	}
}
