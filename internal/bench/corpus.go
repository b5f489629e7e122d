// Package bench evaluates text spacing against a corpus of expected outputs.
package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// caseSeparator divides a case body into input and expected output.
const caseSeparator = "\n---\n"

// Header contains metadata parsed from a case file header.
type Header struct {
	Source string
	Title  string
}

// ParseHeader extracts metadata from the leading "# Key: value" comment lines.
// The header ends at the first blank line. Returns the header and the text
// after it.
func ParseHeader(text string) (Header, string, error) {
	var h Header

	head, body, ok := strings.Cut(text, "\n\n")
	if !ok {
		return Header{}, "", errors.New("missing blank line after header")
	}

	for _, line := range strings.Split(head, "\n") {
		if !strings.HasPrefix(line, "#") {
			return Header{}, "", fmt.Errorf("header line without '#': %q", line)
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	return h, body, nil
}

// Case is one input with its expected spaced output.
type Case struct {
	ID     string // filename without extension
	Source string
	Title  string
	Input  string
	Want   string
}

// ParseCase splits a case body at the "---" line.
func ParseCase(body string) (input, want string, err error) {
	input, want, ok := strings.Cut(body, caseSeparator)
	if !ok {
		return "", "", errors.New("missing --- separator")
	}
	return input, strings.TrimSuffix(want, "\n"), nil
}

// LoadCase loads and parses a case file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	header, body, err := ParseHeader(text)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	input, want, err := ParseCase(body)
	if err != nil {
		return nil, fmt.Errorf("parse case: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	return &Case{
		ID:     id,
		Source: header.Source,
		Title:  header.Title,
		Input:  input,
		Want:   want,
	}, nil
}

// LoadCorpus loads all .txt case files from a directory.
func LoadCorpus(dir string) ([]*Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var cases []*Case
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		c, err := LoadCase(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		cases = append(cases, c)
	}

	return cases, nil
}
