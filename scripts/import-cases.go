//go:build ignore

// Import tab-separated spacing cases into benchmark corpus format.
// Each line is "id<TAB>title<TAB>input<TAB>want"; "\n" in a field stands for
// a newline. Lines starting with "#" are skipped.
// Usage: go run ./scripts/import-cases.go cases.tsv [source]
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const outDir = "testdata/corpus"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: go run ./scripts/import-cases.go FILE.tsv [SOURCE]")
		os.Exit(1)
	}
	source := "manual"
	if len(os.Args) > 2 {
		source = os.Args[2]
	}

	n, err := importCases(os.Args[1], source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nDone! %d case files written to %s/\n", n, outDir)
}

func importCases(path, source string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", outDir, err)
	}

	unescape := strings.NewReplacer(`\n`, "\n", `\t`, "\t")

	n := 0
	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return n, fmt.Errorf("line %d: want 4 fields, got %d", lineNo, len(fields))
		}
		id, title := fields[0], fields[1]
		input, want := unescape.Replace(fields[2]), unescape.Replace(fields[3])

		var b strings.Builder
		fmt.Fprintf(&b, "# Source: %s\n# Title: %s\n\n%s\n---\n%s\n", source, title, input, want)

		outFile := filepath.Join(outDir, id+".txt")
		if err := os.WriteFile(outFile, []byte(b.String()), 0644); err != nil {
			return n, fmt.Errorf("writing %s: %w", outFile, err)
		}
		fmt.Printf("  -> %s\n", outFile)
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("scanning file: %w", err)
	}
	return n, nil
}
