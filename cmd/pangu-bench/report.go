package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/jamesainslie/go-pangu/internal/bench"
)

const idWidth = 20

func writeReport(w io.Writer, results []bench.Result, s bench.Summary, width int, all bool) {
	passLabel := color.New(color.FgGreen).Sprint("PASS")
	failLabel := color.New(color.FgRed, color.Bold).Sprint("FAIL")
	rule := strings.Repeat("-", 5+idWidth+1+2*(width+1)+6)

	fmt.Fprintf(w, "%-4s %s %s %s %s\n", "",
		fit("Case", idWidth), fit("Input", width), fit("Got", width), "F1")
	fmt.Fprintln(w, rule)

	for _, r := range results {
		if r.Pass && !all {
			continue
		}
		label := passLabel
		if !r.Pass {
			label = failLabel
		}
		fmt.Fprintf(w, "%s %s %s %s %.2f\n", label,
			fit(r.Case.ID, idWidth), fit(r.Case.Input, width), fit(r.Got, width), r.Metrics.F1)
		if !r.Pass {
			fmt.Fprintf(w, "%-4s %s %s %s\n", "",
				fit("", idWidth), fit("want:", width), fit(r.Case.Want, width))
		}
	}

	fmt.Fprintln(w, rule)
	m := s.Metrics
	fmt.Fprintf(w, "Passed: %d/%d  Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		s.Passed, s.Cases, m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Fprintf(w, "(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
}

// fit truncates or pads s to exactly width terminal cells. Newlines are shown
// as ⏎ so each result stays on one row.
func fit(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", "⏎")
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "...")
	}
	return runewidth.FillRight(s, width)
}
