package bench

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrNotSpacingEdit is returned by Edits when the two texts differ in more
// than whitespace.
var ErrNotSpacingEdit = errors.New("bench: texts differ in more than whitespace")

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // rune offset match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       0,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Edit is a single whitespace insertion or deletion. Pos is a rune offset
// into the source text.
type Edit struct {
	Pos    int
	Insert bool
}

// Edits aligns dst against src and returns the whitespace edits that turn
// src into dst.
func Edits(src, dst string) ([]Edit, error) {
	a, b := []rune(src), []rune(dst)

	var edits []Edit
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i < len(a) && j < len(b) && a[i] == b[j]:
			i++
			j++
		case j < len(b) && unicode.IsSpace(b[j]):
			edits = append(edits, Edit{Pos: i, Insert: true})
			j++
		case i < len(a) && unicode.IsSpace(a[i]):
			edits = append(edits, Edit{Pos: i})
			i++
		default:
			return nil, fmt.Errorf("%w: at rune %d", ErrNotSpacingEdit, i)
		}
	}

	return edits, nil
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Evaluate compares predicted edits against ground truth.
// Uses greedy left-to-right matching of edits of the same kind within
// tolerance.
func Evaluate(predicted, truth []Edit, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] || p.Insert != t.Insert {
				continue
			}
			diff := p.Pos - t.Pos
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return newMetrics(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

func newMetrics(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	// A case with nothing to do and nothing done is a perfect score.
	if tp+fp+fn == 0 {
		m.Precision, m.Recall, m.F1, m.WeightedScore = 1, 1, 1, 1
		return m
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}
