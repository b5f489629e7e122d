package bench

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// SpaceFunc is the spacing transformation under evaluation.
type SpaceFunc func(string) string

// Result holds the outcome for one case.
type Result struct {
	Case    *Case
	Got     string
	Pass    bool
	Metrics Metrics
}

// EvaluateCase runs fn on the case input and scores its edits against the
// expected output.
func EvaluateCase(c *Case, fn SpaceFunc, cfg Config) (Result, error) {
	truth, err := Edits(c.Input, c.Want)
	if err != nil {
		return Result{}, fmt.Errorf("case %s: expected output: %w", c.ID, err)
	}

	got := fn(c.Input)
	predicted, err := Edits(c.Input, got)
	if err != nil {
		return Result{}, fmt.Errorf("case %s: output: %w", c.ID, err)
	}

	return Result{
		Case:    c,
		Got:     got,
		Pass:    got == c.Want,
		Metrics: Evaluate(predicted, truth, cfg),
	}, nil
}

// Run evaluates all cases with up to workers goroutines (default:
// runtime.NumCPU()) and returns results with failures first, worst score
// first.
func Run(ctx context.Context, cases []*Case, fn SpaceFunc, cfg Config, workers int) ([]Result, error) {
	if len(cases) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(cases)))

	for i, c := range cases {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			r, err := EvaluateCase(c, fn, cfg)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Pass != b.Pass {
			return !a.Pass
		}
		if a.Metrics.WeightedScore != b.Metrics.WeightedScore {
			return a.Metrics.WeightedScore < b.Metrics.WeightedScore
		}
		return a.Case.ID < b.Case.ID
	})

	return results, nil
}

// Summary aggregates results across a corpus.
type Summary struct {
	Cases   int
	Passed  int
	Metrics Metrics
}

// Summarize totals the edit counts of all results.
func Summarize(results []Result, cfg Config) Summary {
	var s Summary
	var tp, fp, fn int
	for _, r := range results {
		s.Cases++
		if r.Pass {
			s.Passed++
		}
		tp += r.Metrics.TruePositives
		fp += r.Metrics.FalsePositives
		fn += r.Metrics.FalseNegatives
	}
	s.Metrics = newMetrics(tp, fp, fn, cfg)
	return s
}
