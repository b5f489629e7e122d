package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	pangu "github.com/jamesainslie/go-pangu"
	"github.com/jamesainslie/go-pangu/internal/bench"
	"github.com/jamesainslie/go-pangu/internal/config"
	"github.com/jamesainslie/go-pangu/internal/version"
)

type options struct {
	corpusDir  string
	tolerance  int
	wp         float64
	wr         float64
	workers    int
	width      int
	all        bool
	configPath string
	normalize  string
}

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprint(cmd.ErrOrStderr(), "error: ")
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "pangu-bench",
		Short:         "Evaluate text spacing against a corpus of expected outputs",
		Args:          cobra.NoArgs,
		Version:       version.String(),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.corpusDir, "corpus", "testdata/corpus", "directory containing case files")
	flags.IntVar(&opts.tolerance, "tolerance", 0, "rune tolerance for edit matching")
	flags.Float64Var(&opts.wp, "wp", 1.0, "precision weight")
	flags.Float64Var(&opts.wr, "wr", 1.0, "recall weight")
	flags.IntVar(&opts.workers, "workers", runtime.NumCPU(), "number of cases evaluated concurrently")
	flags.IntVar(&opts.width, "width", 28, "display width of the input and output columns")
	flags.BoolVar(&opts.all, "all", false, "list passing cases too")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: nearest "+config.FileName+")")
	flags.StringVar(&opts.normalize, "normalize", "", "normalize input first (none|nfc|nfd|nfkc|nfkd)")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := config.Discover(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("normalize") {
		cfg.Normalize = opts.normalize
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	cfg.ApplyColor()

	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	form, err := cfg.Form()
	if err != nil {
		return err
	}

	spacerOpts := []pangu.Option{pangu.WithLogger(logger)}
	if form != nil {
		spacerOpts = append(spacerOpts, pangu.WithNormalization(*form))
	}
	spacer := pangu.New(spacerOpts...)

	cases, err := bench.LoadCorpus(opts.corpusDir)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %d cases from %s\n\n", len(cases), opts.corpusDir)

	evalCfg := bench.Config{
		Tolerance:       opts.tolerance,
		PrecisionWeight: opts.wp,
		RecallWeight:    opts.wr,
	}

	results, err := bench.Run(cmd.Context(), cases, spacer.Text, evalCfg, opts.workers)
	if err != nil {
		return err
	}

	summary := bench.Summarize(results, evalCfg)
	writeReport(out, results, summary, opts.width, opts.all)

	if failed := summary.Cases - summary.Passed; failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, summary.Cases)
	}
	return nil
}
