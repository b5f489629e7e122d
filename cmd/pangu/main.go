package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	pangu "github.com/jamesainslie/go-pangu"
	"github.com/jamesainslie/go-pangu/internal/config"
	"github.com/jamesainslie/go-pangu/internal/version"
)

type options struct {
	write      bool
	configPath string
	normalize  string
	logLevel   string
	color      string
}

func main() {
	cmd := newRootCmd(term.IsTerminal(int(os.Stdin.Fd())))
	if err := cmd.Execute(); err != nil {
		printError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// newRootCmd builds the pangu command. stdinTerminal reports whether standard
// input is attached to a terminal, in which case it is never read.
func newRootCmd(stdinTerminal bool) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "pangu [text_or_path]",
		Short: "paranoid text spacing",
		Long: `Insert whitespace between CJK characters and half-width letters, digits and symbols.

The argument is spaced as text unless it names an existing file, in which case
the file's contents are spaced. Piped standard input is always treated as text.`,
		Example: `  pangu "當你凝視著bug，bug也凝視著你"
  pangu ~/notes/draft.md
  pangu -w README.md
  cat draft.md | pangu`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.String(),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, args, opts, stdinTerminal)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.write, "write", "w", false, "write result to the file instead of stdout")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: nearest "+config.FileName+")")
	flags.StringVar(&opts.normalize, "normalize", "", "normalize input first (none|nfc|nfd|nfkc|nfkd)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	flags.StringVar(&opts.color, "color", "", "colorize errors (auto|on|off)")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options, stdinTerminal bool) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
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

	out := cmd.OutOrStdout()

	switch {
	case len(args) == 1 && opts.write:
		path, ok := pangu.DetectFilepath(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", pangu.ErrFileNotFound, args[0])
		}
		return rewrite(spacer, path)

	case len(args) == 1:
		text, err := spacer.Spacing(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err

	case opts.write:
		return errors.New("--write requires a file argument")

	case !stdinTerminal:
		text, err := spacer.Reader(cmd.InOrStdin())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err

	default:
		return cmd.Help()
	}
}

// loadConfig resolves the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Discover(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("normalize") {
		cfg.Normalize = opts.normalize
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	return cfg, cfg.Validate()
}

func rewrite(spacer *pangu.Spacer, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking file: %w", err)
	}

	text, err := spacer.File(path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(text+"\n"), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprint(w, "error: ")
	_, _ = fmt.Fprintln(w, err)
}
