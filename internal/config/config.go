// Package config loads command-line defaults from a .pangu.toml file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"golang.org/x/text/unicode/norm"
)

// FileName is the configuration file searched for from the working directory
// upwards.
const FileName = ".pangu.toml"

// Config holds settings shared by the pangu commands.
type Config struct {
	Normalize string `toml:"normalize"` // none|nfc|nfd|nfkc|nfkd
	LogLevel  string `toml:"log_level"` // debug|info|warn|error
	Color     string `toml:"color"`     // auto|on|off
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Normalize: "none",
		LogLevel:  "warn",
		Color:     "auto",
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the file at explicit if set, otherwise the nearest FileName
// above the working directory, otherwise the defaults.
func Discover(explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(".")
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every field parses.
func (c Config) Validate() error {
	if _, err := c.Form(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Color) {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("unsupported color %q (must be auto, on or off)", c.Color)
	}
	return nil
}

// Form returns the normalization form, or nil for none.
func (c Config) Form() (*norm.Form, error) {
	var f norm.Form
	switch strings.ToLower(c.Normalize) {
	case "", "none":
		return nil, nil
	case "nfc":
		f = norm.NFC
	case "nfd":
		f = norm.NFD
	case "nfkc":
		f = norm.NFKC
	case "nfkd":
		f = norm.NFKD
	default:
		return nil, fmt.Errorf("unsupported normalize %q (must be none, nfc, nfd, nfkc or nfkd)", c.Normalize)
	}
	return &f, nil
}

// Level returns the log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("unsupported log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Logger builds a text logger on w at the configured level.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// ApplyColor sets the process-wide color mode. "auto" leaves the terminal
// detection of fatih/color in place.
func (c Config) ApplyColor() {
	switch strings.ToLower(c.Color) {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
}
