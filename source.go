package pangu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// SpacingFile performs paranoid text spacing on the contents of a file.
func SpacingFile(path string) (string, error) {
	return std.File(path)
}

// Spacing spaces the file named by pathOrText if it resolves to one,
// otherwise it spaces pathOrText itself.
func Spacing(pathOrText string) (string, error) {
	return std.Spacing(pathOrText)
}

// File reads path as UTF-8 text and spaces it.
func (s *Spacer) File(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, abs)
		}
		return "", fmt.Errorf("checking file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegularFile, abs)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, abs)
	}

	s.cfg.logger.Debug("spacing file", "path", abs, "bytes", len(data))
	return s.Text(string(data)), nil
}

// Reader reads r to EOF as UTF-8 text and spaces it.
func (s *Spacer) Reader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return s.Text(string(data)), nil
}

// Spacing spaces the file named by pathOrText if it resolves to one,
// otherwise it spaces pathOrText itself.
func (s *Spacer) Spacing(pathOrText string) (string, error) {
	if path, ok := DetectFilepath(pathOrText); ok {
		return s.File(path)
	}
	return s.Text(pathOrText), nil
}

// DetectFilepath reports whether src names an existing regular file and
// returns its absolute path. A leading "~" expands to the current user's
// home directory; other relative paths resolve against the working directory.
func DetectFilepath(src string) (string, bool) {
	if src == "" {
		return "", false
	}

	if filepath.IsAbs(src) {
		if isFile(src) {
			return src, true
		}
		return "", false
	}

	var abs string
	if strings.HasPrefix(src, "~") {
		expanded, ok := expandHome(src)
		if !ok {
			return "", false
		}
		abs = expanded
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		abs = filepath.Join(wd, src)
	}

	if filepath.IsAbs(abs) && isFile(abs) {
		return abs, true
	}
	return "", false
}

// expandHome expands "~" and "~/rest". Other users' home directories
// ("~name") are not resolved.
func expandHome(src string) (string, bool) {
	rest := src[1:]
	if rest != "" && rest[0] != '/' && rest[0] != filepath.Separator {
		return "", false
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, rest), true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
