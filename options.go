package pangu

import (
	"log/slog"

	"golang.org/x/text/unicode/norm"
)

// Option configures a Spacer.
type Option func(*config)

type config struct {
	form   *norm.Form
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// WithNormalization normalizes input to form f before spacing (default: none).
// NFKC folds full-width letters and digits to ASCII, which lets them be spaced
// against CJK.
func WithNormalization(f norm.Form) Option {
	return func(c *config) {
		c.form = &f
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
