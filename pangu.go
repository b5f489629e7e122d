package pangu

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Spacer inserts whitespace between CJK and half-width text.
// It holds no mutable state and is safe for concurrent use.
type Spacer struct {
	cfg config
}

// New creates a Spacer.
func New(opts ...Option) *Spacer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Spacer{cfg: cfg}
}

var std = New(WithLogger(slog.New(slog.DiscardHandler)))

// SpacingText performs paranoid text spacing on text.
func SpacingText(text string) string {
	return std.Text(text)
}

// Text performs paranoid text spacing on text.
func (s *Spacer) Text(text string) string {
	if s.cfg.form != nil {
		text = s.cfg.form.String(text)
	}

	if utf8.RuneCountInString(text) < 2 {
		return text
	}

	trace := s.cfg.logger.Enabled(context.Background(), slog.LevelDebug)
	run := func(text string, rules []rule) string {
		for _, r := range rules {
			next := r.apply(text)
			if trace && next != text {
				s.cfg.logger.Debug("rule applied", "rule", r.name)
			}
			text = next
		}
		return text
	}

	text = run(text, quoteRules)
	text = run(text, hashRules)
	text = run(text, operatorRules)

	// Fall back to one-sided bracket spacing only when no bracketed run
	// has CJK on both sides.
	if spaced := run(text, []rule{cjkBracketCJK}); spaced != text {
		text = spaced
	} else {
		text = run(text, bracketRules)
	}
	text = run(text, []rule{fixBracket})

	text = run(text, symbolRules)
	text = run(text, ansRules)

	return strings.TrimSpace(text)
}
