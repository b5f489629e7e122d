// Package pangu provides paranoid text spacing: it inserts whitespace between
// CJK (Chinese, Japanese, Korean) characters and half-width letters, digits
// and symbols.
//
// # Quick Start
//
//	fmt.Println(pangu.SpacingText("當你凝視著bug，bug也凝視著你"))
//	// 當你凝視著 bug，bug 也凝視著你
//
//	out, err := pangu.SpacingFile("path/to/file.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Rules
//
// Spacing is an ordered pipeline of regular-expression passes over the whole
// string: quotes, hash tags, operators, brackets, trailing-space punctuation,
// and finally any CJK/alphanumeric boundary. Each pass sees the output of the
// one before it, so the order decides every overlap.
//
// # Thread Safety
//
// Spacer holds only immutable configuration and the compiled patterns are
// shared read-only, so SpacingText and a single Spacer may be used from any
// number of goroutines.
package pangu
