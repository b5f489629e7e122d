package pangu

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Character classes the spacing rules are defined over. The tables are fixed
// for the lifetime of the process and must not be modified.
var (
	// CJK covers the CJK radicals, kana, bopomofo, enclosed CJK and the
	// unified and compatibility ideograph blocks.
	CJK = spans(
		[2]rune{0x2e80, 0x2eff},
		[2]rune{0x2f00, 0x2fdf},
		[2]rune{0x3040, 0x309f},
		[2]rune{0x30a0, 0x30ff},
		[2]rune{0x3100, 0x312f},
		[2]rune{0x3200, 0x32ff},
		[2]rune{0x3400, 0x4dbf},
		[2]rune{0x4e00, 0x9fff},
		[2]rune{0xf900, 0xfaff},
	)

	// ANS is the half-width alphanumeric and symbol set that gets spaced
	// against CJK.
	ANS = rangetable.Merge(
		alnum,
		rangetable.New([]rune("`~$%^&*-=+\\|/@")...),
		spans(
			[2]rune{0x00a1, 0x00ff},
			[2]rune{0x2022, 0x2022},
			[2]rune{0x2026, 0x2027},
			[2]rune{0x2150, 0x218f},
		),
	)

	// Operator holds the symbols that are flanked by spaces when they sit
	// between CJK and an alphanumeric.
	Operator = rangetable.New([]rune(`+-*/=&\|<>`)...)

	// Quote holds the straight quotation marks.
	Quote = rangetable.New('"', '\'')

	// OpenBracket and CloseBracket hold the half-width brackets and the
	// curly double quotation marks.
	OpenBracket  = rangetable.New('(', '[', '{', '<', '“')
	CloseBracket = rangetable.New(')', ']', '}', '>', '”')

	// Symbol is the punctuation that takes a trailing space only.
	Symbol = rangetable.New([]rune("~!;:,.?…")...)
)

var (
	alnum = spans(
		[2]rune{'0', '9'},
		[2]rune{'A', 'Z'},
		[2]rune{'a', 'z'},
	)

	// cjkNoRadicals is CJK without the radical blocks, which never open a
	// quoted span.
	cjkNoRadicals = spans(
		[2]rune{0x3040, 0x312f},
		[2]rune{0x3200, 0x32ff},
		[2]rune{0x3400, 0x4dbf},
		[2]rune{0x4e00, 0x9fff},
		[2]rune{0xf900, 0xfaff},
	)

	// ansAfterCJK drops the trailing-space-only symbols from ANS.
	ansAfterCJK = without(ANS, '~', '…')

	// ansBeforeCJK drops '@' so handles stay attached and adds the
	// sentence punctuation.
	ansBeforeCJK = rangetable.Merge(without(ANS, '@'), Symbol)
)

// IsCJK reports whether r is in the CJK class.
func IsCJK(r rune) bool { return unicode.Is(CJK, r) }

// IsANS reports whether r is in the ANS class.
func IsANS(r rune) bool { return unicode.Is(ANS, r) }

// IsOperator reports whether r is in the Operator class.
func IsOperator(r rune) bool { return unicode.Is(Operator, r) }

// IsQuote reports whether r is a straight quotation mark.
func IsQuote(r rune) bool { return unicode.Is(Quote, r) }

// IsOpenBracket reports whether r opens a bracketed span.
func IsOpenBracket(r rune) bool { return unicode.Is(OpenBracket, r) }

// IsCloseBracket reports whether r closes a bracketed span.
func IsCloseBracket(r rune) bool { return unicode.Is(CloseBracket, r) }

// IsSymbol reports whether r is trailing-space punctuation.
func IsSymbol(r rune) bool { return unicode.Is(Symbol, r) }

func spans(rs ...[2]rune) *unicode.RangeTable {
	tables := make([]*unicode.RangeTable, 0, len(rs))
	for _, r := range rs {
		if r[1] > 0xffff {
			tables = append(tables, &unicode.RangeTable{
				R32: []unicode.Range32{{Lo: uint32(r[0]), Hi: uint32(r[1]), Stride: 1}},
			})
			continue
		}
		tables = append(tables, &unicode.RangeTable{
			R16: []unicode.Range16{{Lo: uint16(r[0]), Hi: uint16(r[1]), Stride: 1}},
		})
	}
	return rangetable.Merge(tables...)
}

func without(rt *unicode.RangeTable, drop ...rune) *unicode.RangeTable {
	var keep []rune
	rangetable.Visit(rt, func(r rune) {
		for _, d := range drop {
			if r == d {
				return
			}
		}
		keep = append(keep, r)
	})
	return rangetable.New(keep...)
}

// class renders rt as a regexp bracket expression, coalescing consecutive
// runes into ranges.
func class(rt *unicode.RangeTable) string {
	return bracket(rt, false)
}

// notClass renders the complement of rt.
func notClass(rt *unicode.RangeTable) string {
	return bracket(rt, true)
}

func bracket(rt *unicode.RangeTable, negate bool) string {
	var b strings.Builder
	b.WriteByte('[')
	if negate {
		b.WriteByte('^')
	}

	lo, hi := rune(-1), rune(-1)
	flush := func() {
		switch {
		case lo < 0:
		case lo == hi:
			fmt.Fprintf(&b, `\x{%x}`, lo)
		default:
			fmt.Fprintf(&b, `\x{%x}-\x{%x}`, lo, hi)
		}
	}
	rangetable.Visit(rt, func(r rune) {
		if lo >= 0 && r == hi+1 {
			hi = r
			return
		}
		flush()
		lo, hi = r, r
	})
	flush()

	b.WriteByte(']')
	return b.String()
}
