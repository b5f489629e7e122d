package pangu

import (
	"regexp"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// rule is a single global substitution pass.
type rule struct {
	name string
	re   *regexp.Regexp
	repl string
}

func (r rule) apply(text string) string {
	return r.re.ReplaceAllString(text, r.repl)
}

func newRule(name, pattern, repl string) rule {
	return rule{name: name, re: regexp.MustCompile(pattern), repl: repl}
}

var (
	cjk      = class(CJK)
	space    = class(unicode.White_Space)
	nonSpace = notClass(unicode.White_Space)
	quote    = class(Quote)
	operator = class(Operator)
	opening  = class(OpenBracket)
	closing  = class(CloseBracket)
	symbol   = class(Symbol)
	alnumCls = class(alnum)

	quoteOpening = class(rangetable.Merge(Quote, OpenBracket))
	quoteClosing = class(rangetable.Merge(Quote, CloseBracket))
)

// Rule groups in application order. Each group's output is the next group's
// input.
var (
	quoteRules = []rule{
		newRule("cjk-quote", `(`+cjk+`)(`+quote+`)`, `$1 $2`),
		newRule("quote-cjk", `(`+quote+`)(`+class(cjkNoRadicals)+`)`, `$1 $2`),
		newRule("fix-quote",
			`(`+quoteOpening+`+)(`+space+`*)(.+?)(`+space+`*)(`+quoteClosing+`+)`,
			`$1$3$5`),
		newRule("fix-single-quote", `(`+cjk+`)( )(')([A-Za-z])`, `$1$3$4`),
	}

	hashRules = []rule{
		newRule("cjk-hash", `(`+cjk+`)(#(`+nonSpace+`+))`, `$1 $2`),
		newRule("hash-cjk", `((`+nonSpace+`+)#)(`+cjk+`)`, `$1 $3`),
	}

	operatorRules = []rule{
		newRule("cjk-operator-ans", `(`+cjk+`)(`+operator+`)(`+alnumCls+`)`, `$1 $2 $3`),
		newRule("ans-operator-cjk", `(`+alnumCls+`)(`+operator+`)(`+cjk+`)`, `$1 $2 $3`),
	}

	// cjkBracketCJK spaces a bracketed run with CJK on both outer sides.
	cjkBracketCJK = newRule("cjk-bracket-cjk",
		`(`+cjk+`)(`+opening+`+(.*?)`+closing+`+)(`+cjk+`)`,
		`$1 $2 $4`)

	// bracketRules run only when cjkBracketCJK changed nothing.
	bracketRules = []rule{
		newRule("cjk-bracket", `(`+cjk+`)(`+class(rangetable.Merge(OpenBracket, rangetable.New('>')))+`)`, `$1 $2`),
		newRule("bracket-cjk", `(`+class(rangetable.Merge(CloseBracket, rangetable.New('<')))+`)(`+cjk+`)`, `$1 $2`),
	}

	fixBracket = newRule("fix-bracket",
		`(`+opening+`+)(`+space+`*)(.+?)(`+space+`*)(`+closing+`+)`,
		`$1$3$5`)

	symbolRules = []rule{
		newRule("fix-symbol", `(`+cjk+`)(`+symbol+`)(`+alnumCls+`)`, `$1$2 $3`),
	}

	ansRules = []rule{
		newRule("cjk-ans", `(`+cjk+`)(`+class(ansAfterCJK)+`)`, `$1 $2`),
		newRule("ans-cjk", `(`+class(ansBeforeCJK)+`)(`+cjk+`)`, `$1 $2`),
	}
)
