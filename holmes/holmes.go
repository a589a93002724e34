// Package holmes implements the sequential phonetic encoder for
// transliterated Arabic names described in Holmes, Kashfi, and Aqeel,
// "Transliterated Arabic Name Search" (2004).
//
// Encode folds the name to lower case and runs it through a fixed,
// strictly ordered list of rewrite rules: a prefix or suffix rule only
// fires when its pattern is anchored there, an anywhere rule replaces
// every occurrence, and a doubled-letter reduction pass sits partway
// through the list. Each rule is applied exactly once, to the output
// of all rules before it, with no backtracking. The result is a single
// canonical rendering.
//
//	holmes.Encode("Sohaib") // ["sohayb"]
//
// Unlike the candidate-list encoder, no character filtering happens:
// characters no rule matches pass through unchanged, so digits and
// foreign script survive into the code.
//
// All functions are pure and safe for concurrent use by multiple
// goroutines.
package holmes

import (
	"fmt"
	"strings"

	"github.com/sbromberger/arcoder/normalize"
)

// Encode returns the canonical phonetic rendering of name as a
// single-element list, for symmetry with arcoder.Encode. It never
// fails; the empty name encodes to the empty rendering.
func Encode(name string) []string {
	s := normalize.Fold(name)
	for _, r := range rules {
		s = apply(s, r)
	}
	return []string{s}
}

// apply performs one rewrite step. A rule whose location constraint
// does not match is a no-op, not an error. An unknown location tag
// means the constant rule table itself is corrupt, which is not
// recoverable at run time.
func apply(s string, r rule) string {
	switch r.where {
	case prefix:
		if strings.HasPrefix(s, r.pattern) {
			return r.subst + s[len(r.pattern):]
		}
		return s
	case suffix:
		if strings.HasSuffix(s, r.pattern) {
			return s[:len(s)-len(r.pattern)] + r.subst
		}
		return s
	case anywhere:
		return strings.ReplaceAll(s, r.pattern, r.subst)
	case reduceDoubles:
		return normalize.CollapseRuns(s)
	default:
		panic(fmt.Sprintf("holmes: unknown rule location %d", r.where))
	}
}
