// Package normalize prepares transliterated Arabic names for phonetic
// encoding.
//
// Normalize implements the shared preprocessing pipeline: it keeps only
// Latin letters, apostrophes (straight ' and curly ‘), hyphens, and
// spaces, lower-cases the text, turns hyphens into spaces, collapses
// repeated characters, and joins the words back together with each
// first letter capitalized. The embedded capitals mark original word
// boundaries for the downstream tokenizer; the output contains no
// spaces and carries no other meaning.
//
// Fold and CollapseRuns expose individual steps of the pipeline that
// the encoders also use on their own.
//
// All functions are pure, total (any input produces a defined result),
// and safe for concurrent use by multiple goroutines.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize reduces a raw name to its compact normalized form.
//
// Characters outside the allowed set (Latin letters, apostrophes,
// hyphen, space) are dropped silently; digits, punctuation, and
// non-Latin script are not errors. The empty string normalizes to
// the empty string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range Fold(s) {
		switch {
		case r >= 'a' && r <= 'z', r == '\'', r == '‘', r == ' ':
			b.WriteRune(r)
		case r == '-':
			// Hyphens separate name segments the same way spaces do.
			b.WriteByte(' ')
		}
	}

	collapsed := CollapseRuns(b.String())

	var out strings.Builder
	out.Grow(len(collapsed))
	for _, word := range strings.Fields(collapsed) {
		r, size := utf8.DecodeRuneInString(word)
		out.WriteRune(unicode.ToUpper(r))
		out.WriteString(word[size:])
	}
	return out.String()
}

// Fold returns s lower-cased. It is the only preprocessing step the
// sequential encoder uses.
func Fold(s string) string {
	return strings.ToLower(s)
}

// CollapseRuns collapses every maximal run of an identical rune into a
// single occurrence ("Mohammed" → "Mohamed"). Idempotent: collapsing
// an already-collapsed string is a no-op.
func CollapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prev := rune(-1)
	for _, r := range s {
		if r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
