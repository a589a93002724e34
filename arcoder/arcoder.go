// Package arcoder implements the candidate-list phonetic encoder for
// transliterated Arabic names described in Moore, Hamid, and
// Bromberger, "An Evaluation of Transliterated Arabic Name Matching
// Methods".
//
// Encode produces the set of plausible phonetic renderings of a name.
// The normalized input is tokenized greedily against a substitution
// table mapping 1- and 2-character patterns to candidate spellings;
// the cartesian product over all candidate lists then enumerates every
// full rendering. Two-character matches always win over single
// characters, and patterns suffixed with '.' in the table apply only
// in final position — a trailing "h" carries phonetic meaning that a
// medial one does not.
//
//	arcoder.Encode("Sohaib") // ["suhaeb", "suhib"]
//
// The number of renderings is the product of each token's candidate
// count. Factors in the shipped table are small (at most three), but
// callers should not assume any fixed cap for long, ambiguous names.
//
// All functions are pure and safe for concurrent use by multiple
// goroutines.
package arcoder

import (
	"sort"
	"strings"
	"unicode"

	"github.com/sbromberger/arcoder/normalize"
)

// Encode returns every plausible phonetic rendering of name,
// deduplicated and sorted. Two spellings of the same underlying name
// match when their result sets intersect (see the encoder package).
//
// Encode never fails: characters outside the transliteration alphabet
// are dropped during normalization, and an empty or fully filtered
// name encodes to the single empty rendering.
func Encode(name string) []string {
	tokens := tokenize(normalize.Normalize(name))

	seen := make(map[string]struct{})
	codes := make([]string, 0, 1)
	product(tokens, func(parts []string) {
		// Substitution candidates can introduce fresh repeated letters
		// ("ai"→"ae" next to an "e"), so each rendering is collapsed
		// again, independently of the normalizer's pass.
		code := normalize.CollapseRuns(strings.Join(parts, ""))
		if _, dup := seen[code]; dup {
			return
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	})

	sort.Strings(codes)
	return codes
}

// tokenize splits the normalized name into per-token candidate lists,
// scanning left to right. Each step consumes one or two characters and
// every character resolves to something, so the scan covers the input
// exactly and always terminates.
func tokenize(name string) [][]string {
	rs := []rune(name)
	tokens := make([][]string, 0, len(rs))
	for i := 0; i < len(rs); {
		var key string
		if i == len(rs)-1 {
			// Final position: force the single trailing character
			// through the end-marker convention ("h" becomes "h.").
			key = string(rs[i]) + "."
		} else {
			key = string(rs[i : i+2])
		}
		if cands := lookup(key); len(cands) > 0 {
			tokens = append(tokens, cands)
			i += 2
			continue
		}

		if cands := lookup(string(rs[i])); len(cands) > 0 {
			tokens = append(tokens, cands)
			i++
			continue
		}

		// No table entry at all: pass the character through unchanged.
		tokens = append(tokens, []string{string(unicode.ToLower(rs[i]))})
		i++
	}
	return tokens
}

// lookup returns the candidate union for key: the verbatim entry plus
// any candidates the lower-cased entry adds.
func lookup(key string) []string {
	cands := encodings[key]
	folded := strings.ToLower(key)
	if folded == key {
		return cands
	}
	extra := encodings[folded]
	switch {
	case len(extra) == 0:
		return cands
	case len(cands) == 0:
		return extra
	}
	merged := make([]string, 0, len(cands)+len(extra))
	merged = append(merged, cands...)
	for _, c := range extra {
		if !contains(merged, c) {
			merged = append(merged, c)
		}
	}
	return merged
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// product calls fn once per combination of one candidate per token,
// reusing a single scratch slice between calls — combinations are
// produced on demand rather than materialized. An empty token list
// yields exactly one empty combination.
func product(tokens [][]string, fn func(parts []string)) {
	parts := make([]string, len(tokens))
	var walk func(int)
	walk = func(i int) {
		if i == len(tokens) {
			fn(parts)
			return
		}
		for _, c := range tokens[i] {
			parts[i] = c
			walk(i + 1)
		}
	}
	walk(0)
}
