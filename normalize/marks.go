package normalize

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripMarks removes combining marks from s ("Muḥammad" → "Muhammad",
// "Ḥusayn" → "Husayn"). Scholarly transliteration schemes mark
// emphatic and pharyngeal consonants with dots and macrons; without
// this step those consonants fall outside the plain Latin alphabet and
// Normalize would drop them entirely.
//
// The input is decomposed to NFD, marks (Unicode category Mn) are
// removed, and the result is recomposed to NFC. Invalid UTF-8 is
// returned unchanged. StripMarks is not part of the reference
// pipelines; callers opt in before encoding.
func StripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
