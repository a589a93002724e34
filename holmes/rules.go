package holmes

// location constrains where a rule's pattern must occur for the rule
// to fire.
type location uint8

const (
	anywhere      location = iota // replace every non-overlapping occurrence
	prefix                        // replace the pattern only at the start of the string
	suffix                        // replace the pattern only at the end of the string
	reduceDoubles                 // synthetic step: collapse repeated characters
)

// rule is one rewrite step: pattern → subst, constrained by where.
type rule struct {
	pattern string
	subst   string
	where   location
}

// rules is the ordered rewrite table from Holmes, Kashfi, and Aqeel
// (2004). Order is load-bearing: every rule rewrites the output of all
// rules before it, exactly once, and the reduceDoubles step sits
// between the double-vowel rules and the final suffix group.
var rules = []rule{
	// Article and honorific prefixes are stripped.
	{"al-", "", prefix},
	{"al ", "", prefix},
	{"el-", "", prefix},
	{"el ", "", prefix},
	{"abul", "", prefix},
	{"abu ", "", prefix},

	// Separators are removed.
	{"-", "", anywhere},
	{"'", "", anywhere},
	{" ", "", anywhere},

	// Digraph and vowel rewrites.
	{"abdal", "abdul", anywhere},
	{"abdel", "abdul", anywhere},
	{"abdol", "abdul", anywhere},
	{"der", "dur", anywhere},
	{"q", "k", anywhere},
	{"allah", "ullah", anywhere},
	{"ean", "id", suffix},
	{"ead", "id", suffix},
	{"ai", "ay", anywhere},
	{"e", "i", anywhere},
	{"ou", "u", anywhere},
	{"aee", "ay", anywhere},
	{"o", "u", prefix},
	{"ah", "a", anywhere},
	{"ae", "ay", anywhere},
	{"ei", "ay", prefix},
	{"gh", "k", prefix},
	{"kh", "k", anywhere},
	{"kah", "ka", anywhere},
	{"ie", "i", anywhere},
	{"awo", "ao", anywhere},
	{"awu", "au", anywhere},
	{"awz", "az", anywhere},
	{"dh", "d", anywhere},
	// Preserved from the published table even though it looks like a
	// transcription error and can never fire: the "ou"→"u" rule above
	// has already consumed every occurrence by this point. Kept
	// verbatim so codes stay compatible.
	{"ou", "k", anywhere},
	{"kua", "ka", anywhere},
	{"aw", "au", anywhere},
	{"v", "w", anywhere},
	{"say", "sy", prefix},
	{"g", "j", prefix},
	{"sw", "s", prefix},

	// Doubled vowels with dedicated replacements.
	{"ee", "i", anywhere},
	{"oo", "u", anywhere},

	// All other doubles reduce to a single character.
	{"", "", reduceDoubles},

	// Final suffix and vowel adjustments.
	{"ed", "ad", suffix},
	{"el", "al", suffix},
	{"eh", "a", suffix},
	{"y", "i", suffix},
	{"ii", "i", suffix},
	{"iya", "ia", anywhere},
	{"ah", "a", anywhere},
	{"ry", "ri", anywhere},
	{"mo", "mu", prefix},
	{"eya", "ia", suffix},
}
