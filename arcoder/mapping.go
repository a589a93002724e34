package arcoder

// encodings maps a 1- or 2-character source pattern to its candidate
// phonetic substitutions. Lookups try the verbatim key first and the
// lower-cased key second, unioning the two candidate sets, which is
// how the capitalized "Ch" entry (word-initial Ch) fires together with
// the plain "ch" digraph.
//
// Key conventions:
//   - a trailing '.' marks a pattern that matches only the final
//     character of a name ("h." is a silent trailing h);
//   - the empty candidate "" deletes the source character;
//   - "0" is an opaque code for the sh/ch sound, chosen so it can
//     never collide with a literal letter.
var encodings = map[string][]string{
	"c":  {"s"},
	"g":  {"k", "j"},
	"i":  {"i", "e"},
	"o":  {"u"},
	"p":  {"b"},
	"q":  {"k"},
	"u":  {"u"},
	"v":  {"f"},
	"w":  {"u"},
	"y":  {"e"},
	"z":  {"s"},
	"Ch": {"h"},
	"e.": {"", "e"},
	"h.": {""},
	"t.": {"t", "d"},
	"ai": {"i", "ae"},
	"ay": {"i"},
	"eh": {"e"},
	"ch": {"0"},
	"gh": {"k"},
	"iy": {"e"},
	"kh": {"k"},
	"ph": {"f"},
	"ou": {"u"},
	"oo": {"u"},
	"sh": {"0"},
	"th": {"z"},
	"ua": {"a", "ua", "uwa"},
	"wu": {"u"},
	"‘":  {"a"},
	"'":  {"", "w"},
}
