package holmes

import (
	"testing"
)

// ---------------------------------------------------------------------------
// Encode — table-driven tests
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// -- Reference scenario --

		{"sohaib", "Sohaib", "sohayb"},
		{"sohaib upper", "SOHAIB", "sohayb"},

		// -- Prefix rules --

		{"al- article stripped", "Al-Hussein", "husin"},
		{"el article stripped", "El Sayed", "syid"},
		{"abul stripped", "Abulkhair", "kayr"},
		{"o to u at start", "Osama", "usama"},
		{"gh to k at start", "Ghassan", "kasan"},
		{"g to j at start", "Gamal", "jamal"},
		{"mo to mu at start", "Mohammed", "muhamid"},

		// -- Suffix rules --

		{"ean suffix", "Marjean", "marjid"},
		{"y suffix to i", "Aly", "ali"},

		// -- Anywhere rules --

		{"q to k", "Qadir", "kadir"},
		{"kh to k", "Khalid", "kalid"},
		{"v to w", "Veli", "wili"},
		{"allah to ullah", "Allahdad", "uladad"},
		{"hyphen removed", "Abdul-Rahman", "abdulraman"},
		{"abdel canonicalized", "Abdel Rahman", "abdulraman"},

		// -- Double-letter handling --

		{"oo to u", "Noor", "nur"},
		{"collapsed doubles", "Saeed", "said"},

		// -- Unmatched characters pass through --

		{"digits pass through", "123", "123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Encode(tt.input)
			if len(got) != 1 {
				t.Fatalf("Encode(%q) returned %d codes, want exactly 1", tt.input, len(got))
			}
			if got[0] != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.input, got[0], tt.want)
			}
		})
	}
}

// TestEncodeEquivalentSpellings pairs spellings of the same underlying
// name that must land on the same code.
func TestEncodeEquivalentSpellings(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"Aly", "Ali"},
		{"Abdel Rahman", "Abdul-Rahman"},
		{"Qadir", "Kadir"},
		{"Noor", "Nur"},
	}

	for _, p := range pairs {
		a, b := Encode(p[0]), Encode(p[1])
		if a[0] != b[0] {
			t.Errorf("Encode(%q) = %q but Encode(%q) = %q", p[0], a[0], p[1], b[0])
		}
	}
}

// ---------------------------------------------------------------------------
// apply
// ---------------------------------------------------------------------------

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		r     rule
		want  string
	}{
		{"prefix hit", "ali baba", rule{"al", "x", prefix}, "xi baba"},
		{"prefix miss", "bali", rule{"al", "x", prefix}, "bali"},
		{"prefix only first occurrence", "alal", rule{"al", "x", prefix}, "xal"},
		{"suffix hit", "salem", rule{"em", "x", suffix}, "salx"},
		{"suffix miss", "salem", rule{"sa", "x", suffix}, "salem"},
		{"suffix only trailing occurrence", "emem", rule{"em", "x", suffix}, "emx"},
		{"anywhere replaces all", "banana", rule{"an", "x", anywhere}, "bxxa"},
		{"anywhere miss", "banana", rule{"zz", "x", anywhere}, "banana"},
		{"reduce doubles", "alloo", rule{"", "", reduceDoubles}, "alo"},
		{"pattern longer than input", "ab", rule{"abcd", "x", suffix}, "ab"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := apply(tt.input, tt.r); got != tt.want {
				t.Errorf("apply(%q, %+v) = %q, want %q", tt.input, tt.r, got, tt.want)
			}
		})
	}
}

func TestApplyUnknownLocationPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("apply with an unknown location tag did not panic")
		}
	}()
	apply("name", rule{"a", "b", location(99)})
}

// ---------------------------------------------------------------------------
// rule table invariants
// ---------------------------------------------------------------------------

func TestRuleTable(t *testing.T) {
	t.Parallel()

	reduceAt := -1
	for i, r := range rules {
		if r.where == reduceDoubles {
			if reduceAt != -1 {
				t.Fatalf("multiple reduceDoubles steps at %d and %d", reduceAt, i)
			}
			reduceAt = i
			continue
		}
		if r.pattern == "" {
			t.Errorf("rule %d has an empty pattern", i)
		}
	}
	if reduceAt == -1 {
		t.Fatal("rule table has no reduceDoubles step")
	}

	// The reduction pass sits between the double-vowel rules and the
	// final suffix group.
	if prev := rules[reduceAt-1]; prev.pattern != "oo" || prev.subst != "u" {
		t.Errorf("rule before reduceDoubles = %+v, want oo→u", prev)
	}
	if next := rules[reduceAt+1]; next.pattern != "ed" || next.where != suffix {
		t.Errorf("rule after reduceDoubles = %+v, want the ed suffix rule", next)
	}
}
