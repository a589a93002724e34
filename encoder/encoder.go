// Package encoder defines the capability shared by the phonetic name
// encoders and a small registry for selecting one by name.
//
// Both arcoder.Encode and holmes.Encode satisfy Encoder through the
// Func adapter. They are substitutable behind the same contract: any
// input string, including the empty string, encodes to a non-nil list
// of codes without failing.
package encoder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sbromberger/arcoder/arcoder"
	"github.com/sbromberger/arcoder/holmes"
)

// Encoder encodes a name into one or more phonetic codes.
type Encoder interface {
	Encode(name string) []string
}

// Func adapts a plain encode function to the Encoder interface.
type Func func(string) []string

// Encode implements Encoder.
func (f Func) Encode(name string) []string { return f(name) }

// registry maps encoder names to implementations. Read-only after
// package initialization; safe for unsynchronized concurrent reads.
var registry = map[string]Encoder{
	"arcoder": Func(arcoder.Encode),
	"holmes":  Func(holmes.Encode),
}

// ByName returns the encoder registered under name. Names are matched
// case-insensitively.
func ByName(name string) (Encoder, error) {
	enc, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown encoder %q (want one of: %s)",
			name, strings.Join(Names(), ", "))
	}
	return enc, nil
}

// Names returns the registered encoder names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equivalent reports whether two names share at least one phonetic
// code under enc — the library's notion of a fuzzy name match.
func Equivalent(enc Encoder, a, b string) bool {
	codes := make(map[string]struct{})
	for _, c := range enc.Encode(a) {
		codes[c] = struct{}{}
	}
	for _, c := range enc.Encode(b) {
		if _, ok := codes[c]; ok {
			return true
		}
	}
	return false
}
