package encoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbromberger/arcoder/encoder"
)

func TestByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"arcoder", "ARCoder", "holmes", "Holmes"} {
		enc, err := encoder.ByName(name)
		require.NoError(t, err, "ByName(%q)", name)
		require.NotNil(t, enc)
	}

	_, err := encoder.ByName("soundex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arcoder", "error should list the valid names")
	assert.Contains(t, err.Error(), "holmes")
}

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"arcoder", "holmes"}, encoder.Names())
}

func TestEncoderContract(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "Sohaib", "123", "عمر", "Abdul-Rahman"}
	for _, name := range encoder.Names() {
		enc, err := encoder.ByName(name)
		require.NoError(t, err)
		for _, in := range inputs {
			codes := enc.Encode(in)
			assert.NotNil(t, codes, "%s.Encode(%q)", name, in)
			assert.NotEmpty(t, codes, "%s.Encode(%q)", name, in)
		}
	}
}

func TestEquivalent(t *testing.T) {
	t.Parallel()

	arc, err := encoder.ByName("arcoder")
	require.NoError(t, err)
	hol, err := encoder.ByName("holmes")
	require.NoError(t, err)

	// Sohaib and Suhayb share the rendering "suhib" under arcoder.
	assert.True(t, encoder.Equivalent(arc, "Sohaib", "Suhayb"))
	assert.True(t, encoder.Equivalent(arc, "Suhayb", "Sohaib"), "Equivalent is symmetric")

	// Under holmes, Suhayb keeps its u and does not meet sohayb.
	assert.False(t, encoder.Equivalent(hol, "Sohaib", "Suhayb"))

	// Canonical article handling makes these match under holmes.
	assert.True(t, encoder.Equivalent(hol, "Abdel Rahman", "Abdul-Rahman"))

	// Unrelated names do not match.
	assert.False(t, encoder.Equivalent(arc, "Omar", "Fatima"))
	assert.False(t, encoder.Equivalent(hol, "Omar", "Fatima"))

	// A name always matches itself.
	assert.True(t, encoder.Equivalent(arc, "Khadija", "Khadija"))
	assert.True(t, encoder.Equivalent(hol, "Khadija", "Khadija"))
}

func TestFuncAdapter(t *testing.T) {
	t.Parallel()

	enc := encoder.Func(func(s string) []string { return []string{s} })
	assert.Equal(t, []string{"x"}, enc.Encode("x"))
}
