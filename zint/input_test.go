package zint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNormaliseEscapesBasicSequences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`\\`, "\\"},
		{`\n`, "\n"},
		{`\G`, "\x1D"},
		{`\x41`, "A"},
		{`\d065`, "A"},
		{`\o101`, "A"},
		{`é`, "é"},
	}
	for _, c := range cases {
		got, diag := NormaliseEscapes(c.in, false)
		require.False(t, diag.IsError(), c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestNormaliseEscapesRejectsMalformed(t *testing.T) {
	_, diag := NormaliseEscapes(`\x`, false)
	require.True(t, diag.IsError())
	assert.Equal(t, ErrEscapeMalformed, diag.Code)
}

func TestNormaliseEscapesExtraEscapeGated(t *testing.T) {
	_, diag := NormaliseEscapes(`\^A`, false)
	require.True(t, diag.IsError())

	got, diag2 := NormaliseEscapes(`\^A`, true)
	require.False(t, diag2.IsError())
	assert.Equal(t, []byte{0xF1}, []byte(got))
}

// TestEscapeRoundTripInvariant7 mirrors spec.md §8 invariant 7:
// NormaliseEscapes(GenerateEscapes(s)) reproduces s, checked here over
// strings of printable ASCII.
func TestEscapeRoundTripInvariant7(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		runes := make([]rune, n)
		for i := range runes {
			runes[i] = rune(rapid.IntRange(0x20, 0x7E).Draw(rt, "r"))
		}
		s := string(runes)
		escaped := GenerateEscapes(s)
		got, diag := NormaliseEscapes(escaped, false)
		require.False(rt, diag.IsError())
		require.Equal(rt, s, got)
	})
}

func TestCheckExtendedASCII(t *testing.T) {
	diag := CheckExtendedASCII([]byte{0x80}, false, 0)
	require.True(t, diag.IsError())

	diag2 := CheckExtendedASCII([]byte{0x80}, true, 0)
	require.False(t, diag2.IsError())

	diag3 := CheckExtendedASCII([]byte{0x80}, false, 26)
	require.False(t, diag3.IsError())
}

func TestCheckDELRejectsDEL(t *testing.T) {
	diag := CheckDEL([]byte{0x7F})
	require.True(t, diag.IsError())
	assert.Equal(t, 263, diag.Code)
}
