package gs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestS1GoodChecksum mirrors spec.md §8 scenario S1.
func TestS1GoodChecksum(t *testing.T) {
	r := Verify("[01]12345678901231[20]12", Options{GS1Sep: true})
	assert.Equal(t, "0112345678901231\x1D2012", r.Reduced)
	assert.Equal(t, "", r.Diagnostic.Text())
}

// TestS2BadChecksum mirrors spec.md §8 scenario S2.
func TestS2BadChecksum(t *testing.T) {
	r := Verify("[01]12345678901234[20]12", Options{GS1Sep: true})
	assert.Contains(t, r.Diagnostic.Text(), "Warning 261")
	assert.Contains(t, r.Diagnostic.Text(), "AI (01) position 14: Bad checksum '4', expected '1'")
}

// TestBoundaryCase10 is spec.md §8 boundary case #10.
func TestBoundaryCase10(t *testing.T) {
	r := Verify("[00]123456789012345678", Options{})
	assert.Contains(t, r.Diagnostic.Text(), "Bad checksum '8', expected '5'")
}

func TestStructuralErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		code int
	}{
		{"missing leading AI", "0112345678901231", 252},
		{"unbalanced", "[0112345678901231", 253},
		{"nested", "[01[20]12345678901231]", 254},
		{"ai too long", "[012345]12345", 255},
		{"ai too short", "[0]12345678901234", 256},
		{"ai non digit", "[0A]12345678901234", 257},
		{"empty field", "[01]", 258},
		{"wrong length", "[01]123", 259},
		{"unknown ai", "[77]12345", 260},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Verify(tc.in, Options{})
			assert.Equal(t, tc.code, r.Diagnostic.Code, r.Diagnostic.Text())
		})
	}
}

func TestGS1NoCheckSuppressesLintNotStructural(t *testing.T) {
	// Bad checksum is suppressed...
	r := Verify("[01]12345678901234[20]12", Options{NoCheck: true})
	assert.Equal(t, "", r.Diagnostic.Text())

	// ...but structural errors are not.
	r2 := Verify("[01]123", Options{NoCheck: true})
	assert.Equal(t, 259, r2.Diagnostic.Code)
}

func TestRoundTripHRT(t *testing.T) {
	r := Verify("[01]12345678901231[20]12", Options{GS1Sep: true})
	require.Equal(t, "", r.Diagnostic.Text())
	hrt, err := HRT(r.Reduced)
	require.NoError(t, err)
	assert.Equal(t, "(01)12345678901231(20)12", hrt)
}

// TestLengthCheckAgreesWithTable checks one side of spec.md §8
// invariant 1: for every fixed-length AI, data one character shorter
// than its length raises the length error 259.
func TestLengthCheckAgreesWithTable(t *testing.T) {
	for code, rec := range Table {
		if !rec.FixedLen || rec.MinLen < 2 {
			// Variable-length AIs are not covered by this test; a fixed
			// length of 1 makes "one digit short" an empty field, which
			// is structural error 258, not 259.
			continue
		}
		short := mustDigits(rec.MinLen - 1)
		r := Verify("["+code+"]"+short, Options{NoCheck: true})
		assert.Equalf(t, 259, r.Diagnostic.Code, "AI (%s): expected length error for %d chars", code, len(short))
	}
}

func mustDigits(n int) string {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '1'
	}
	return string(b)
}
