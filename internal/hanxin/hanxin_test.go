package hanxin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestS3MinimalVersionAndECC mirrors spec.md §8 scenario S3: "12345"
// with Han Xin auto version and auto ECC selects version 1, ECC 4, and
// a 23x23 matrix (invariant 3).
func TestS3MinimalVersionAndECC(t *testing.T) {
	r := Encode([]InputSegment{{Text: "12345"}}, Options{AutoMask: true})
	require.Equal(t, "", r.Diagnostic.Text())
	assert.Equal(t, Version(1), r.Version)
	assert.Equal(t, ECC4, r.ECC)
	assert.Equal(t, 23, r.Matrix.Width)
	assert.Equal(t, r.Matrix.Width, Width(r.Version))
}

// TestS4ImplicitConversionWarning mirrors spec.md §8 scenario S4: Han
// Xin text outside this encoder's table-backed modes, given without an
// explicit ECI, triggers Warn 760 but still produces a 23x23 symbol
// with a penalty-chosen mask.
func TestS4ImplicitConversionWarning(t *testing.T) {
	r := Encode([]InputSegment{{Text: "汉信码标准"}}, Options{AutoMask: true})
	assert.Equal(t, 760, r.Diagnostic.Code)
	assert.Contains(t, r.Diagnostic.Text(), "Converted")
	assert.Equal(t, 23, r.Matrix.Width)
}

// TestS6ExplicitECISwitch mirrors spec.md §8 scenario S6: two segments
// with distinct explicit ECIs encode into a single symbol, with an ECI
// switch run preceding each segment.
func TestS6ExplicitECISwitch(t *testing.T) {
	runs, _, diag := BuildRuns([]InputSegment{
		{Text: "¶", ECI: 3},
		{Text: "Ж", ECI: 7},
	})
	require.Equal(t, "", diag.Text())
	var eciCount int
	for _, r := range runs {
		if r.mode == ModeECI {
			eciCount++
		}
	}
	assert.Equal(t, 2, eciCount, "expected one ECI switch run per segment")
	assert.Equal(t, ModeECI, runs[0].mode)
	assert.Equal(t, 3, runs[0].eci)
}

// TestInvariant4MinimalVersionIsTight checks spec.md §8 invariant 4:
// pinning the version one below the auto-selected choice fails with
// Err 542.
func TestInvariant4MinimalVersionIsTight(t *testing.T) {
	digits := make([]byte, 1000)
	for i := range digits {
		digits[i] = '7'
	}
	segs := []InputSegment{{Text: string(digits)}}

	auto := Encode(segs, Options{AutoMask: true})
	require.Equal(t, "", auto.Diagnostic.Text())
	require.Greater(t, auto.Version, MinVersion)

	tooSmall := Encode(segs, Options{Version: auto.Version - 1, ECC: auto.ECC, AutoMask: true})
	assert.Equal(t, ErrTooLongPinned, tooSmall.Diagnostic.Code)
}

func TestEncodeIsDeterministic(t *testing.T) {
	segs := []InputSegment{{Text: "HELLO123"}}
	a := Encode(segs, Options{AutoMask: true})
	b := Encode(segs, Options{AutoMask: true})
	require.Equal(t, "", a.Diagnostic.Text())
	assert.Equal(t, a.Version, b.Version)
	assert.Equal(t, a.Mask, b.Mask)
	for r := 0; r < a.Matrix.Width; r++ {
		for c := 0; c < a.Matrix.Width; c++ {
			assert.Equal(t, a.Matrix.Get(r, c), b.Matrix.Get(r, c), "cell (%d,%d) differs between identical encodes", r, c)
		}
	}
}

// TestErr545InvalidCharForDeclaredECI checks spec.md §4.5's Err 545: a
// segment declaring ECI 3 (ISO-8859-1) but carrying a character outside
// ISO-8859-1's 0x00-0xFF range is rejected before any run is built.
func TestErr545InvalidCharForDeclaredECI(t *testing.T) {
	_, _, diag := BuildRuns([]InputSegment{{Text: "Ж", ECI: 3}})
	require.True(t, diag.IsError())
	assert.Equal(t, ErrBadECIChar, diag.Code)

	r := Encode([]InputSegment{{Text: "Ж", ECI: 3}}, Options{AutoMask: true})
	assert.Equal(t, ErrBadECIChar, r.Diagnostic.Code)
}

func TestTooLongForMaxVersion(t *testing.T) {
	digits := make([]byte, 8000)
	for i := range digits {
		digits[i] = '9'
	}
	r := Encode([]InputSegment{{Text: string(digits)}}, Options{ECC: ECC1, AutoMask: true})
	assert.Equal(t, ErrTooLongMaxVersion, r.Diagnostic.Code)
}
