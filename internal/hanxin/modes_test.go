package hanxin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPlanRunsClassifiesDigitsAsNumeric(t *testing.T) {
	runs, fallback := PlanRuns("12345")
	require.Len(t, runs, 1)
	assert.Equal(t, ModeNumeric, runs[0].mode)
	assert.False(t, fallback)
}

func TestPlanRunsSwitchesModeOnTransition(t *testing.T) {
	runs, _ := PlanRuns("123ABC")
	require.Len(t, runs, 2)
	assert.Equal(t, ModeNumeric, runs[0].mode)
	assert.Equal(t, ModeText, runs[1].mode)
}

func TestPlanRunsFallsBackToBinaryForUnmappedRunes(t *testing.T) {
	runs, fallback := PlanRuns("☃") // snowman, outside every table
	require.Len(t, runs, 1)
	assert.Equal(t, ModeBinary, runs[0].mode)
	assert.True(t, fallback)
}

func TestPackRunsRoundTripsByteLength(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		var digits []byte
		for i := 0; i < n; i++ {
			digits = append(digits, byte('0'+rapid.IntRange(0, 9).Draw(rt, "d")))
		}
		runs, _ := PlanRuns(string(digits))
		packed := PackRuns(runs)
		if n == 0 {
			return
		}
		expectedBits := TotalCostBits(runs)
		expectedBytes := (expectedBits + 7) / 8
		if len(packed) != expectedBytes {
			rt.Fatalf("packed %d bytes, expected %d for %d digits (bits=%d)", len(packed), expectedBytes, n, expectedBits)
		}
	})
}
