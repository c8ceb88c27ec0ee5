package zint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestS5Code49Boundary mirrors spec.md §8 scenario S5.
func TestS5Code49Boundary(t *testing.T) {
	sym := Create(SymbologyCode49)
	diag := sym.Encode([]byte(strings.Repeat("A", 49)))
	require.False(t, diag.IsError(), diag.Text())
	assert.Equal(t, 8, sym.Rows)
	assert.Equal(t, code49Width, sym.Width)

	sym2 := Create(SymbologyCode49)
	diag2 := sym2.Encode([]byte(strings.Repeat("A", 50)))
	require.True(t, diag2.IsError())
	assert.Equal(t, ZintErrorTooLong, diag2.Code)
}

func TestCode49DigitBoundary(t *testing.T) {
	sym := Create(SymbologyCode49)
	diag := sym.Encode([]byte(strings.Repeat("0", 81)))
	require.False(t, diag.IsError(), diag.Text())

	sym2 := Create(SymbologyCode49)
	diag2 := sym2.Encode([]byte(strings.Repeat("0", 82)))
	require.True(t, diag2.IsError())
}

func TestCode49RejectsNonASCII(t *testing.T) {
	sym := Create(SymbologyCode49)
	diag := sym.Encode([]byte("caf\xe9"))
	require.True(t, diag.IsError())
	assert.Equal(t, 431, diag.Code)
}

func TestFourOfTenPatternHasFourBars(t *testing.T) {
	for rank := 0; rank < 128; rank++ {
		pattern := fourOfTenPattern(rank)
		count := 0
		for _, bar := range pattern {
			if bar {
				count++
			}
		}
		assert.Equal(t, 4, count, "rank %d", rank)
	}
}
