package zint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeEncodesReducedGS1Payload(t *testing.T) {
	sym := Create(SymbologyGS1Composite)
	sym.Primary = []byte("012345678905")
	diag := sym.Encode([]byte("[01]12345678901231[20]12"))
	require.False(t, diag.IsError(), diag.Text())
	assert.NotZero(t, sym.Width)
	assert.Greater(t, sym.Rows, 0)
}

func TestCompositeWithoutPrimarySkipsLinearComponent(t *testing.T) {
	sym := Create(SymbologyGS1Composite)
	diag := sym.Encode([]byte("[01]12345678901231[20]12"))
	require.False(t, diag.IsError(), diag.Text())
}

func TestCompositeTags2DComponentError(t *testing.T) {
	sym := Create(SymbologyGS1Composite)
	diag := sym.Encode([]byte("not-bracketed-gs1"))
	require.True(t, diag.IsError())
	assert.Contains(t, diag.Text(), "in 2D component")
}

// TestCompositeRejects2DCharEvenUnderNoCheck exercises spec.md §4.4's
// carve-out: GS1_NOCHECK_MODE suppresses lint rules, but Err 441 for an
// invalid 2D-component character is a structural check and still
// fires. AI (10) has no lint rule guarding its CSET82 field kind, so a
// lowercase byte survives gs1.Verify untouched either way.
func TestCompositeRejects2DCharEvenUnderNoCheck(t *testing.T) {
	sym := Create(SymbologyGS1Composite)
	sym.InputMode |= ModeGS1NoCheck
	diag := sym.Encode([]byte("[10]abc123"))
	require.True(t, diag.IsError())
	assert.Equal(t, ErrInvalid2DChar, diag.Code)
}
