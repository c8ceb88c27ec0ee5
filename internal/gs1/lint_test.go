package gs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLintLatlong(t *testing.T) {
	// 0 degrees lat, 0 degrees long: raw = 900000000, 1800000000.
	ok, _ := lintLatlong("09000000001800000000")
	assert.True(t, ok)

	// Latitude raw value 1900000000 decodes to +100 degrees (past +90),
	// which is invalid.
	ok2, msg := lintLatlong("19000000001800000000")
	assert.False(t, ok2)
	assert.NotEmpty(t, msg)
}

func TestLintWinding(t *testing.T) {
	for _, good := range []string{"0", "1", "9"} {
		ok, _ := lintWinding(good)
		assert.True(t, ok)
	}
	ok, _ := lintWinding("5")
	assert.False(t, ok)
}

func TestLintIBAN(t *testing.T) {
	// A well-known published IBAN check example.
	ok, _ := lintIBAN("GB29NWBK60161331926819")
	assert.True(t, ok)

	ok2, _ := lintIBAN("GB29NWBK60161331926818")
	assert.False(t, ok2)
}

func TestLintPieceOfTotal(t *testing.T) {
	ok, _ := lintPieceOfTotal("002003")
	assert.True(t, ok)
	ok2, _ := lintPieceOfTotal("030002")
	assert.False(t, ok2) // piece exceeds total
}

func TestLintPosInSeqSlash(t *testing.T) {
	ok, _ := lintPosInSeqSlash("1/4")
	assert.True(t, ok)
	ok2, _ := lintPosInSeqSlash("nope")
	assert.False(t, ok2)
}

func TestLintCouponCode(t *testing.T) {
	// 6-digit primary field ("123456"), no trailing optional field.
	ok, msg := lintCouponCode("6123456")
	assert.True(t, ok, msg)
}
