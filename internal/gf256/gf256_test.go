package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestHanXin256LogExpAreInverses(t *testing.T) {
	f := HanXin256
	for i := 0; i < f.Size(); i++ {
		a := f.Exp(i)
		assert.NotZerof(t, a, "alpha^%d must be non-zero", i)
		assert.Equal(t, i, f.Log(a), "log(alpha^%d) should round-trip", i)
	}
}

func TestMulDivRoundTrip(t *testing.T) {
	f := HanXin256
	rapid.Check(t, func(t *rapid.T) {
		a := byte(rapid.IntRange(1, 255).Draw(t, "a"))
		b := byte(rapid.IntRange(1, 255).Draw(t, "b"))

		product := f.Mul(a, b)
		assert.Equal(t, a, f.Div(product, b), "(a*b)/b should be a")
	})
}

func TestMulByZero(t *testing.T) {
	f := HanXin256
	assert.Equal(t, byte(0), f.Mul(0, 200))
	assert.Equal(t, byte(0), f.Mul(200, 0))
}
