package zint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHanXinPopulatesMatrix(t *testing.T) {
	sym := Create(SymbologyHanXin)
	diag := sym.Encode([]byte("12345"))
	require.False(t, diag.IsError(), diag.Text())
	assert.Equal(t, 23, sym.Width)
	assert.Equal(t, 23, sym.Rows)
	assert.Len(t, sym.EncodedData, 23)
}

func TestEncodeHanXinRejectsGS1Mode(t *testing.T) {
	sym := Create(SymbologyHanXin)
	sym.InputMode |= ModeGS1
	diag := sym.Encode([]byte("12345"))
	require.True(t, diag.IsError())
	assert.Equal(t, 220, diag.Code)
}

func TestEncodeUnsupportedSymbology(t *testing.T) {
	sym := Create(Symbology(99))
	diag := sym.Encode([]byte("x"))
	require.True(t, diag.IsError())
	assert.Equal(t, ErrUnsupportedOption, diag.Code)
}

func TestEncodeSegmentsS6ExplicitECISwitch(t *testing.T) {
	sym := Create(SymbologyHanXin)
	diag := sym.EncodeSegments([]Segment{
		{ECI: 3, Source: []byte("abc")},
		{ECI: 7, Source: []byte("def")},
	})
	require.False(t, diag.IsError(), diag.Text())
	assert.NotZero(t, sym.Width)
}

func TestDeleteClearsBuffers(t *testing.T) {
	sym := Create(SymbologyHanXin)
	_ = sym.Encode([]byte("12345"))
	require.NotEmpty(t, sym.EncodedData)
	Delete(sym)
	assert.Nil(t, sym.EncodedData)
}
