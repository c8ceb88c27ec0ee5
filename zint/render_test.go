package zint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferVectorValidatesRotation(t *testing.T) {
	sym := Create(SymbologyHanXin)
	require.False(t, sym.Encode([]byte("12345")).IsError())

	hints, diag := sym.BufferVector(90)
	require.False(t, diag.IsError())
	assert.Equal(t, 90, hints.Rotate)
	assert.Equal(t, sym.Width, hints.Width)

	_, diag2 := sym.BufferVector(45)
	require.True(t, diag2.IsError())
}

func TestBufferRasterDefaultsModuleSize(t *testing.T) {
	sym := Create(SymbologyHanXin)
	require.False(t, sym.Encode([]byte("12345")).IsError())

	hints, diag := sym.BufferRaster(0, 0)
	require.False(t, diag.IsError())
	assert.Equal(t, float64(4), hints.ModuleSize)
}

func TestRenderHintsHonoursNoQuietZones(t *testing.T) {
	sym := Create(SymbologyHanXin)
	sym.Output |= OutNoQuietZones
	require.False(t, sym.Encode([]byte("12345")).IsError())

	hints, _ := sym.BufferVector(0)
	assert.Equal(t, 0, hints.QuietZone)
}
