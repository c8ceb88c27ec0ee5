package zint

import "github.com/zint-go/zint/internal/zerr"

// RenderHints is what buffer_vector/buffer_raster return: enough for an
// external renderer to lay the module bitmap out on a page, per
// spec.md §1's Non-goal that this repository renders nothing itself
// and §6's "external interfaces" naming these two operations. Real
// Zint emits SVG/EPS/PNG from this data; no renderer ships here.
type RenderHints struct {
	Rotate     int // 0, 90, 180 or 270
	ModuleSize float64
	QuietZone  int
	Rows       int
	Width      int
}

// BufferVector implements spec.md §6's buffer_vector(rotate): it
// validates rotate and returns the hints a vector renderer needs,
// without producing any vector output itself.
func (s *Symbol) BufferVector(rotate int) (RenderHints, Diagnostic) {
	switch rotate {
	case 0, 90, 180, 270:
	default:
		d := zerr.Errorf(ErrUnsupportedOption, "Rotation must be 0, 90, 180 or 270")
		s.setDiagnostic(d)
		return RenderHints{}, d
	}
	return s.renderHints(rotate), zerr.Okf()
}

// BufferRaster mirrors BufferVector for a raster renderer; module size
// defaults to 4 device units per module absent an explicit option.
func (s *Symbol) BufferRaster(rotate int, moduleSize float64) (RenderHints, Diagnostic) {
	if moduleSize <= 0 {
		moduleSize = 4
	}
	hints, diag := s.BufferVector(rotate)
	hints.ModuleSize = moduleSize
	return hints, diag
}

func (s *Symbol) renderHints(rotate int) RenderHints {
	quiet := 4
	if s.Output.has(OutNoQuietZones) {
		quiet = 0
	}
	return RenderHints{
		Rotate:     rotate,
		ModuleSize: 1,
		QuietZone:  quiet,
		Rows:       s.Rows,
		Width:      s.Width,
	}
}
