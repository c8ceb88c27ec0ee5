package zint

import (
	"github.com/zint-go/zint/internal/hanxin"
	"github.com/zint-go/zint/internal/zerr"
)

// Symbol is the facade's version of spec.md §3's Symbol object: owns
// its matrix, text, and diagnostic, and is mutated only by encode
// calls, never read by collaborators after a terminal error.
type Symbol struct {
	Symbology Symbology
	InputMode InputMode
	Output    OutputOptions

	ECI       uint32
	Option1   int // ECC level (Han Xin) or symbology-specific
	Option2   int // version (Han Xin) or symbology-specific
	Option3   int // mask/full-multibyte flag (Han Xin)
	WarnAsErr bool

	Primary []byte // up to 128 bytes, composite linear payload

	Rows        int
	Width       int
	EncodedData [][]byte // encoded_data[row][col/8], 1 bit per module
	Text        string
	ErrText     string
	Diagnostic  zerr.Diagnostic

	hx *hanxin.Result // last successful Han Xin result; RenderHints does not report it
}

// Create returns an empty Symbol ready for one encode call, spec.md
// §4.1's create().
func Create(sym Symbology) *Symbol {
	return &Symbol{Symbology: sym}
}

// Delete releases sym's buffers. Provided for API symmetry with
// spec.md §4.1's create/delete pair; Go's garbage collector does the
// actual reclamation.
func Delete(sym *Symbol) {
	sym.EncodedData = nil
	sym.hx = nil
}

// Encode implements spec.md §4.1's encode(sym, bytes, len): a
// single-segment convenience wrapper over EncodeSegments.
func (s *Symbol) Encode(data []byte) Diagnostic {
	return s.EncodeSegments([]Segment{{ECI: s.ECI, Source: data, Length: len(data)}})
}

// EncodeSegments implements spec.md §4.1's encode_segs. On a terminal
// error the Symbol's matrix is left untouched (spec.md §3's invariant:
// "on ret >= ERROR, matrix is not read by collaborators").
func (s *Symbol) EncodeSegments(segs []Segment) Diagnostic {
	supportsMulti := s.Symbology == SymbologyHanXin
	plan := PlanSegments(segs, supportsMulti)
	if plan.Diagnostic.IsError() {
		s.setDiagnostic(plan.Diagnostic)
		return s.Diagnostic
	}

	switch s.Symbology {
	case SymbologyHanXin:
		return s.encodeHanXin(plan)
	case SymbologyCode49:
		return s.encodeCode49(plan)
	case SymbologyGS1Composite:
		return s.encodeComposite(plan)
	default:
		s.setDiagnostic(zerr.Errorf(ErrUnsupportedOption, "Unsupported symbology"))
		return s.Diagnostic
	}
}

func (s *Symbol) encodeHanXin(plan Plan) Diagnostic {
	if s.InputMode.has(ModeGS1) {
		s.setDiagnostic(zerr.Errorf(hanxin.ErrGS1OnNonGS1, "GS1 mode not supported directly on Han Xin in this build"))
		return s.Diagnostic
	}

	inputSegs := make([]hanxin.InputSegment, len(plan.Segments))
	for i, seg := range plan.Segments {
		inputSegs[i] = hanxin.InputSegment{Text: string(seg.Source), ECI: int(seg.ECI)}
	}

	opts := hanxin.Options{
		ECC:      hanxin.ECCLevel(s.Option1),
		Version:  hanxin.Version(s.Option2),
		AutoMask: true,
	}
	if s.Option3 > 0 && s.Option3 <= 4 {
		opts.AutoMask = false
		opts.Mask = hanxin.MaskID(s.Option3 - 1)
	}

	result := hanxin.Encode(inputSegs, opts)
	if planDiag := plan.Diagnostic; !planDiag.IsError() && planDiag.Severity != OK {
		merged := &zerr.Collector{}
		merged.Report(planDiag)
		merged.Report(result.Diagnostic)
		result.Diagnostic = merged.Result(s.WarnAsErr)
	} else if s.WarnAsErr && result.Diagnostic.Severity == Warn {
		result.Diagnostic = zerr.Errorf(result.Diagnostic.Code, result.Diagnostic.Message)
	}

	if result.Diagnostic.IsError() {
		s.setDiagnostic(result.Diagnostic)
		return s.Diagnostic
	}

	s.hx = &result
	s.Rows = result.Matrix.Width
	s.Width = result.Matrix.Width
	s.EncodedData = packMatrix(result.Matrix)
	s.setDiagnostic(result.Diagnostic)
	return s.Diagnostic
}

func (s *Symbol) setDiagnostic(d zerr.Diagnostic) {
	s.Diagnostic = d
	s.ErrText = d.Text()
}

// packMatrix renders a hanxin.Matrix into spec.md §6's bitmap layout:
// encoded_data[r][c/8] & (1 << (7-c%8)) set for a dark module.
func packMatrix(m *hanxin.Matrix) [][]byte {
	w := m.Width
	rows := make([][]byte, w)
	for r := 0; r < w; r++ {
		row := make([]byte, (w+7)/8)
		for c := 0; c < w; c++ {
			if m.Get(r, c) {
				row[c/8] |= 1 << uint(7-c%8)
			}
		}
		rows[r] = row
	}
	return rows
}
