package zint

import (
	"fmt"

	"github.com/zint-go/zint/internal/gs1"
	"github.com/zint-go/zint/internal/hanxin"
	"github.com/zint-go/zint/internal/zerr"
)

// The Composite Driver (spec.md §4.7) binds a linear symbology's row(s)
// to a 2-D component carrying the GS1 data passed to Encode; Primary
// supplies the linear component's data. Real
// Zint pairs a linear carrier with a MicroPDF417-derived stack; this
// module's retrieval pack has no MicroPDF417 grounding, so the 2-D
// component here is driven through the Han Xin encoder instead (the
// only 2-D encoder this repository implements), wearing the same
// "reduced GS1 payload on top of a linear row" contract spec.md
// describes. See DESIGN.md.

// LinearRow is the pinned interface spec.md §4.7's redesign-flags
// section calls out: the composite driver depends only on this
// contract, never on a concrete linear encoder, to avoid a cyclic
// dependency between GS1, composite and linear code.
type LinearRow struct {
	Modules []byte
	Width   int
}

// LinearEncoder produces a linear symbology's row(s) from raw data,
// independent of any composite awareness.
type LinearEncoder func(data []byte) (LinearRow, zerr.Diagnostic)

// encodeComposite implements spec.md §4.7: the linear component comes
// from Symbol.Primary via defaultLinearEncoder (callers cannot supply
// another LinearEncoder, and no real linear symbology is in scope),
// and the 2-D component is the Han Xin
// encoding of the GS1-parsed payload, stacked as extra rows above it.
func (s *Symbol) encodeComposite(plan Plan) Diagnostic {
	if len(plan.Segments) != 1 {
		s.setDiagnostic(zerr.Errorf(ErrSegmentsUnsupported, "Composite symbols do not support multiple segments"))
		return s.Diagnostic
	}
	data := plan.Segments[0].Source

	gs1Result := gs1.Verify(string(data), gs1.Options{
		Parens:  s.InputMode.has(ModeGS1Parens),
		NoCheck: s.InputMode.has(ModeGS1NoCheck),
		GS1Sep:  s.Output.has(OutGS1GSSeparator),
	})
	if gs1Result.Diagnostic.IsError() {
		s.setDiagnostic(taggedDiagnostic(gs1Result.Diagnostic, " in 2D component"))
		return s.Diagnostic
	}

	// spec.md §4.4: GS1NOCHECK_MODE suppresses lint rules but never this
	// structural check, so it runs unconditionally, not gated on
	// ModeGS1NoCheck.
	if diag := checkComposite2DChars(gs1Result.Reduced); diag.IsError() {
		s.setDiagnostic(diag)
		return s.Diagnostic
	}

	result := hanxin.Encode([]hanxin.InputSegment{{Text: gs1Result.Reduced}}, hanxin.Options{AutoMask: true})
	if result.Diagnostic.IsError() {
		s.setDiagnostic(taggedDiagnostic(result.Diagnostic, " in 2D component"))
		return s.Diagnostic
	}

	linearRows := 0
	var linearGrid [][]byte
	if len(s.Primary) > 0 {
		enc := defaultLinearEncoder()
		row, linDiag := enc(s.Primary)
		if linDiag.IsError() {
			s.setDiagnostic(taggedDiagnostic(linDiag, " in linear component"))
			return s.Diagnostic
		}
		linearGrid = [][]byte{row.Modules}
		linearRows = 1
	}

	composite2D := packMatrix(result.Matrix)
	s.Width = result.Matrix.Width
	s.Rows = len(composite2D) + linearRows
	s.EncodedData = append(append([][]byte{}, composite2D...), linearGrid...)
	s.setDiagnostic(result.Diagnostic)
	return s.Diagnostic
}

// checkComposite2DChars implements spec.md §4.4's composite carve-out:
// Err 441 ("Invalid character in 2D component") fires for any byte the
// 2D component can't carry, and — unlike the lint rules — is never
// suppressed by GS1_NOCHECK_MODE. gs1.Verify already structurally
// rejects extended ASCII and DEL in every AI's data regardless of
// NoCheck (Err 250/263), so those bytes never reach here; what does
// reach here is data gs1.Verify accepts but a CSET82 field (e.g. AI
// 10, Batch/Lot) has no lint rule enforcing, such as lowercase ASCII.
// This repository's 2D component restricts itself to the GS1 general
// specification's upper-case AI character repertoire, rejecting
// lowercase a-z alongside the already-structural DEL/extended-ASCII
// bytes kept here for defence in depth. The GS1 field separator
// (gs1.FNC1) is the one sub-0x20 byte the reduced payload may carry.
func checkComposite2DChars(data string) zerr.Diagnostic {
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b == 0x7F || b >= 0x80 || (b < 0x20 && b != gs1.FNC1) || (b >= 'a' && b <= 'z') {
			return zerr.Errorf(ErrInvalid2DChar, "Invalid character in 2D component")
		}
	}
	return zerr.Okf()
}

// taggedDiagnostic appends suffix to an existing diagnostic's message,
// per spec.md §4.7's "the error is tagged with in linear component or
// in 2D component".
func taggedDiagnostic(d zerr.Diagnostic, suffix string) zerr.Diagnostic {
	if d.Severity == zerr.OK {
		return d
	}
	msg := fmt.Sprintf("%s%s", d.Message, suffix)
	if d.Severity == zerr.Err {
		return zerr.Errorf(d.Code, "%s", msg)
	}
	return zerr.Warnf(d.Code, "%s", msg)
}

// defaultLinearEncoder is the reference LinearEncoder this repository
// ships: it has no real linear symbology to drive (out of scope, per
// spec.md §1), so it renders Primary as a single flat row in which each
// byte supplies eight modules (its bits), enough to exercise the
// composite stacking contract
// without claiming to be a real GS1-128/DataBar/UPC-A encoder.
func defaultLinearEncoder() LinearEncoder {
	return func(data []byte) (LinearRow, zerr.Diagnostic) {
		width := len(data) * 8
		modules := make([]byte, len(data))
		copy(modules, data)
		return LinearRow{Modules: modules, Width: width}, zerr.Okf()
	}
}
