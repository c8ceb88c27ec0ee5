// Package zint is the facade over the encoder pipeline spec.md §2
// describes: one Symbol object per encode call, fed by the Input
// Normaliser and Segment/ECI Planner, driving either the GS1 linter
// (component F) or the Han Xin encoder (component G), reporting through
// the shared internal/zerr diagnostic model.
package zint

import "github.com/zint-go/zint/internal/zerr"

// Programmer-error and cross-cutting codes spec.md §7 names that don't
// belong to internal/gs1 or internal/hanxin specifically.
const (
	ErrEscapeMalformed     = 237 // malformed \x / \d / \o / \u / \U escape
	ErrExtendedASCII       = 250 // byte >= 0x80 without binary support or ECI > 3
	ErrUnsupportedOption   = 207 // symbology does not support the requested option
	ErrGS1OnNonGS1         = 220 // GS1 mode requested on a non-GS1 symbology
	ErrSegmentsUnsupported = 775 // symbology does not support multiple segments
	WarnImplicitECI        = 222 // "Converted to ..." narrowing an implicit ECI
	ErrInvalid2DChar       = 441 // invalid character in 2D component (composite)
	ZintErrorTooLong       = 5   // input exceeds the symbology's capacity
)

// Severity mirrors internal/zerr.Severity for callers that only import
// the facade package.
type Severity = zerr.Severity

const (
	OK   = zerr.OK
	Warn = zerr.Warn
	Err  = zerr.Err
)

// Diagnostic mirrors internal/zerr.Diagnostic.
type Diagnostic = zerr.Diagnostic
