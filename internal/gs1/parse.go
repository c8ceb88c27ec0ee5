package gs1

import (
	"fmt"
	"strings"

	"github.com/zint-go/zint/internal/zerr"
)

// FNC1 is the GS1 field separator (GS, 0x1D) spec.md §6 specifies for
// variable-length fields in bracketed carriers.
const FNC1 = 0x1D

// Options controls how Verify parses bracketed GS1 data, mirroring the
// INPUT_MODE flags spec.md §3/§6 define for the symbol object.
type Options struct {
	Parens  bool // GS1_PARENS_MODE: "(01)..." instead of "[01]..."
	NoCheck bool // GS1_NOCHECK_MODE: suppress lint, not structural errors
	GS1Sep  bool // put a literal GS (0x1D) between fields; when false, fields are concatenated with no separator
}

// Result is the outcome of Verify: the reduced string ready to hand to
// a symbology encoder, plus the accumulated diagnostic.
type Result struct {
	Reduced    string
	Diagnostic zerr.Diagnostic
}

func bracketPair(parens bool) (byte, byte) {
	if parens {
		return '(', ')'
	}
	return '[', ']'
}

// Verify implements component F's verify operation (spec.md §4.4):
// structural validation of bracketed AI input followed by per-AI lint,
// producing a reduced string with AIs stripped of brackets. When
// opts.GS1Sep is set, FNC1 is written between every field after the
// first, whether fixed or variable length; otherwise no separator is
// written.
func Verify(input string, opts Options) Result {
	open, closeB := bracketPair(opts.Parens)
	collector := &zerr.Collector{}

	if len(input) == 0 || input[0] != open {
		return Result{Diagnostic: zerr.Errorf(252, "Input does not start with an AI")}
	}

	var reduced strings.Builder
	i := 0
	n := len(input)
	first := true

	for i < n {
		if input[i] != open {
			return Result{Diagnostic: zerr.Errorf(253, "Unbalanced brackets")}
		}
		// Find the matching close bracket, rejecting nesting.
		j := i + 1
		for j < n && input[j] != closeB {
			if input[j] == open {
				return Result{Diagnostic: zerr.Errorf(254, "Nested brackets")}
			}
			j++
		}
		if j >= n {
			return Result{Diagnostic: zerr.Errorf(253, "Unbalanced brackets")}
		}
		aiDigits := input[i+1 : j]
		if len(aiDigits) > 4 {
			return Result{Diagnostic: zerr.Errorf(255, "AI (%s) is too long, AIs must be 2-4 digits", aiDigits)}
		}
		if len(aiDigits) < 2 {
			return Result{Diagnostic: zerr.Errorf(256, "AI (%s) is too short, AIs must be 2-4 digits", aiDigits)}
		}
		for k := 0; k < len(aiDigits); k++ {
			if aiDigits[k] < '0' || aiDigits[k] > '9' {
				return Result{Diagnostic: zerr.Errorf(257, "AI (%s) contains non-digit characters", aiDigits)}
			}
		}

		// Data runs until the next open bracket or end of string.
		dataStart := j + 1
		dataEnd := dataStart
		for dataEnd < n && input[dataEnd] != open {
			dataEnd++
		}
		field := input[dataStart:dataEnd]

		if len(field) == 0 {
			return Result{Diagnostic: zerr.Errorf(258, "AI (%s) has no data", aiDigits)}
		}
		for k := 0; k < len(field); k++ {
			c := field[k]
			if c == 0x7F {
				return Result{Diagnostic: zerr.Errorf(263, "AI (%s) data contains DEL character", aiDigits)}
			}
			if c >= 0x80 {
				return Result{Diagnostic: zerr.Errorf(250, "AI (%s) data contains extended ASCII", aiDigits)}
			}
			if c < 0x20 {
				return Result{Diagnostic: zerr.Errorf(251, "AI (%s) data contains control character", aiDigits)}
			}
		}

		record, known := Lookup(aiDigits)
		if !known {
			return Result{Diagnostic: zerr.Errorf(260, "Unrecognised AI (%s)", aiDigits)}
		}
		if len(field) < record.MinLen || len(field) > record.MaxLen {
			return Result{Diagnostic: zerr.Errorf(259, "AI (%s) data length %d is outside range %d-%d", aiDigits, len(field), record.MinLen, record.MaxLen)}
		}

		if !opts.NoCheck {
			applyLints(aiDigits, field, record.LintRules, record.NumLints, record.MinLen, collector)
		}

		if !first && opts.GS1Sep {
			reduced.WriteByte(FNC1)
		}
		first = false
		reduced.WriteString(aiDigits)
		reduced.WriteString(field)

		i = dataEnd
	}

	diag := collector.Result(false)
	return Result{Reduced: reduced.String(), Diagnostic: diag}
}

// HRT renders a reduced string (as produced by Verify) back into the
// bracketed human-readable form spec.md §8 invariant 6 (round-trip)
// exercises: "(01)12345678901231(20)12".
func HRT(reduced string) (string, error) {
	var sb strings.Builder
	i := 0
	n := len(reduced)
	for i < n {
		// Greedily try AI lengths 4 down to 2 so prefix-variant AIs
		// (e.g. both "310" and "3100" keys) resolve to the longest
		// recognised code first.
		matched := false
		for length := 4; length >= 2; length-- {
			if i+length > n {
				continue
			}
			candidate := reduced[i : i+length]
			isDigits := true
			for k := 0; k < len(candidate); k++ {
				if candidate[k] < '0' || candidate[k] > '9' {
					isDigits = false
					break
				}
			}
			if !isDigits {
				continue
			}
			record, known := Lookup(candidate)
			if !known {
				continue
			}
			fieldStart := i + length
			fieldEnd := fieldStart
			if record.FixedLen {
				fieldEnd = fieldStart + record.MaxLen
				if fieldEnd > n {
					continue
				}
			} else {
				for fieldEnd < n && reduced[fieldEnd] != FNC1 {
					fieldEnd++
				}
			}
			sb.WriteByte('(')
			sb.WriteString(candidate)
			sb.WriteByte(')')
			sb.WriteString(reduced[fieldStart:fieldEnd])
			i = fieldEnd
			if i < n && reduced[i] == FNC1 {
				i++
			}
			matched = true
			break
		}
		if !matched {
			return "", fmt.Errorf("gs1: cannot re-bracket reduced string at offset %d", i)
		}
	}
	return sb.String(), nil
}
