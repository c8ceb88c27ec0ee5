package zint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zint-go/zint/internal/zerr"
)

// NormaliseEscapes expands the escape sequences spec.md §4.2 lists
// (ESCAPE_MODE) into their literal byte values. extraEscape additionally
// allows \^A..\^D (Code 128 FNC escapes), which decode to bytes
// 0xF1..0xF4 here as sentinel values a downstream Code 128-family
// encoder would recognise and strip before module placement.
func NormaliseEscapes(input string, extraEscape bool) (string, zerr.Diagnostic) {
	var out strings.Builder
	i := 0
	for i < len(input) {
		c := input[i]
		if c != '\\' {
			out.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(input) {
			return "", zerr.Errorf(ErrEscapeMalformed, "Incomplete escape sequence at end of input")
		}
		next := input[i+1]
		switch next {
		case '\\':
			out.WriteByte('\\')
			i += 2
		case '0':
			out.WriteByte(0x00)
			i += 2
		case 'E':
			out.WriteByte(0x04) // EOT, the GS1 "end of transmission" marker some carriers use
			i += 2
		case 'a':
			out.WriteByte(0x07)
			i += 2
		case 'b':
			out.WriteByte(0x08)
			i += 2
		case 't':
			out.WriteByte(0x09)
			i += 2
		case 'n':
			out.WriteByte(0x0A)
			i += 2
		case 'v':
			out.WriteByte(0x0B)
			i += 2
		case 'f':
			out.WriteByte(0x0C)
			i += 2
		case 'r':
			out.WriteByte(0x0D)
			i += 2
		case 'e':
			out.WriteByte(0x1B)
			i += 2
		case 'G':
			out.WriteByte(0x1D) // GS, GS1 field separator
			i += 2
		case 'R':
			out.WriteByte(0x1E) // RS
			i += 2
		case 'x':
			v, n, ok := parseHexEscape(input[i+2:], 2)
			if !ok {
				return "", zerr.Errorf(ErrEscapeMalformed, "Malformed \\x escape")
			}
			out.WriteByte(byte(v))
			i += 2 + n
		case 'd':
			v, n, ok := parseDecEscape(input[i+2:], 3)
			if !ok || v > 255 {
				return "", zerr.Errorf(ErrEscapeMalformed, "Malformed \\d escape")
			}
			out.WriteByte(byte(v))
			i += 2 + n
		case 'o':
			v, n, ok := parseOctEscape(input[i+2:], 3)
			if !ok || v > 255 {
				return "", zerr.Errorf(ErrEscapeMalformed, "Malformed \\o escape")
			}
			out.WriteByte(byte(v))
			i += 2 + n
		case 'u':
			v, n, ok := parseHexEscape(input[i+2:], 4)
			if !ok {
				return "", zerr.Errorf(ErrEscapeMalformed, "Malformed \\u escape")
			}
			out.WriteRune(rune(v))
			i += 2 + n
		case 'U':
			v, n, ok := parseHexEscape(input[i+2:], 6)
			if !ok || v >= 0x110000 {
				return "", zerr.Errorf(ErrEscapeMalformed, "Malformed \\U escape")
			}
			out.WriteRune(rune(v))
			i += 2 + n
		case '^':
			if !extraEscape || i+2 >= len(input) {
				return "", zerr.Errorf(ErrEscapeMalformed, "\\^ escape requires EXTRA_ESCAPE_MODE")
			}
			fnc := input[i+2]
			if fnc < 'A' || fnc > 'D' {
				return "", zerr.Errorf(ErrEscapeMalformed, "Unknown \\^%c escape", fnc)
			}
			out.WriteByte(0xF1 + (fnc - 'A'))
			i += 3
		default:
			return "", zerr.Errorf(ErrEscapeMalformed, "Unknown escape \\%c", next)
		}
	}
	return out.String(), zerr.Okf()
}

func parseHexEscape(s string, n int) (int64, int, bool) {
	if len(s) < n {
		return 0, 0, false
	}
	v, err := strconv.ParseInt(s[:n], 16, 64)
	if err != nil {
		return 0, 0, false
	}
	return v, n, true
}

func parseDecEscape(s string, n int) (int64, int, bool) {
	if len(s) < n {
		return 0, 0, false
	}
	v, err := strconv.ParseInt(s[:n], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return v, n, true
}

func parseOctEscape(s string, n int) (int64, int, bool) {
	if len(s) < n {
		return 0, 0, false
	}
	v, err := strconv.ParseInt(s[:n], 8, 64)
	if err != nil {
		return 0, 0, false
	}
	return v, n, true
}

// GenerateEscapes is the left inverse NormaliseEscapes must undo for
// every codepoint below U+110000 (spec.md §8 invariant 7): it renders
// control and non-ASCII characters back into \xNN/\uNNNN/\UNNNNNN form.
func GenerateEscapes(input string) string {
	var out strings.Builder
	for _, r := range input {
		switch {
		case r == '\\':
			out.WriteString(`\\`)
		case r < 0x20 || r == 0x7F:
			out.WriteString(fmt.Sprintf(`\x%02X`, r))
		case r < 0x80:
			out.WriteRune(r)
		case r < 0x10000:
			out.WriteString(fmt.Sprintf(`\u%04X`, r))
		default:
			out.WriteString(fmt.Sprintf(`\U%06X`, r))
		}
	}
	return out.String()
}

// CheckExtendedASCII enforces spec.md §4.2's rule: bytes >= 0x80 are
// only permitted when the symbology accepts binary data or an ECI
// beyond 3 is already in force.
func CheckExtendedASCII(data []byte, binaryCapable bool, eci int) zerr.Diagnostic {
	if binaryCapable || eci > 3 {
		return zerr.Okf()
	}
	for _, b := range data {
		if b >= 0x80 {
			return zerr.Errorf(ErrExtendedASCII, "Extended ASCII byte 0x%02X not permitted without binary support or ECI > 3", b)
		}
	}
	return zerr.Okf()
}

// CheckDEL rejects DEL (0x7F) in GS1 data, spec.md §4.2.
func CheckDEL(data []byte) zerr.Diagnostic {
	for _, b := range data {
		if b == 0x7F {
			return zerr.Errorf(263, "DEL character not permitted in GS1 data")
		}
	}
	return zerr.Okf()
}
