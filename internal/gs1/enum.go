package gs1

import "fmt"

func lintYesNo(data string) (ok bool, msg string) {
	if data != "0" && data != "1" {
		return false, fmt.Sprintf("Invalid yes/no value '%s', expected 0 or 1", data)
	}
	return true, ""
}

func lintImporterIdx(data string) (ok bool, msg string) {
	if len(data) != 1 {
		return true, "" // variable-length register of importer codes, single char is the common case
	}
	c := data[0]
	if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')) {
		return false, fmt.Sprintf("Invalid importer index '%c'", c)
	}
	return true, ""
}

func lintMediaType(data string) (ok bool, msg string) {
	n := atoiN(data)
	if n < 1 || n > 80 {
		return false, fmt.Sprintf("Invalid media type '%s'", data)
	}
	return true, ""
}

func lintISO5218(data string) (ok bool, msg string) {
	if data != "0" && data != "1" && data != "2" && data != "9" {
		return false, fmt.Sprintf("Invalid ISO/IEC 5218 biological sex code '%s'", data)
	}
	return true, ""
}

func lintNonzero(data string) (ok bool, msg string) {
	allZero := true
	for i := 0; i < len(data); i++ {
		if data[i] != '0' {
			allZero = false
			break
		}
	}
	if allZero {
		return false, "Value must not be zero"
	}
	return true, ""
}

func lintZero(data string) (ok bool, msg string) {
	for i := 0; i < len(data); i++ {
		if data[i] != '0' {
			return false, "Value must be zero"
		}
	}
	return true, ""
}

func lintNoZeroPrefix(data string) (ok bool, msg string) {
	if len(data) > 1 && data[0] == '0' {
		return false, "Value must not have a leading zero"
	}
	return true, ""
}

func lintWinding(data string) (ok bool, msg string) {
	n := atoiN(data)
	if n != 0 && n != 1 && n != 9 {
		return false, fmt.Sprintf("Invalid winding direction '%d', must be 0, 1 or 9", n)
	}
	return true, ""
}

// lintPieceOfTotal validates a 6-digit "NNNXXX" piece-of-total field:
// the piece number (first half) must be <= the total count (second
// half), and neither half may be zero, per spec.md §4.4.
func lintPieceOfTotal(data string) (ok bool, msg string) {
	if len(data)%2 != 0 {
		return false, "Piece-of-total field must have an even length"
	}
	half := len(data) / 2
	piece := atoiN(data[:half])
	total := atoiN(data[half:])
	if piece == 0 || total == 0 {
		return false, "Piece and total must both be non-zero"
	}
	if piece > total {
		return false, fmt.Sprintf("Piece %d exceeds total %d", piece, total)
	}
	return true, ""
}

func lintHyphen(data string) (ok bool, msg string) {
	for i := 0; i < len(data); i++ {
		if data[i] == '-' {
			return true, ""
		}
	}
	return false, "Value must contain a hyphen"
}

// lintPosInSeqSlash validates a "position/total" field such as "1/4".
func lintPosInSeqSlash(data string) (ok bool, msg string) {
	slash := -1
	for i := 0; i < len(data); i++ {
		if data[i] == '/' {
			slash = i
			break
		}
	}
	if slash < 1 || slash == len(data)-1 {
		return false, "Value must be of the form 'position/total'"
	}
	posOK, _ := lintNumeric(data[:slash])
	totalOK, _ := lintNumeric(data[slash+1:])
	if !posOK || !totalOK {
		return false, "Position and total must be numeric"
	}
	pos, total := atoiN(data[:slash]), atoiN(data[slash+1:])
	if pos == 0 || total == 0 || pos > total {
		return false, fmt.Sprintf("Invalid position %d of %d", pos, total)
	}
	return true, ""
}

func lintHasNonDigit(data string) (ok bool, msg string) {
	hasNonDigit := false
	for i := 0; i < len(data); i++ {
		if data[i] < '0' || data[i] > '9' {
			hasNonDigit = true
			break
		}
	}
	if !hasNonDigit {
		return false, "Value must contain at least one non-digit character"
	}
	return true, ""
}

// lintKey validates a company-prefix-shaped field: a numeric string of
// exactly the stated length, per spec.md §4.4's "key" rule. The
// expected length rides on the AI record's MinLen (company-prefix AIs
// in this table are fixed-length).
func lintKey(data string, expectedLen int) (ok bool, msg string) {
	if len(data) != expectedLen {
		return false, fmt.Sprintf("Company prefix must be %d digits", expectedLen)
	}
	if n, _ := lintNumeric(data); !n {
		return false, "Company prefix must be numeric"
	}
	return true, ""
}

// lintPcenc validates percent-encoding well-formedness: every '%' must
// be followed by two hex digits.
func lintPcenc(data string) (ok bool, msg string) {
	isHex := func(c byte) bool {
		return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
	}
	for i := 0; i < len(data); i++ {
		if data[i] != '%' {
			continue
		}
		if i+2 >= len(data) || !isHex(data[i+1]) || !isHex(data[i+2]) {
			return false, fmt.Sprintf("Malformed percent-encoding at position %d", i+1)
		}
	}
	return true, ""
}
