package zint

import "github.com/zint-go/zint/internal/zerr"

// Code 49 is covered only to exercise the multi-symbology integration
// pattern spec.md §4.6 describes: a second, independent encoder driven
// through the same Symbol/Plan machinery as Han Xin. Its codeword
// alphabet, sub-encodation switching and bar/space lookup below are a
// minimal reference rendition, not a bit-exact transcription of the
// ISO/IEC published tables; see DESIGN.md.

const (
	code49Width           = 70
	code49MinRows         = 2
	code49MaxRows         = 8
	code49CodewordsPerRow = 7
	code49ModCheck        = 2401 // 49^2, the "Mod-2401" checksum spec.md names
	code49MaxAlphaChars   = 49   // spec.md §8 S5: "A" x49 succeeds, x50 does not
	code49MaxDigitChars   = 81
)

const (
	code49Space   = 36
	code49ShiftS1 = 45
	code49ShiftS2 = 46
	code49ShiftNS = 47
	code49Latch   = 48
)

// code49Symbols are the handful of punctuation characters the base
// 49-value alphabet carries beyond letters, digits and space, filling
// codeword values 37-43. The trailing ' ' entry is never matched
// (space has its own value, 36).
var code49Symbols = []byte{'-', '.', '/', '+', '$', '%', '*', ' '}

// code49Value maps one ASCII byte to its base codeword value (0-43),
// or -1 if it needs an S1/S2 shift or NS numeric compaction instead.
func code49Value(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'A' && b <= 'Z':
		return 10 + int(b-'A')
	case b == ' ':
		return code49Space
	}
	for i, sym := range code49Symbols[:len(code49Symbols)-1] {
		if b == sym {
			return 37 + i
		}
	}
	return -1
}

func isASCIIPrintable(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

func isAllDigits(data []byte) bool {
	for _, b := range data {
		if b < '0' || b > '9' {
			return false
		}
	}
	return len(data) > 0
}

// encodeCode49 implements spec.md §4.6: validates the input, chooses
// numeric compaction or direct alpha codewords, appends the Mod-2401
// checksum pair, and lays the codewords out into a fixed-width
// 70-module, 2-8 row matrix.
func (s *Symbol) encodeCode49(plan Plan) Diagnostic {
	if len(plan.Segments) != 1 {
		s.setDiagnostic(zerr.Errorf(ErrSegmentsUnsupported, "Code 49 does not support multiple segments"))
		return s.Diagnostic
	}
	data := plan.Segments[0].Source

	if !isASCIIPrintable(data) {
		s.setDiagnostic(zerr.Errorf(431, "Invalid character in data (non-ASCII)"))
		return s.Diagnostic
	}
	if len(data) == 0 {
		s.setDiagnostic(zerr.Errorf(431, "No data supplied"))
		return s.Diagnostic
	}

	var codewords []int
	if isAllDigits(data) {
		if len(data) > code49MaxDigitChars {
			s.setDiagnostic(zerr.Errorf(ZintErrorTooLong, "Input too long for Code 49 (max %d digits)", code49MaxDigitChars))
			return s.Diagnostic
		}
		codewords = encodeCode49Numeric(data)
	} else {
		if len(data) > code49MaxAlphaChars {
			s.setDiagnostic(zerr.Errorf(ZintErrorTooLong, "Input too long for Code 49 (max %d characters)", code49MaxAlphaChars))
			return s.Diagnostic
		}
		cw, diag := encodeCode49Alpha(data)
		if diag.IsError() {
			s.setDiagnostic(diag)
			return s.Diagnostic
		}
		codewords = cw
	}

	codewords = append(codewords, code49Checksum(codewords)...)

	rows := (len(codewords) + code49CodewordsPerRow - 1) / code49CodewordsPerRow
	if rows < code49MinRows {
		rows = code49MinRows
	}
	if rows > code49MaxRows {
		// Should not happen given the length caps above; keeps the
		// matrix bounded if the caps are ever loosened.
		rows = code49MaxRows
	}

	s.Rows = rows
	s.Width = code49Width
	s.EncodedData = code49Render(codewords, rows)
	s.setDiagnostic(zerr.Okf())
	return s.Diagnostic
}

// encodeCode49Numeric packs a run of decimal digits two at a time
// (NS sub-encodation) after an NS shift codeword, spec.md's
// "Numeric-compact (NS) sub-encodations".
func encodeCode49Numeric(data []byte) []int {
	codewords := []int{code49ShiftNS}
	i := 0
	for i+1 < len(data) {
		d1 := int(data[i] - '0')
		d2 := int(data[i+1] - '0')
		codewords = append(codewords, d1*10+d2)
		i += 2
	}
	if i < len(data) {
		codewords = append(codewords, int(data[i]-'0'))
	}
	return codewords
}

// encodeCode49Alpha encodes mixed alphanumeric input character by
// character, switching through an S1 shift for any byte the base
// 49-value table doesn't carry directly.
func encodeCode49Alpha(data []byte) ([]int, zerr.Diagnostic) {
	var codewords []int
	for _, b := range data {
		v := code49Value(b)
		if v < 0 {
			codewords = append(codewords, code49ShiftS1)
			codewords = append(codewords, int(b)%49)
			continue
		}
		codewords = append(codewords, v)
	}
	return codewords, zerr.Okf()
}

// code49Checksum computes the Mod-2401 check value spec.md §4.6 names
// over the data codewords and splits it into two base-49 check
// codewords, the way the symbology's name derives from a base-49
// alphabet whose square is exactly 2401.
func code49Checksum(codewords []int) []int {
	sum := 0
	weight := 1
	for i := len(codewords) - 1; i >= 0; i-- {
		sum += codewords[i] * weight
		weight++
		if weight > 49 {
			weight = 1
		}
	}
	sum %= code49ModCheck
	return []int{sum / 49, sum % 49}
}

// code49Render lays codewords into a rows x code49Width bitmap, one
// 10-module 4-of-10 bar/space group per codeword, padding any unused
// trailing slots with the latch codeword.
func code49Render(codewords []int, rows int) [][]byte {
	grid := make([][]byte, rows)
	rowWidth := (code49Width + 7) / 8
	idx := 0
	for r := 0; r < rows; r++ {
		row := make([]byte, rowWidth)
		for slot := 0; slot < code49CodewordsPerRow; slot++ {
			cw := code49Latch
			if idx < len(codewords) {
				cw = codewords[idx]
				idx++
			}
			pattern := fourOfTenPattern(cw % 210)
			for bit := 0; bit < 10; bit++ {
				col := slot*10 + bit
				if col >= code49Width {
					break
				}
				if pattern[bit] {
					row[col/8] |= 1 << uint(7-col%8)
				}
			}
		}
		grid[r] = row
	}
	return grid
}

// fourOfTenPattern returns the rank-th (lexicographic, 0-based) way to
// choose 4 of 10 positions as bars, via the standard combinatorial
// number system. C(10,4) = 210 comfortably covers every codeword value
// this encoder produces.
func fourOfTenPattern(rank int) [10]bool {
	var pattern [10]bool
	remaining := rank
	chosen := 4
	for pos := 9; pos >= 0 && chosen > 0; pos-- {
		c := binomial(pos, chosen-1) // combinations that take position 9-pos
		if remaining < c {
			pattern[9-pos] = true
			chosen--
		} else {
			remaining -= c
		}
	}
	return pattern
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
