package gs1

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// yymmddFormatter renders a parsed GS1 date back into a diagnostic
// suffix. strftime is already in the teacher's go.mod; this is the one
// place this package needs human-readable date formatting, so it's
// used here rather than hand-rolling one more ad hoc time.Format call.
var yymmddFormatter = strftime.Must(strftime.New("%Y-%m-%d"))

// twoDigitYear expands a GS1 2-digit year to a full year. Per spec.md
// §4.4, the table is closed over 2000-2049 (GS1 reserves the window
// 00-49 -> 2000-2049, 50-99 -> 1950-1999).
func twoDigitYear(yy int) int {
	if yy <= 49 {
		return 2000 + yy
	}
	return 1900 + yy
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// parseYYMMDD splits a 6-digit AI date field and reports whether it's a
// structurally valid calendar date (day 00 permitted by the caller when
// dayZeroOK is set, for AIs whose day component may mean "whole month").
func parseYYMMDD(data string, dayZeroOK bool) (year, month, day int, ok bool, msg string) {
	if len(data) != 6 {
		return 0, 0, 0, false, "Date field must be 6 digits"
	}
	if ok2, _ := lintNumeric(data); !ok2 {
		return 0, 0, 0, false, "Non-numeric character in date field"
	}
	yy := atoi2(data[0:2])
	mm := atoi2(data[2:4])
	dd := atoi2(data[4:6])
	year = twoDigitYear(yy)

	if mm < 1 || mm > 12 {
		return year, mm, dd, false, fmt.Sprintf("Invalid month '%02d'", mm)
	}
	if dd == 0 {
		if dayZeroOK {
			return year, mm, dd, true, ""
		}
		return year, mm, dd, false, "Invalid day '00'"
	}
	if dd > daysInMonth(year, mm) {
		if rendered, err := renderDate(year, mm, 1); err == nil {
			return year, mm, dd, false, fmt.Sprintf("Invalid day '%02d' for month of %s", dd, rendered[:7])
		}
		return year, mm, dd, false, fmt.Sprintf("Invalid day '%02d' for %04d-%02d", dd, year, mm)
	}
	return year, mm, dd, true, ""
}

func atoi2(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func lintYYMMDD(data string) (ok bool, msg string) {
	_, _, _, valid, m := parseYYMMDD(data, false)
	if !valid {
		return false, m
	}
	return true, ""
}

func lintYYMMD0(data string) (ok bool, msg string) {
	_, _, _, valid, m := parseYYMMDD(data, true)
	if !valid {
		return false, m
	}
	return true, ""
}

func lintYYYYMMDD(data string) (ok bool, msg string) {
	if len(data) != 8 {
		return false, "Date field must be 8 digits"
	}
	if ok2, _ := lintNumeric(data); !ok2 {
		return false, "Non-numeric character in date field"
	}
	year := atoi2(data[0:2])*100 + atoi2(data[2:4])
	month := atoi2(data[4:6])
	day := atoi2(data[6:8])
	if month < 1 || month > 12 {
		return false, fmt.Sprintf("Invalid month '%02d'", month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return false, fmt.Sprintf("Invalid day '%02d' for %04d-%02d", day, year, month)
	}
	return true, ""
}

func renderDate(year, month, day int) (string, error) {
	t := time.Date(year, time.Month(month), maxInt(day, 1), 0, 0, 0, 0, time.UTC)
	buf := new(byteBuffer)
	if err := yymmddFormatter.Format(buf, t); err != nil {
		return "", err
	}
	return string(buf.data), nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// byteBuffer adapts strftime's io.Writer-based Format to a simple sink
// without pulling in bytes.Buffer just for this one call site.
type byteBuffer struct{ data []byte }

func (b *byteBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func lintHH(data string) (ok bool, msg string) {
	if len(data) != 6 {
		return false, "Time field must be 6 digits"
	}
	hh := atoi2(data[0:2])
	if hh > 23 {
		return false, fmt.Sprintf("Invalid hour '%02d'", hh)
	}
	return true, ""
}

func lintHHMM(data string) (ok bool, msg string) {
	if len(data) < 10 {
		return false, "Field too short for embedded time"
	}
	hhmm := data[len(data)-4:]
	hh := atoi2(hhmm[0:2])
	mm := atoi2(hhmm[2:4])
	if hh > 23 {
		return false, fmt.Sprintf("Invalid hour '%02d'", hh)
	}
	if mm > 59 {
		return false, fmt.Sprintf("Invalid minute '%02d'", mm)
	}
	return true, ""
}

func lintHHMMSS(data string) (ok bool, msg string) {
	if len(data) != 6 {
		return false, "Time field must be 6 digits"
	}
	hh := atoi2(data[0:2])
	mm := atoi2(data[2:4])
	ss := atoi2(data[4:6])
	if hh > 23 {
		return false, fmt.Sprintf("Invalid hour '%02d'", hh)
	}
	if mm > 59 {
		return false, fmt.Sprintf("Invalid minute '%02d'", mm)
	}
	if ss > 59 {
		return false, fmt.Sprintf("Invalid second '%02d'", ss)
	}
	return true, ""
}
