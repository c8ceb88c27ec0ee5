// Package zerr is the error model shared by every encoder family
// (component J of spec.md §2): numbered errors and warnings, WERROR
// promotion, and first-wins propagation. It has no dependency on the
// symbol object so the GS1 linter and the Han Xin encoder can both
// return Diagnostics without importing the zint facade package.
package zerr

import "fmt"

// Severity distinguishes a clean result from a recoverable warning from
// a terminal error, per spec.md §4.1's Result = Ok | Warn | Err.
type Severity int

const (
	OK Severity = iota
	Warn
	Err
)

// Diagnostic is the message-bearing result of one pipeline stage. Code
// is one of the numbered tags spec.md documents throughout §4 and §7;
// Message is the human-readable suffix appended after "Error N: " or
// "Warning N: ".
type Diagnostic struct {
	Severity Severity
	Code     int
	Message  string
}

// Text renders the diagnostic the way spec.md §4.1 requires: ASCII,
// <=100 bytes, "Error <N>: ..." or "Warning <N>: ...".
func (d Diagnostic) Text() string {
	if d.Severity == OK {
		return ""
	}
	prefix := "Warning"
	if d.Severity == Err {
		prefix = "Error"
	}
	text := fmt.Sprintf("%s %d: %s", prefix, d.Code, d.Message)
	if len(text) > 100 {
		text = text[:100]
	}
	return text
}

func (d Diagnostic) Error() string { return d.Text() }

// IsError reports whether this diagnostic is terminal.
func (d Diagnostic) IsError() bool { return d.Severity == Err }

// Okf, Warnf and Errorf build Diagnostics the way the rest of this
// codebase constructs them: a numeric tag plus a printf-style message.
func Okf() Diagnostic { return Diagnostic{Severity: OK} }

func Warnf(code int, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Warn, Code: code, Message: fmt.Sprintf(format, args...)}
}

func Errorf(code int, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Err, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Collector implements the propagation rule in spec.md §7: the first
// error encountered is terminal and further diagnostics are ignored;
// absent an error, only the first warning is kept and later warnings
// are dropped ("the most severe is reported; subsequent warnings are
// dropped").
type Collector struct {
	worst Diagnostic
	set   bool
}

// Report records d, subject to the first-error/first-warning rule. It
// returns nothing; read the outcome with Result.
func (c *Collector) Report(d Diagnostic) {
	if d.Severity == OK {
		return
	}
	if c.set && c.worst.Severity == Err {
		return // an error is already terminal; nothing overrides it.
	}
	if c.set && c.worst.Severity == Warn && d.Severity == Warn {
		return // first warning wins, subsequent warnings are dropped.
	}
	c.worst = d
	c.set = true
}

// HasError reports whether a terminal error has been recorded.
func (c *Collector) HasError() bool { return c.set && c.worst.Severity == Err }

// Result returns the collector's current worst diagnostic, applying
// WERROR promotion (spec.md §4.1) when werror is set and a warning
// (not yet an error) has been recorded.
func (c *Collector) Result(werror bool) Diagnostic {
	if !c.set {
		return Okf()
	}
	if werror && c.worst.Severity == Warn {
		return Diagnostic{Severity: Err, Code: c.worst.Code, Message: c.worst.Message}
	}
	return c.worst
}
