// Package trace provides the encoder pipeline's structured diagnostic
// logger. It exists because the teacher's go.mod carries
// github.com/charmbracelet/log as a dependency that none of its actual
// source files import; this package gives that dependency the home the
// teacher never built, wired to the shape spec.md §7 describes: every
// pipeline stage reports a Severity-tagged Diagnostic, and applications
// that want visibility into that flow (not just the terminal result)
// can attach a trace.Logger.
package trace

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/zint-go/zint/internal/zerr"
)

// Logger wraps a charmbracelet/log logger scoped to one encode call.
type Logger struct {
	l *log.Logger
}

// New builds a Logger writing to w at the given level. Passing a nil w
// defaults to os.Stderr, matching charmbracelet/log's own default.
func New(w io.Writer, level log.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
	return &Logger{l: l}
}

// Discard returns a Logger that drops every message, the default for
// callers that don't want tracing (spec.md §5's "no hidden mutation,
// no callbacks" extends to logging being strictly opt-in).
func Discard() *Logger {
	return New(io.Discard, log.FatalLevel+1)
}

// Stage logs one named pipeline stage's outcome: component name (e.g.
// "gs1.verify", "hanxin.select_version") plus the diagnostic it
// produced.
func (lg *Logger) Stage(component string, d zerr.Diagnostic) {
	if lg == nil || lg.l == nil {
		return
	}
	switch d.Severity {
	case zerr.Err:
		lg.l.Error(d.Message, "component", component, "code", d.Code)
	case zerr.Warn:
		lg.l.Warn(d.Message, "component", component, "code", d.Code)
	default:
		lg.l.Debug("ok", "component", component)
	}
}

// Info logs a free-form progress message at info level, e.g. a profile
// that failed to load.
func (lg *Logger) Info(msg string, kv ...any) {
	if lg == nil || lg.l == nil {
		return
	}
	lg.l.Info(msg, kv...)
}
