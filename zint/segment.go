package zint

import (
	"unicode/utf8"

	"github.com/zint-go/zint/internal/zerr"
)

// Segment is one ECI-tagged chunk of input, spec.md §3's Segment data
// model. Length mirrors the C model's length field (-1 there meaning
// NUL-terminated); the planner and encoders use len(Source) and never
// read Length.
type Segment struct {
	ECI    uint32
	Source []byte
	Length int
}

const (
	maxSegments   = 256
	maxTotalBytes = 39000
)

// Plan is the Segment/ECI Planner's output: a validated segment list
// ready to hand to the GS1 linter or Han Xin encoder.
type Plan struct {
	Segments   []Segment
	Diagnostic zerr.Diagnostic
}

// eciAutoOrder lists the narrow set of ECI designators spec.md §4.3
// names for auto-selection, in narrowest-first preference order.
// autoSelectECI does not read this table; it picks among 0, 3 and 26
// directly.
var eciAutoOrder = []struct {
	eci  uint32
	name string
}{
	{0, "ASCII"},
	{3, "ISO-8859-1"},
	{26, "UTF-8"},
	{899, "8-bit binary"},
}

// PlanSegments validates segs against spec.md §4.3's invariants and, for
// a single segment with no ECI set, auto-selects the narrowest ECI that
// can represent its bytes.
func PlanSegments(segs []Segment, supportsMultiSegment bool) Plan {
	if len(segs) == 0 {
		return Plan{Diagnostic: zerr.Errorf(ErrSegmentsUnsupported, "No segments supplied")}
	}
	if len(segs) > maxSegments {
		return Plan{Diagnostic: zerr.Errorf(ErrSegmentsUnsupported, "Too many segments (max %d)", maxSegments)}
	}
	if len(segs) > 1 && !supportsMultiSegment {
		return Plan{Diagnostic: zerr.Errorf(ErrSegmentsUnsupported, "This symbology does not support multiple segments")}
	}

	total := 0
	for _, s := range segs {
		total += len(s.Source)
	}
	if total > maxTotalBytes {
		return Plan{Diagnostic: zerr.Errorf(ErrSegmentsUnsupported, "Total segment length %d exceeds %d bytes", total, maxTotalBytes)}
	}

	for i := 1; i < len(segs); i++ {
		if segs[i].ECI == segs[i-1].ECI {
			return Plan{Diagnostic: zerr.Errorf(ErrSegmentsUnsupported, "Segments must be consecutive: repeated ECI %d at boundary %d", segs[i].ECI, i)}
		}
	}

	out := make([]Segment, len(segs))
	copy(out, segs)
	collector := &zerr.Collector{}

	if len(out) == 1 && out[0].ECI == 0 {
		eci, name, narrowed := autoSelectECI(out[0].Source)
		if narrowed {
			out[0].ECI = eci
			collector.Report(zerr.Warnf(WarnImplicitECI, "Converted to %s", name))
		}
	}

	return Plan{Segments: out, Diagnostic: collector.Result(false)}
}

// autoSelectECI inspects data and returns the narrowest ECI designator
// spec.md §4.3 lists that can represent it, and whether narrowing
// beyond plain ASCII actually happened.
func autoSelectECI(data []byte) (eci uint32, name string, narrowed bool) {
	allASCII := true
	for _, b := range data {
		if b >= 0x80 {
			allASCII = false
			break
		}
	}
	if allASCII {
		return 0, "ASCII", false
	}
	if utf8.Valid(data) {
		for _, r := range string(data) {
			if r > 0xFF {
				return 26, "UTF-8", true
			}
		}
	}
	return 3, "ISO-8859-1", true
}
