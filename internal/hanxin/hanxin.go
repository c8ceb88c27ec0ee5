package hanxin

import "github.com/zint-go/zint/internal/zerr"

// InputSegment is one planned segment handed to the Han Xin encoder,
// spec.md §4.5's "Inputs: planned segments (often a single UTF-8
// segment)". ECI is 0 when the segment carries no explicit ECI.
type InputSegment struct {
	Text string
	ECI  int
}

// Options controls one Han Xin encode call, spec.md §4.5. ECC and
// Version of 0 mean "auto"; Mask is ignored unless AutoMask is false.
type Options struct {
	ECC      ECCLevel
	Version  Version
	Mask     MaskID
	AutoMask bool
}

// Result is the outcome of Encode: the populated module matrix plus the
// chosen version/ECC/mask and a diagnostic, spec.md §4.1's Result = Ok |
// Warn | Err shape specialised to this encoder.
type Result struct {
	Matrix     *Matrix
	Version    Version
	ECC        ECCLevel
	Mask       MaskID
	Diagnostic zerr.Diagnostic
}

// BuildRuns turns planned segments into a flat list of mode runs,
// inserting an explicit ModeECI run ahead of any segment that declares
// one, per spec.md §4.5 mode 8 and the S6 scenario ("single symbol
// encoding both segments with explicit ECI switch codeword between
// them"). A segment whose bytes don't fit its declared ECI's character
// range fails with Err 545 before any run is built for it.
func BuildRuns(segments []InputSegment) (runs []modeRun, implicitFallback bool, diag zerr.Diagnostic) {
	for _, seg := range segments {
		if seg.ECI != 0 {
			if !validateECIChars(seg.Text, seg.ECI) {
				return nil, false, zerr.Errorf(ErrBadECIChar, "Invalid character for declared ECI %d", seg.ECI)
			}
			runs = append(runs, modeRun{mode: ModeECI, eci: seg.ECI})
		}
		segRuns, fb := PlanRuns(seg.Text)
		runs = append(runs, segRuns...)
		implicitFallback = implicitFallback || (fb && seg.ECI == 0)
	}
	return runs, implicitFallback, zerr.Okf()
}

func isPureNumeric(runs []modeRun) bool {
	return len(runs) == 1 && runs[0].mode == ModeNumeric
}

func capacityBitsFor(runs []modeRun, v Version, ecc ECCLevel) int {
	if isPureNumeric(runs) {
		return scaledBudget(v, ecc, capacityAnchorNumeric)
	}
	return scaledBudget(v, ecc, capacityAnchorText)
}

// SelectVersionECC picks the smallest version (and, when ECC is auto,
// the strongest ECC level that still fits at that version) whose
// capacity covers runs, per spec.md §4.5's versioning rule. A pinned
// version that doesn't fit yields Err 542; no version fitting at all
// yields Err 541.
func SelectVersionECC(runs []modeRun, pinnedVersion Version, pinnedECC ECCLevel) (Version, ECCLevel, zerr.Diagnostic) {
	eccCandidates := []ECCLevel{ECC4, ECC3, ECC2, ECC1}
	if pinnedECC != 0 {
		eccCandidates = []ECCLevel{pinnedECC}
	}
	bits := TotalCostBits(runs)

	fits := func(v Version, ecc ECCLevel) bool {
		return bits <= capacityBitsFor(runs, v, ecc)
	}

	if pinnedVersion != 0 {
		for _, ecc := range eccCandidates {
			if fits(pinnedVersion, ecc) {
				return pinnedVersion, ecc, zerr.Okf()
			}
		}
		return 0, 0, zerr.Errorf(ErrTooLongPinned, "Input too long for Version %d", pinnedVersion)
	}

	for v := MinVersion; v <= MaxVersion; v++ {
		for _, ecc := range eccCandidates {
			if fits(v, ecc) {
				return v, ecc, zerr.Okf()
			}
		}
	}
	return 0, 0, zerr.Errorf(ErrTooLongMaxVersion, "Input too long for maximum Version %d", MaxVersion)
}

// Encode implements the Han Xin encoder's top-level operation, spec.md
// §4.5: mode selection, versioning, Reed-Solomon ECC, module placement
// and mask selection, in one call.
func Encode(segments []InputSegment, opts Options) Result {
	runs, implicitFallback, buildDiag := BuildRuns(segments)
	if buildDiag.IsError() {
		return Result{Diagnostic: buildDiag}
	}
	collector := &zerr.Collector{}
	if implicitFallback {
		collector.Report(zerr.Warnf(WarnImplicitShiftJIS, "Converted to Shift-JIS without an explicit ECI"))
	}

	version, ecc, diag := SelectVersionECC(runs, opts.Version, opts.ECC)
	if diag.IsError() {
		return Result{Diagnostic: diag}
	}

	packed := PackRuns(runs)
	for {
		budget := DataCodewordBudget(version, ecc)
		if len(packed) <= budget {
			break
		}
		if opts.Version != 0 {
			return Result{Diagnostic: zerr.Errorf(ErrTooLongPinned, "Input too long for Version %d", version)}
		}
		version++
		if version > MaxVersion {
			return Result{Diagnostic: zerr.Errorf(ErrTooLongMaxVersion, "Input too long for maximum Version %d", MaxVersion)}
		}
	}

	stream := ApplyECC(packed, version, ecc)

	m := newMatrix(Width(version))
	drawFunctionPatterns(m)
	PlaceData(m, stream)

	mask := opts.Mask
	if opts.AutoMask {
		mask, _ = ChooseMask(m)
	}
	ApplyMask(m, mask)
	EncodeFunctionInfo(m, versionFamily(version), int(ecc)-1, int(mask))

	return Result{
		Matrix:     m,
		Version:    version,
		ECC:        ecc,
		Mask:       mask,
		Diagnostic: collector.Result(false),
	}
}

// versionFamily buckets the 84 versions into the 2-bit family field
// spec.md §4.5's function-information region carries.
func versionFamily(v Version) int {
	return (int(v) - 1) / 21
}
