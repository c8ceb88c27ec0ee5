package gs1

import "github.com/zint-go/zint/internal/zerr"

// lintFunc validates one field's data and returns a human-readable
// suffix on failure.
type lintFunc func(data string) (ok bool, msg string)

var lintDispatch = map[LintRule]lintFunc{
	LintNumeric:        lintNumeric,
	LintCSET82:         lintCSET82,
	LintCSET39:         lintCSET39,
	LintCSET64:         lintCSET64,
	LintCsum:           lintCsum,
	LintCsumAlpha:      lintCsumAlpha,
	LintYYMMD0:         lintYYMMD0,
	LintYYMMDD:         lintYYMMDD,
	LintYYYYMMDD:       lintYYYYMMDD,
	LintHH:             lintHH,
	LintHHMM:           lintHHMM,
	LintHHMMSS:         lintHHMMSS,
	LintISO3166:        lintISO3166,
	LintISO3166List:    lintISO3166List,
	LintISO3166999:     lintISO3166999,
	LintISO3166Alpha2:  lintISO3166Alpha2,
	LintISO4217:        lintISO4217,
	LintPcenc:          lintPcenc,
	LintLatlong:        lintLatlong,
	LintYesNo:          lintYesNo,
	LintImporterIdx:    lintImporterIdx,
	LintMediaType:      lintMediaType,
	LintISO5218:        lintISO5218,
	LintNonzero:        lintNonzero,
	LintZero:           lintZero,
	LintNoZeroPrefix:   lintNoZeroPrefix,
	LintWinding:        lintWinding,
	LintPieceOfTotal:   lintPieceOfTotal,
	LintIBAN:           lintIBAN,
	LintCouponCode:     lintCouponCode,
	LintCouponPosOffer: lintCouponPosOffer,
	LintHyphen:         lintHyphen,
	LintPosInSeqSlash:  lintPosInSeqSlash,
	LintHasNonDigit:    lintHasNonDigit,
}

// applyLints runs every lint rule an AI record declares against one
// decoded field and reports the first failure, matching spec.md §7's
// "each component returns the first error it encounters" propagation
// rule applied at the per-AI level. Checksum rules (csum, csumalpha)
// report the 1-based position of the failing check digit(s) within the
// field, spec.md §8 scenario S2's "AI (01) position 14: Bad checksum
// '4', expected '1'". AI (423)'s odd-length behaviour
// (spec.md §9 Open Questions: "admits ZINT_WARN_NONCOMPLIANT for odd
// lengths with a length-error message... preserved but looks
// inconsistent") is special-cased here rather than folded into
// lintISO3166List, to keep that function's contract ("valid grouping of
// 3-digit codes") clean for the other AIs that share it (425).
func applyLints(aiCode, field string, rules [3]LintRule, n int, keyLen int, collector *zerr.Collector) {
	for i := 0; i < n; i++ {
		if rules[i] == LintISO3166List && aiCode == "423" && len(field)%3 != 0 {
			collector.Report(zerr.Warnf(261, "AI (423): length %d is not a multiple of 3 (non-compliant but accepted)", len(field)))
			continue
		}
		if rules[i] == LintKey {
			if ok, msg := lintKey(field, keyLen); !ok {
				collector.Report(zerr.Warnf(261, "AI (%s): %s", aiCode, msg))
			}
			continue
		}
		if rules[i] == LintCsum || rules[i] == LintCsumAlpha {
			fn := lintDispatch[rules[i]]
			if ok, msg := fn(field); !ok {
				collector.Report(zerr.Warnf(261, "AI (%s) position %d: %s", aiCode, len(field), msg))
			}
			continue
		}
		fn, known := lintDispatch[rules[i]]
		if !known {
			continue
		}
		if ok, msg := fn(field); !ok {
			collector.Report(zerr.Warnf(261, "AI (%s): %s", aiCode, msg))
		}
	}
}
