// Package gs1 implements GS1 Application Identifier parsing and linting
// (component F of spec.md §2/§4.4): turning bracketed input such as
// "[01]12345678901231[20]12" into a reduced FNC1-joined string, with
// structural validation and per-AI lint rules.
//
// The table below is a compile-time constant, per spec.md §5 ("the AI
// table and lint-rule registry are likewise immutable; applications
// must not mutate them") -- there is deliberately no loader and no
// mutation API, unlike the teacher's yaml-driven tocalls table in
// src/deviceid.go, because this table's closure over the GS1 General
// Specifications is part of the contract, not an operator-editable
// profile.
package gs1

// FieldKind names the character-set constraint spec.md §3 calls out
// for a GS1 AI's data field.
type FieldKind int

const (
	Numeric FieldKind = iota
	AlphaNumeric
	CSET82
	CSET39
	CSET64
	ISODate
	ISODateTime
)

// LintRule tags one of the lint behaviours spec.md §4.4 tabulates.
type LintRule string

const (
	LintNumeric        LintRule = "numeric"
	LintCSET82         LintRule = "cset82"
	LintCSET39         LintRule = "cset39"
	LintCSET64         LintRule = "cset64"
	LintCsum           LintRule = "csum"
	LintCsumAlpha      LintRule = "csumalpha"
	LintKey            LintRule = "key"
	LintYYMMD0         LintRule = "yymmd0"
	LintYYMMDD         LintRule = "yymmdd"
	LintYYYYMMDD       LintRule = "yyyymmdd"
	LintHH             LintRule = "hh"
	LintHHMM           LintRule = "hhmm"
	LintHHMMSS         LintRule = "hhmmss"
	LintISO3166        LintRule = "iso3166"
	LintISO3166List    LintRule = "iso3166list"
	LintISO3166999     LintRule = "iso3166999"
	LintISO3166Alpha2  LintRule = "iso3166alpha2"
	LintISO4217        LintRule = "iso4217"
	LintPcenc          LintRule = "pcenc"
	LintLatlong        LintRule = "latlong"
	LintYesNo          LintRule = "yesno"
	LintImporterIdx    LintRule = "importeridx"
	LintMediaType      LintRule = "mediatype"
	LintISO5218        LintRule = "iso5218"
	LintNonzero        LintRule = "nonzero"
	LintZero           LintRule = "zero"
	LintNoZeroPrefix   LintRule = "nozeroprefix"
	LintWinding        LintRule = "winding"
	LintPieceOfTotal   LintRule = "pieceoftotal"
	LintIBAN           LintRule = "iban"
	LintCouponCode     LintRule = "couponcode"
	LintCouponPosOffer LintRule = "couponposoffer"
	LintHyphen         LintRule = "hyphen"
	LintPosInSeqSlash  LintRule = "posinseqslash"
	LintHasNonDigit    LintRule = "hasnondigit"
)

// AIRecord is one row of the GS1 Application Identifier table,
// spec.md §3's "(ai, min_len, max_len, field_kinds, lint_rules)".
type AIRecord struct {
	AI         string // 2-4 digit AI, possibly with trailing 'n' wildcard digits folded out at lookup time
	MinLen     int    // data field length bounds, excluding the AI itself
	MaxLen     int
	FieldKinds [5]FieldKind
	NumKinds   int
	LintRules  [3]LintRule
	NumLints   int
	FixedLen   bool // true if MinLen == MaxLen (most AIs are fixed-length)
}

func ai(code string, minLen, maxLen int, fixedLen bool, kinds []FieldKind, lints []LintRule) AIRecord {
	r := AIRecord{AI: code, MinLen: minLen, MaxLen: maxLen, FixedLen: fixedLen}
	r.NumKinds = copy(r.FieldKinds[:], kinds)
	r.NumLints = copy(r.LintRules[:], lints)
	return r
}

// Table is the closed set of AIs this package understands, keyed by the
// literal AI digits. It covers every AI spec.md's worked examples name
// (00, 01, 10, 17, 20, 21, 400-415, 422-423) plus the commonly used
// production-date/time and coupon AIs original_source/ exercises, per
// SPEC_FULL.md's "Supplemented Features".
var Table = buildTable()

func buildTable() map[string]AIRecord {
	m := map[string]AIRecord{}
	add := func(r AIRecord) { m[r.AI] = r }

	add(ai("00", 18, 18, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("01", 14, 14, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("02", 14, 14, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("10", 1, 20, false, []FieldKind{CSET82}, nil))
	add(ai("11", 6, 6, true, []FieldKind{ISODate}, []LintRule{LintYYMMDD}))
	add(ai("12", 6, 6, true, []FieldKind{ISODate}, []LintRule{LintYYMMDD}))
	add(ai("13", 6, 6, true, []FieldKind{ISODate}, []LintRule{LintYYMMDD}))
	add(ai("15", 6, 6, true, []FieldKind{ISODate}, []LintRule{LintYYMMD0}))
	add(ai("16", 6, 6, true, []FieldKind{ISODate}, []LintRule{LintYYMMD0}))
	add(ai("17", 6, 6, true, []FieldKind{ISODate}, []LintRule{LintYYMMD0}))
	add(ai("20", 2, 2, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("21", 1, 20, false, []FieldKind{CSET82}, nil))
	add(ai("22", 1, 20, false, []FieldKind{CSET82}, nil))
	add(ai("23", 0, 19, false, []FieldKind{Numeric}, nil)) // deprecated variable count
	add(ai("240", 1, 30, false, []FieldKind{CSET82}, nil))
	add(ai("241", 1, 30, false, []FieldKind{CSET82}, nil))
	add(ai("250", 1, 30, false, []FieldKind{CSET82}, nil))
	add(ai("251", 1, 30, false, []FieldKind{CSET82}, nil))
	add(ai("254", 1, 20, false, []FieldKind{CSET82}, nil))
	add(ai("30", 1, 8, false, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("37", 1, 8, false, []FieldKind{Numeric}, []LintRule{LintNumeric, LintNonzero}))
	add(ai("400", 1, 30, false, []FieldKind{CSET82}, nil))
	add(ai("401", 1, 30, false, []FieldKind{CSET82}, nil))
	add(ai("402", 17, 17, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("403", 1, 30, false, []FieldKind{CSET82}, nil))
	add(ai("410", 13, 13, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("411", 13, 13, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("412", 13, 13, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("413", 13, 13, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("414", 13, 13, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("415", 13, 13, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("422", 3, 3, true, []FieldKind{Numeric}, []LintRule{LintISO3166}))
	add(ai("423", 3, 15, false, []FieldKind{Numeric}, []LintRule{LintISO3166List}))
	add(ai("424", 3, 3, true, []FieldKind{Numeric}, []LintRule{LintISO3166}))
	add(ai("425", 3, 15, false, []FieldKind{Numeric}, []LintRule{LintISO3166List}))
	add(ai("426", 3, 3, true, []FieldKind{Numeric}, []LintRule{LintISO3166999}))
	add(ai("7001", 13, 13, true, []FieldKind{Numeric}, nil))
	add(ai("7002", 1, 30, false, []FieldKind{CSET82}, nil))
	add(ai("7003", 10, 10, true, []FieldKind{ISODateTime}, []LintRule{LintYYMMDD}))
	add(ai("7004", 1, 4, false, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("7006", 6, 6, true, []FieldKind{ISODate}, []LintRule{LintYYMMD0}))
	add(ai("7007", 6, 12, false, []FieldKind{Numeric}, []LintRule{LintYYMMD0}))
	add(ai("7010", 1, 2, false, []FieldKind{CSET82}, nil))
	add(ai("7040", 4, 4, true, []FieldKind{CSET82}, []LintRule{LintPosInSeqSlash}))
	add(ai("8001", 14, 14, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("8002", 1, 20, false, []FieldKind{CSET82}, nil))
	add(ai("8003", 14, 30, false, []FieldKind{Numeric, CSET82}, []LintRule{LintCsum}))
	add(ai("8004", 1, 30, false, []FieldKind{CSET82}, nil))
	add(ai("8005", 6, 6, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("8006", 18, 18, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("8007", 1, 34, false, []FieldKind{CSET82}, []LintRule{LintIBAN}))
	add(ai("8008", 8, 12, false, []FieldKind{ISODateTime}, []LintRule{LintYYMMDD, LintHHMM}))
	add(ai("8009", 1, 50, false, []FieldKind{CSET82}, nil))
	add(ai("8010", 1, 30, false, []FieldKind{CSET39}, nil))
	add(ai("8011", 1, 12, false, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("8012", 1, 20, false, []FieldKind{CSET82}, nil))
	add(ai("8013", 1, 25, false, []FieldKind{CSET82}, nil))
	add(ai("8017", 18, 18, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("8018", 18, 18, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("8019", 1, 10, false, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("8020", 1, 25, false, []FieldKind{CSET82}, nil))
	add(ai("8026", 18, 18, true, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("8110", 1, 70, false, []FieldKind{CSET82}, []LintRule{LintCouponCode}))
	add(ai("8111", 4, 4, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("8112", 1, 70, false, []FieldKind{CSET82}, []LintRule{LintCouponPosOffer}))
	add(ai("8200", 1, 70, false, []FieldKind{CSET82}, nil))
	add(ai("90", 1, 30, false, []FieldKind{CSET82}, nil))
	add(ai("91", 1, 90, false, []FieldKind{CSET82}, nil))
	add(ai("92", 1, 90, false, []FieldKind{CSET82}, nil))
	add(ai("93", 1, 90, false, []FieldKind{CSET82}, nil))
	add(ai("94", 1, 90, false, []FieldKind{CSET82}, nil))
	add(ai("95", 1, 90, false, []FieldKind{CSET82}, nil))
	add(ai("96", 1, 90, false, []FieldKind{CSET82}, nil))
	add(ai("97", 1, 90, false, []FieldKind{CSET82}, nil))
	add(ai("98", 1, 90, false, []FieldKind{CSET82}, nil))
	add(ai("99", 1, 90, false, []FieldKind{CSET82}, nil))
	add(ai("253", 13, 30, false, []FieldKind{Numeric, CSET82}, []LintRule{LintCsum}))
	add(ai("255", 13, 25, false, []FieldKind{Numeric}, []LintRule{LintCsum}))
	add(ai("310", 6, 6, true, []FieldKind{Numeric}, []LintRule{LintNumeric})) // net weight kg, variants 3100-3109 share the shape
	add(ai("3100", 6, 6, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("3101", 6, 6, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("3102", 6, 6, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("3200", 6, 6, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("3920", 1, 15, false, []FieldKind{Numeric}, []LintRule{LintHasNonDigit}))
	add(ai("3921", 1, 15, false, []FieldKind{Numeric}, []LintRule{LintHasNonDigit}))
	add(ai("4300", 1, 35, false, []FieldKind{CSET82}, nil))
	add(ai("4301", 1, 35, false, []FieldKind{CSET82}, nil))
	add(ai("421", 4, 12, false, []FieldKind{Numeric}, []LintRule{LintISO3166}))
	add(ai("427", 1, 3, false, []FieldKind{CSET82}, []LintRule{LintISO3166Alpha2}))
	add(ai("7230", 10, 10, true, []FieldKind{CSET82}, []LintRule{LintISO3166Alpha2}))
	add(ai("4321", 1, 1, true, []FieldKind{Numeric}, []LintRule{LintYesNo}))
	add(ai("4322", 1, 1, true, []FieldKind{Numeric}, []LintRule{LintYesNo}))
	add(ai("4323", 1, 1, true, []FieldKind{Numeric}, []LintRule{LintYesNo}))
	add(ai("4330", 1, 4, false, []FieldKind{Numeric}, []LintRule{LintWinding}))
	add(ai("4331", 1, 4, false, []FieldKind{Numeric}, []LintRule{LintWinding}))
	add(ai("4332", 1, 4, false, []FieldKind{Numeric}, []LintRule{LintWinding}))
	add(ai("4333", 1, 4, false, []FieldKind{Numeric}, []LintRule{LintWinding}))
	add(ai("242", 1, 6, false, []FieldKind{Numeric}, []LintRule{LintNumeric, LintNoZeroPrefix}))
	add(ai("243", 1, 20, false, []FieldKind{CSET82}, nil))
	add(ai("7241", 2, 2, true, []FieldKind{Numeric}, []LintRule{LintISO5218}))
	add(ai("7242", 1, 25, false, []FieldKind{CSET82}, nil))
	add(ai("7250", 8, 8, true, []FieldKind{ISODate}, []LintRule{LintYYYYMMDD}))
	add(ai("7251", 6, 6, true, []FieldKind{ISODate}, []LintRule{LintYYMMD0}))
	add(ai("7252", 1, 1, true, []FieldKind{Numeric}, []LintRule{LintMediaType}))
	add(ai("336", 4, 4, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))

	// Remaining rows round out the lint-rule table spec.md §4.4 names
	// that the worked examples above don't already exercise: geographic
	// coordinates, piece-of-total, hyphenated lot refs, time-of-day and
	// enumerated single-character codes.
	add(ai("8030", 20, 20, true, []FieldKind{Numeric}, []LintRule{LintLatlong}))
	add(ai("8031", 6, 6, true, []FieldKind{Numeric}, []LintRule{LintPieceOfTotal}))
	add(ai("7023", 1, 30, false, []FieldKind{CSET82}, []LintRule{LintHyphen}))
	add(ai("8032", 6, 6, true, []FieldKind{ISODateTime}, []LintRule{LintHH}))
	add(ai("8033", 6, 6, true, []FieldKind{ISODateTime}, []LintRule{LintHHMMSS}))
	add(ai("7009", 1, 5, false, []FieldKind{CSET82}, []LintRule{LintImporterIdx}))
	add(ai("3940", 4, 4, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("3941", 4, 4, true, []FieldKind{Numeric}, []LintRule{LintNumeric}))
	add(ai("7231", 1, 2, false, []FieldKind{CSET39}, nil))

	return m
}

// Lookup finds the AIRecord for a decoded AI code, following spec.md
// §3's "keyed by 2-4 digit AIs". GS1 AIs with a trailing variable digit
// encoding decimal-point position (e.g. 310x, 392x, 433x) collapse onto
// a representative row already present in the table above; look those
// up by zeroing the variable digit when an exact match is absent.
func Lookup(code string) (AIRecord, bool) {
	if r, ok := Table[code]; ok {
		return r, true
	}
	if len(code) == 4 {
		generic := code[:3] + "0"
		if r, ok := Table[generic]; ok {
			return r, true
		}
	}
	return AIRecord{}, false
}
