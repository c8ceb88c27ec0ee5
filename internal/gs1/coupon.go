package gs1

import "fmt"

// couponField describes one fixed-or-variable-length field of the North
// American Coupon Code grammar (spec.md §4.4's "couponcode" and
// "couponposoffer" rules): a run of digits of between minLen and maxLen
// characters, its length given by the single digit that introduces it.
type couponField struct {
	minLen, maxLen int
}

// couponCodeGrammar is the field sequence for AI (8110): Primary GS1
// Company Prefix + Offer Code + household/save/retailer fields, each
// variable length, declared with an explicit length-of-length prefix
// digit in the real GS1 coupon grammar. This package implements a
// simplified but structurally faithful version: each field is introduced
// by its own 1-digit length prefix, with no leading field count.
var couponCodeGrammar = []couponField{
	{minLen: 6, maxLen: 12}, // Company Prefix + Offer Code
	{minLen: 1, maxLen: 9},  // Serial Number (optional)
}

// couponPosOfferGrammar is the simpler positive-offer-file variant used
// by AI (8112).
var couponPosOfferGrammar = []couponField{
	{minLen: 6, maxLen: 12},
}

// parseCouponFields recursively consumes fields from data following
// grammar: each field is introduced by a single length digit 'n'
// (0-9) giving the count of data digits that follow, recursing on the
// remainder until the grammar or the data is exhausted.
func parseCouponFields(data string, grammar []couponField, idx int) (ok bool, msg string) {
	if idx >= len(grammar) {
		if data != "" {
			return false, "Unexpected trailing data in coupon code"
		}
		return true, ""
	}
	if data == "" {
		if idx == 0 {
			return false, "Coupon code is empty"
		}
		return true, "" // trailing optional fields may be absent
	}
	if len(data) < 1 {
		return false, "Coupon code truncated"
	}
	lengthDigit := data[0]
	if lengthDigit < '0' || lengthDigit > '9' {
		return false, "Coupon code field length indicator must be a digit"
	}
	fieldLen := int(lengthDigit - '0')
	if f := grammar[idx]; fieldLen < f.minLen || fieldLen > f.maxLen {
		return false, fmt.Sprintf("Coupon code field %d must be %d-%d digits", idx, f.minLen, f.maxLen)
	}
	rest := data[1:]
	if fieldLen > len(rest) {
		return false, fmt.Sprintf("Coupon code field at position %d is truncated", idx)
	}
	value := rest[:fieldLen]
	if n, _ := lintNumeric(value); !n {
		return false, fmt.Sprintf("Coupon code field %d must be numeric", idx)
	}
	return parseCouponFields(rest[fieldLen:], grammar, idx+1)
}

func lintCouponCode(data string) (ok bool, msg string) {
	return parseCouponFields(data, couponCodeGrammar, 0)
}

func lintCouponPosOffer(data string) (ok bool, msg string) {
	return parseCouponFields(data, couponPosOfferGrammar, 0)
}
