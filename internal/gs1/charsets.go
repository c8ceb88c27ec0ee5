package gs1

import "strings"

// cset82Alphabet is GS1's CSET 82: digits, upper/lower case letters and
// a fixed set of punctuation, used for most free-text AI data fields.
const cset82Alphabet = "!\"%&'()*+,-./0123456789:;<=>?" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

// cset39Alphabet is GS1's CSET 39 (a restriction of CSET 82 used by a
// handful of AIs, e.g. packaging-component type).
const cset39Alphabet = "#-/0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// cset64Alphabet is GS1's CSET 64, the base64-url-safe-like set used
// for AI (8112)-style coupon payloads.
const cset64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

func isSubsetOf(data, alphabet string) bool {
	for i := 0; i < len(data); i++ {
		if !strings.ContainsRune(alphabet, rune(data[i])) {
			return false
		}
	}
	return true
}

func lintCSET82(data string) (ok bool, msg string) {
	if !isSubsetOf(data, cset82Alphabet) {
		return false, "Invalid character in data (CSET 82)"
	}
	return true, ""
}

func lintCSET39(data string) (ok bool, msg string) {
	if !isSubsetOf(strings.ToUpper(data), cset39Alphabet) {
		return false, "Invalid character in data (CSET 39)"
	}
	return true, ""
}

func lintCSET64(data string) (ok bool, msg string) {
	if !isSubsetOf(data, cset64Alphabet) {
		return false, "Invalid character in data (CSET 64)"
	}
	return true, ""
}

func lintNumeric(data string) (ok bool, msg string) {
	for i := 0; i < len(data); i++ {
		if data[i] < '0' || data[i] > '9' {
			return false, "Non-numeric character in numeric field"
		}
	}
	return true, ""
}
