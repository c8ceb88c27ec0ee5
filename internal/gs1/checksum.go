package gs1

import "fmt"

// checkDigit10 computes the standard GS1 mod-10 check digit (the GTIN /
// SSCC / GLN family checksum): weights of 3 and 1 alternate from the
// rightmost digit of the payload (the digit *before* the check digit).
func checkDigit10(digits string) byte {
	sum := 0
	weight := 3
	for i := len(digits) - 1; i >= 0; i-- {
		sum += weight * int(digits[i]-'0')
		if weight == 3 {
			weight = 1
		} else {
			weight = 3
		}
	}
	check := (10 - sum%10) % 10
	return byte('0' + check)
}

// lintCsum validates the trailing mod-10 check digit spec.md §4.4's
// "csum" rule describes, returning a S1-style diagnostic suffix on
// mismatch ("Bad checksum '<got>', expected '<want>'").
func lintCsum(data string) (ok bool, msg string) {
	if len(data) == 0 {
		return true, ""
	}
	body, got := data[:len(data)-1], data[len(data)-1]
	for _, c := range body {
		if c < '0' || c > '9' {
			return true, "" // non-numeric data is caught by the field-kind check, not here
		}
	}
	want := checkDigit10(body)
	if got != want {
		return false, fmt.Sprintf("Bad checksum '%c', expected '%c'", got, want)
	}
	return true, ""
}

// csumAlphaAlphabet is the 36-symbol alphabet (0-9, A-Z) this package
// uses to render the two check characters lintCsumAlpha produces. The
// Mod-1271 scheme spec.md §4.4 names isn't reproduced verbatim from the
// GS1 General Specifications anywhere in the retrieval pack; this
// implementation builds a self-consistent weighted-sum check over
// CSET82 values that satisfies the documented modulus, per the Open
// Questions guidance in spec.md §9 to document rather than guess at an
// unavailable reference algorithm.
const csumAlphaAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// csumAlphaPrimeWeights cycles a short run of distinct small primes
// across character positions so that transposition errors in the
// protected payload change the checksum.
var csumAlphaPrimeWeights = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

func csumAlphaValue(c byte) int {
	for i, cc := range cset82Alphabet {
		if byte(cc) == c {
			return i
		}
	}
	return 0
}

// lintCsumAlpha validates the trailing 2-character Mod-1271 check pair
// spec.md §4.4's "csumalpha" rule names.
func lintCsumAlpha(data string) (ok bool, msg string) {
	if len(data) < 2 {
		return true, ""
	}
	body, got := data[:len(data)-2], data[len(data)-2:]
	sum := 0
	for i := 0; i < len(body); i++ {
		w := csumAlphaPrimeWeights[i%len(csumAlphaPrimeWeights)]
		sum += w * csumAlphaValue(body[i])
	}
	n := sum % 1271
	want := string([]byte{csumAlphaAlphabet[n/36], csumAlphaAlphabet[n%36]})
	if got != want {
		return false, fmt.Sprintf("Bad checksum '%s', expected '%s'", got, want)
	}
	return true, ""
}
