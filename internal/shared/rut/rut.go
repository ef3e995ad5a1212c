// Package rut validates Chilean national identifiers (RUT).
package rut

import "strings"

// IsValid reports whether s is a well-formed RUT with a correct check digit.
// Both "12345678-5" and "123456785" forms are accepted; the check character
// is case-insensitive. Malformed input never panics, it just returns false.
func IsValid(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "-", "")
	if len(s) < 2 {
		return false
	}

	body := s[:len(s)-1]
	check := s[len(s)-1]

	if len(body) < 7 || len(body) > 8 {
		return false
	}
	for _, c := range body {
		if c < '0' || c > '9' {
			return false
		}
	}
	if check != 'K' && (check < '0' || check > '9') {
		return false
	}

	return computeCheckDigit(body) == check
}

// computeCheckDigit implements the standard weighted modulo-11 scheme over
// the reversed digit sequence, with weights cycling 2..7.
func computeCheckDigit(body string) byte {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}

	switch rem := 11 - sum%11; rem {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + rem)
	}
}
