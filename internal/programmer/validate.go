package programmer

import (
	"strconv"
	"strings"
)

// IsValidBinary reports whether s consists only of the digits 0 and 1.
func IsValidBinary(s string) bool {
	return onlyDigits(s, "01")
}

// IsValidOctal reports whether s consists only of the digits 0 through 7.
func IsValidOctal(s string) bool {
	return onlyDigits(s, "01234567")
}

// IsValidHexadecimal reports whether s is a hex numeral that fits in 64
// bits. Surrounding whitespace is allowed, a 0x prefix is not.
func IsValidHexadecimal(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}
	_, err := strconv.ParseUint(t, 16, 64)
	return err == nil
}

func onlyDigits(s, digits string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(digits, r) {
			return false
		}
	}
	return true
}
