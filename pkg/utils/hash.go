package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// HashPhone returns a SHA-256 hex digest of the digits in a phone number so
// leads can be correlated in logs without writing the number itself.
// Formatting differences ("+55 65 ...", "5565...") hash identically.
func HashPhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)

	sum := sha256.Sum256([]byte(digits))
	return hex.EncodeToString(sum[:])
}
