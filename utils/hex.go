package utils

import (
	"strings"
	"unicode"

	"github.com/nyaruka/smscodec/core/models"
)

// CleanHex removes all whitespace from the passed in hex string
func CleanHex(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ValidateHex checks that the passed in string only contains hexadecimal digits, returning an
// InvalidHexError for the first character that isn't
func ValidateHex(s string) error {
	for i, r := range s {
		if !isHexDigit(r) {
			return &models.InvalidHexError{Char: r, Position: i}
		}
	}
	return nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
