// Package utf16be encodes text as big-endian UTF-16 hex, the form UCS2 SMS payloads take.
package utf16be

import (
	"encoding/hex"

	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/utils"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// BOMs are never added or consumed, a leading U+FEFF is just another character
var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// Encode encodes the passed in text as a lowercase hex string of big-endian UTF-16 code units.
// Characters outside the basic plane are written as their two surrogate code units.
func Encode(text string) string {
	encoded, _, err := transform.String(utf16BE.NewEncoder(), text)
	if err != nil {
		// UTF-16 can represent every rune so the encoder never fails
		panic(err)
	}
	return hex.EncodeToString([]byte(encoded))
}

// Decode decodes the passed in hex string of big-endian UTF-16 code units. Whitespace is
// ignored. Lone surrogates can't be represented in a Go string and decode as U+FFFD.
func Decode(hexStr string) (string, error) {
	cleaned := utils.CleanHex(hexStr)

	if len(cleaned)%4 != 0 {
		return "", &models.InvalidLengthError{Length: len(cleaned)}
	}
	if err := utils.ValidateHex(cleaned); err != nil {
		return "", err
	}

	units, err := hex.DecodeString(cleaned)
	if err != nil {
		return "", err
	}

	decoded, _, err := transform.Bytes(utf16BE.NewDecoder(), units)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

