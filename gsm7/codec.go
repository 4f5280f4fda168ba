package gsm7

import (
	"encoding/hex"

	"github.com/nyaruka/smscodec/utils"
)

// Encode encodes the passed in text as packed GSM7 and returns it as a lowercase hex string. If
// the text contains characters which can't be encoded, an UnsupportedCharacterError is returned.
func Encode(text string) (string, error) {
	if err := firstInvalid(text); err != nil {
		return "", err
	}
	return EncodeLossy(text), nil
}

// EncodeLossy encodes the passed in text as packed GSM7 hex, replacing any characters that can't
// be encoded with '?'
func EncodeLossy(text string) string {
	return hex.EncodeToString(Pack(ToSeptets(text)))
}

// Decode decodes the passed in packed GSM7 hex string. Whitespace is ignored, as is a trailing
// half octet.
func Decode(hexStr string) (string, error) {
	octets, err := decodeOctets(hexStr)
	if err != nil {
		return "", err
	}
	return FromSeptets(Unpack(octets)), nil
}

// EncodeUnpacked encodes the passed in text as unpacked GSM7 hex, one septet per octet. Characters
// that can't be encoded are replaced with '?'.
func EncodeUnpacked(text string) string {
	return hex.EncodeToString(ToSeptets(text))
}

// DecodeUnpacked decodes the passed in unpacked GSM7 hex string, one septet per octet
func DecodeUnpacked(hexStr string) (string, error) {
	octets, err := decodeOctets(hexStr)
	if err != nil {
		return "", err
	}
	return FromSeptets(octets), nil
}

func decodeOctets(hexStr string) ([]byte, error) {
	cleaned := utils.CleanHex(hexStr)
	if err := utils.ValidateHex(cleaned); err != nil {
		return nil, err
	}

	// an odd trailing digit can't make an octet so is ignored
	if len(cleaned)%2 != 0 {
		cleaned = cleaned[:len(cleaned)-1]
	}

	return hex.DecodeString(cleaned)
}
