package gsm7

import (
	"strings"

	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/utils"
)

// base gsm7 characters in our normal table
var baseGSM7 = map[rune]byte{
	'@':  0x00,
	'£':  0x01,
	'$':  0x02,
	'¥':  0x03,
	'è':  0x04,
	'é':  0x05,
	'ù':  0x06,
	'ì':  0x07,
	'ò':  0x08,
	'Ç':  0x09,
	'\n': 0x0A,
	'Ø':  0x0B,
	'ø':  0x0C,
	'\r': 0x0D,
	'Å':  0x0E,
	'å':  0x0F,
	'Δ':  0x10,
	'_':  0x11,
	'Φ':  0x12,
	'Γ':  0x13,
	'Λ':  0x14,
	'Ω':  0x15,
	'Π':  0x16,
	'Ψ':  0x17,
	'Σ':  0x18,
	'Θ':  0x19,
	'Ξ':  0x1A,
	// 'ESC':      0x1B, // Escape control
	'Æ':  0x1C,
	'æ':  0x1D,
	'ß':  0x1E,
	'É':  0x1F,
	' ':  0x20,
	'!':  0x21,
	'"':  0x22,
	'#':  0x23,
	'¤':  0x24,
	'%':  0x25,
	'&':  0x26,
	'\'': 0x27,
	'(':  0x28,
	')':  0x29,
	'*':  0x2A,
	'+':  0x2B,
	',':  0x2C,
	'-':  0x2D,
	'.':  0x2E,
	'/':  0x2F,
	'0':  0x30,
	'1':  0x31,
	'2':  0x32,
	'3':  0x33,
	'4':  0x34,
	'5':  0x35,
	'6':  0x36,
	'7':  0x37,
	'8':  0x38,
	'9':  0x39,
	':':  0x3A,
	';':  0x3B,
	'<':  0x3C,
	'=':  0x3D,
	'>':  0x3E,
	'?':  0x3F,
	'¡':  0x40,
	'A':  0x41,
	'B':  0x42,
	'C':  0x43,
	'D':  0x44,
	'E':  0x45,
	'F':  0x46,
	'G':  0x47,
	'H':  0x48,
	'I':  0x49,
	'J':  0x4A,
	'K':  0x4B,
	'L':  0x4C,
	'M':  0x4D,
	'N':  0x4E,
	'O':  0x4F,
	'P':  0x50,
	'Q':  0x51,
	'R':  0x52,
	'S':  0x53,
	'T':  0x54,
	'U':  0x55,
	'V':  0x56,
	'W':  0x57,
	'X':  0x58,
	'Y':  0x59,
	'Z':  0x5A,
	'Ä':  0x5B,
	'Ö':  0x5C,
	'Ñ':  0x5D,
	'Ü':  0x5E,
	'§':  0x5F,
	'¿':  0x60,
	'a':  0x61,
	'b':  0x62,
	'c':  0x63,
	'd':  0x64,
	'e':  0x65,
	'f':  0x66,
	'g':  0x67,
	'h':  0x68,
	'i':  0x69,
	'j':  0x6A,
	'k':  0x6B,
	'l':  0x6C,
	'm':  0x6D,
	'n':  0x6E,
	'o':  0x6F,
	'p':  0x70,
	'q':  0x71,
	'r':  0x72,
	's':  0x73,
	't':  0x74,
	'u':  0x75,
	'v':  0x76,
	'w':  0x77,
	'x':  0x78,
	'y':  0x79,
	'z':  0x7A,
	'ä':  0x7B,
	'ö':  0x7C,
	'ñ':  0x7D,
	'ü':  0x7E,
	'à':  0x7F,
}

// extended gsm7 characters, these must be preceded by our escape
var extendedGSM7 = map[rune]byte{
	'\f': 0x0A,
	'^':  0x14,
	'{':  0x28,
	'}':  0x29,
	'\\': 0x2F,
	'[':  0x3C,
	'~':  0x3D,
	']':  0x3E,
	'|':  0x40,
	'€':  0x65,
}

// Characters we replace in GSM7 with versions that can actually be encoded
var gsm7Replacements = map[rune]rune{
	'á': 'a',
	'ê': 'e',
	'ã': 'a',
	'â': 'a',
	'ç': 'c',
	'í': 'i',
	'î': 'i',
	'ú': 'u',
	'û': 'u',
	'õ': 'o',
	'ô': 'o',
	'ó': 'o',

	'Á': 'A',
	'Â': 'A',
	'Ã': 'A',
	'À': 'A',
	'È': 'E',
	'Ê': 'E',
	'Í': 'I',
	'Î': 'I',
	'Ì': 'I',
	'Ó': 'O',
	'Ô': 'O',
	'Ò': 'O',
	'Õ': 'O',
	'Ú': 'U',
	'Ù': 'U',
	'Û': 'U',

	// things Word likes replacing automatically
	'’':    '\'',
	'‘':    '\'',
	'“':    '"',
	'”':    '"',
	'–':    '-',
	'\xa0': ' ',
	'\x09': ' ',
}

// esc is our escape byte for the extended charset
const esc byte = 0x1B

// unknown is the septet we replace invalid characters with
const unknown byte = '?'

// max GSM7 value
const max byte = 0x7F

// our reverse mapping from GSM7 byte to rune
var gsm7ToBase = make(map[byte]rune, len(baseGSM7))
var gsm7ToExtended = make(map[byte]rune, len(extendedGSM7))

// we create our reverse mappings in our init
func init() {
	for r, b := range baseGSM7 {
		gsm7ToBase[b] = r
	}

	for r, b := range extendedGSM7 {
		gsm7ToExtended[b] = r
	}
}

// IsValidRune returns whether the passed in rune is in either the base or extended GSM7 tables
func IsValidRune(r rune) bool {
	if _, present := baseGSM7[r]; present {
		return true
	}
	_, present := extendedGSM7[r]
	return present
}

// IsValid returns whether the passed in string is made up of entirely GSM7 characters
func IsValid(text string) bool {
	return firstInvalid(text) == nil
}

// firstInvalid returns an error describing the first non-GSM7 character in text, if any
func firstInvalid(text string) *models.UnsupportedCharacterError {
	pos := 0
	for _, r := range text {
		if !IsValidRune(r) {
			return &models.UnsupportedCharacterError{Char: r, Position: pos}
		}
		pos += utils.UTF16RuneLen(r)
	}
	return nil
}

// ReplaceSubstitutions replaces all the non-GSM7 characters that have valid substitutions
// with their GSM7 versions
func ReplaceSubstitutions(text string) string {
	var output strings.Builder
	output.Grow(len(text))

	for _, r := range text {
		replacement, present := gsm7Replacements[r]
		if present {
			output.WriteRune(replacement)
		} else {
			output.WriteRune(r)
		}
	}
	return output.String()
}

// ToSeptets converts the given UTF-8 text into GSM7 septets, one per byte. Extended characters
// take two septets and characters which aren't valid GSM7 are replaced with '?'
func ToSeptets(text string) []byte {
	septets := make([]byte, 0, len(text))
	for _, r := range text {
		i, found := baseGSM7[r]

		// valid GSM7 base set, output it plainly
		if found {
			septets = append(septets, i)
			continue
		}

		// extended character, output escape then our index
		i, found = extendedGSM7[r]
		if found {
			septets = append(septets, esc, i)
			continue
		}

		// hrmm, this isn't valid GSM7, output ?
		septets = append(septets, unknown)
	}
	return septets
}

// FromSeptets converts the passed in septets back to text. Unknown values and escapes decode
// as '?' and an escape with nothing after it is dropped.
func FromSeptets(septets []byte) string {
	var str strings.Builder
	str.Grow(len(septets))

	escaped := false

	for _, b := range septets {
		var r rune
		var found bool

		if b > max {
			r = '?'
			escaped = false
		} else if escaped {
			r, found = gsm7ToExtended[b]
			if !found {
				r = '?'
			}
			escaped = false
		} else if b == esc {
			escaped = true
			continue
		} else {
			r = gsm7ToBase[b]
		}
		str.WriteRune(r)
	}
	return str.String()
}
