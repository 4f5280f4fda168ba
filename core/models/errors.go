package models

import "fmt"

// UnsupportedCharacterError is returned when text contains a character outside the GSM-7 alphabet
type UnsupportedCharacterError struct {
	Char     rune
	Position int
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("text contains characters that cannot be encoded with GSM-7: %q at position %d", e.Char, e.Position)
}

// InvalidHexError is returned when a hex string contains non-hexadecimal characters
type InvalidHexError struct {
	Char     rune
	Position int
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("invalid hex string: contains non-hexadecimal character %q at position %d", e.Char, e.Position)
}

// InvalidLengthError is returned when a UTF-16 hex string isn't made up of whole code units
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid UTF-16 hex string: length %d is not a multiple of 4", e.Length)
}

// EmptyInputError is returned when there is no text or hex to work on
type EmptyInputError struct {
	Input string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no %s provided", e.Input)
}
