package utils

// UTF16Len returns the number of UTF-16 code units needed to represent the passed in text, which
// is how SMS character budgets are counted
func UTF16Len(text string) int {
	n := 0
	for _, r := range text {
		n += UTF16RuneLen(r)
	}
	return n
}

// UTF16RuneLen returns the number of UTF-16 code units needed for the passed in rune
func UTF16RuneLen(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
