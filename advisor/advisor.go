package advisor

import (
	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/gsm7"
	"github.com/nyaruka/smscodec/segments"
	"github.com/nyaruka/smscodec/utils"
)

// Analysis is the result of analyzing a text for sending
type Analysis struct {
	RecommendedEncoding         models.Encoding `json:"recommended_encoding"`
	CanUseGSM7                  bool            `json:"can_use_gsm7"`
	CanUseGSM7WithSubstitutions bool            `json:"can_use_gsm7_with_substitutions"`
	CharCount                   int             `json:"char_count"`
	SegmentsGSM7                int             `json:"segments_gsm7"`
	SegmentsUTF16               int             `json:"segments_utf16"`
}

// UnsupportedChar is a character which can't be encoded as GSM7
type UnsupportedChar struct {
	Char      string `json:"char"`
	Position  int    `json:"position"`
	CodePoint rune   `json:"code_point"`
}

// Analyze works out which encoding the passed in text should be sent with. GSM7 is always
// recommended when it can be used since it fits more characters in each segment.
func Analyze(text string) *Analysis {
	canUseGSM7 := gsm7.IsValid(text)

	a := &Analysis{
		RecommendedEncoding:         models.EncodingUTF16,
		CanUseGSM7:                  canUseGSM7,
		CanUseGSM7WithSubstitutions: canUseGSM7 || gsm7.IsValid(gsm7.ReplaceSubstitutions(text)),
		CharCount:                   utils.UTF16Len(text),
		SegmentsGSM7:                segments.Plan(text, models.EncodingGSM7).Count,
		SegmentsUTF16:               segments.Plan(text, models.EncodingUTF16).Count,
	}
	if canUseGSM7 {
		a.RecommendedEncoding = models.EncodingGSM7
	}
	return a
}

// FindUnsupported returns every character in the passed in text which can't be encoded as GSM7.
// Positions are 0-based and counted in UTF-16 code units.
func FindUnsupported(text string) []UnsupportedChar {
	unsupported := make([]UnsupportedChar, 0)
	pos := 0

	for _, r := range text {
		if !gsm7.IsValidRune(r) {
			unsupported = append(unsupported, UnsupportedChar{Char: string(r), Position: pos, CodePoint: r})
		}
		pos += utils.UTF16RuneLen(r)
	}
	return unsupported
}
