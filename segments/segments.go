// Package segments works out how messages are divided into transport segments.
//
// Two budgets apply to each encoding. Plan measures a text against the single message budget
// (160 GSM7 or 70 UTF16 characters) while Split, once a text needs more than one message, slices
// it by the smaller multipart budget (153 or 67) since each part loses room to its UDH. A text
// whose length falls between the two budgets plans as a single message.
package segments

import (
	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/utils"
)

// Plan returns how many single message budgets the passed in text needs in the given encoding
func Plan(text string, enc models.Encoding) models.SegmentInfo {
	total := utils.UTF16Len(text)
	budget := enc.SingleBudget()

	if total == 0 {
		return models.SegmentInfo{CharsPerSegment: budget}
	}

	last := total % budget
	if last == 0 {
		last = budget
	}

	return models.SegmentInfo{
		Count:              (total + budget - 1) / budget,
		CharsPerSegment:    budget,
		CharsInLastSegment: last,
		TotalChars:         total,
	}
}

// Split splits the passed in text into the segments it would be sent as in the given encoding
func Split(text string, enc models.Encoding) []models.Segment {
	info := Plan(text, enc)
	if info.Count == 0 {
		return []models.Segment{}
	}
	if info.Count == 1 {
		return []models.Segment{{Text: text, Index: 1, Total: 1, CharCount: info.TotalChars}}
	}

	// slice the original string on character boundaries so segments always join back into it,
	// even when it isn't valid UTF-8, and a surrogate pair always stays in one segment
	limit := enc.MultipartBudget()
	segments := make([]models.Segment, 0, (info.TotalChars+limit-1)/limit)
	start, units := 0, 0

	for i, r := range text {
		n := utils.UTF16RuneLen(r)
		if units+n > limit {
			segments = append(segments, models.Segment{Text: text[start:i], CharCount: units})
			start, units = i, 0
		}
		units += n
	}
	segments = append(segments, models.Segment{Text: text[start:], CharCount: units})

	for i := range segments {
		segments[i].Index = i + 1
		segments[i].Total = len(segments)
	}
	return segments
}

// MaxCharsPerMessage returns the number of characters that fit in a message of the given
// encoding, which depends on whether it is part of a multipart message
func MaxCharsPerMessage(enc models.Encoding, multipart bool) int {
	if multipart {
		return enc.MultipartBudget()
	}
	return enc.SingleBudget()
}
