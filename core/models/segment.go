package models

// Segment is one transport part of a message
type Segment struct {
	Text      string `json:"text"`
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	CharCount int    `json:"char_count"`
}

// SegmentInfo describes how many single message budgets a text needs
type SegmentInfo struct {
	Count              int `json:"count"`
	CharsPerSegment    int `json:"chars_per_segment"`
	CharsInLastSegment int `json:"chars_in_last_segment"`
	TotalChars         int `json:"total_chars"`
}
