package smscodec

import (
	"fmt"
	"strings"

	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/gsm7"
	"github.com/nyaruka/smscodec/segments"
	"github.com/nyaruka/smscodec/utf16be"
	"github.com/nyaruka/smscodec/utils"
)

// EncodeResult is the result of encoding a text
type EncodeResult struct {
	Hex         string             `json:"hex"`
	ByteCount   int                `json:"byte_count"`
	CharCount   int                `json:"char_count"`
	SegmentInfo models.SegmentInfo `json:"segment_info"`
	Encoding    models.Encoding    `json:"encoding"`
}

// DecodeResult is the result of decoding a hex string
type DecodeResult struct {
	Text      string          `json:"text"`
	ByteCount int             `json:"byte_count"`
	CharCount int             `json:"char_count"`
	Encoding  models.Encoding `json:"encoding"`
}

// EncodeText encodes the passed in text using the given encoding. GSM7 encoding is strict and
// fails if the text contains characters outside the GSM7 alphabet.
func EncodeText(text string, enc models.Encoding) (*EncodeResult, error) {
	if text == "" {
		return nil, &models.EmptyInputError{Input: "text"}
	}

	var hex string
	var err error

	switch enc {
	case models.EncodingGSM7:
		hex, err = gsm7.Encode(text)
		if err != nil {
			return nil, err
		}
	case models.EncodingUTF16:
		hex = utf16be.Encode(text)
	default:
		return nil, fmt.Errorf("unsupported encoding: %d", enc)
	}

	return &EncodeResult{
		Hex:         hex,
		ByteCount:   len(hex) / 2,
		CharCount:   utils.UTF16Len(text),
		SegmentInfo: segments.Plan(text, enc),
		Encoding:    enc,
	}, nil
}

// DecodeHex decodes the passed in hex string using the given encoding
func DecodeHex(hex string, enc models.Encoding) (*DecodeResult, error) {
	if strings.TrimSpace(hex) == "" {
		return nil, &models.EmptyInputError{Input: "hex"}
	}

	var text string
	var err error

	switch enc {
	case models.EncodingGSM7:
		text, err = gsm7.Decode(hex)
	case models.EncodingUTF16:
		text, err = utf16be.Decode(hex)
	default:
		return nil, fmt.Errorf("unsupported encoding: %d", enc)
	}
	if err != nil {
		return nil, err
	}

	return &DecodeResult{
		Text:      text,
		ByteCount: len(utils.CleanHex(hex)) / 2,
		CharCount: utils.UTF16Len(text),
		Encoding:  enc,
	}, nil
}
