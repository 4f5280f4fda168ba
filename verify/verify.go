// Package verify builds the payloads the external verification API expects for a message, one
// per segment when the message is sent as multipart.
package verify

import (
	"errors"
	"fmt"

	"github.com/nyaruka/gocommon/i18n"
	"github.com/nyaruka/gocommon/random"
	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/gsm7"
	"github.com/nyaruka/smscodec/segments"
	"github.com/nyaruka/smscodec/utf16be"
	"github.com/nyaruka/smscodec/utils"
)

// max value (exclusive) of the reference number shared by the parts of a multipart message
const maxRefNum = 65535

// Request is a single verification request
type Request struct {
	AuthCode              string        `json:"authcode" validate:"required"`
	SenderID              string        `json:"senderid" validate:"required"`
	PEID                  string        `json:"pe_id" validate:"required"`
	Number                string        `json:"number" validate:"required"`
	ContentID             string        `json:"content_id" validate:"required"`
	MessageHex            string        `json:"message_hex" validate:"required,hexadecimal"`
	EncodingType          string        `json:"encoding_type" validate:"required,oneof=0 8"`
	MessageRefNum         *int          `json:"message_ref_num,omitempty"`
	TotalSegments         int           `json:"total_segments,omitempty"`
	SegmentSeqNum         int           `json:"segment_seqnum,omitempty"`
	OriginalMessageLength int           `json:"original_message_length,omitempty"`
	MessageLanguage       i18n.Language `json:"message_language,omitempty"`
}

// Validate checks the request has all required fields, including the multipart fields when it
// is part of a multipart message
func (r *Request) Validate() error {
	if err := utils.Validate(r); err != nil {
		return err
	}

	if r.TotalSegments > 1 {
		if r.MessageRefNum == nil {
			return errors.New("message_ref_num is required for multipart messages")
		}
		if r.SegmentSeqNum < 1 || r.SegmentSeqNum > r.TotalSegments {
			return errors.New("segment_seqnum is required for multipart messages")
		}
	}
	return nil
}

// Options are what a message is prepared from
type Options struct {
	Text         string          `json:"text" validate:"required"`
	Encoding     models.Encoding `json:"encoding" validate:"required"`
	AuthCode     string          `json:"authcode" validate:"required"`
	SenderID     string          `json:"senderid" validate:"required"`
	PEID         string          `json:"pe_id" validate:"required"`
	Number       string          `json:"number" validate:"required"`
	ContentID    string          `json:"content_id" validate:"required"`
	UseMultipart bool            `json:"use_multipart"`
	Language     i18n.Language   `json:"language"`
}

// Prepare builds the verification requests for a message. A message that fits in a single
// message, or for which multipart isn't requested, gives a single request. Otherwise there is one
// request per segment, all sharing a random reference number.
func Prepare(opts *Options) ([]*Request, error) {
	if err := utils.Validate(opts); err != nil {
		return nil, err
	}

	base := Request{
		AuthCode:        opts.AuthCode,
		SenderID:        opts.SenderID,
		PEID:            opts.PEID,
		Number:          opts.Number,
		ContentID:       opts.ContentID,
		EncodingType:    opts.Encoding.Code(),
		MessageLanguage: opts.Language,
	}

	info := segments.Plan(opts.Text, opts.Encoding)

	if info.Count <= 1 || !opts.UseMultipart {
		hex, err := encode(opts.Text, opts.Encoding)
		if err != nil {
			return nil, err
		}

		single := base
		single.MessageHex = hex
		return []*Request{&single}, nil
	}

	refNum := random.IntN(maxRefNum)
	segs := segments.Split(opts.Text, opts.Encoding)
	requests := make([]*Request, len(segs))

	for i, seg := range segs {
		hex, err := encode(seg.Text, opts.Encoding)
		if err != nil {
			return nil, fmt.Errorf("error encoding segment %d: %w", seg.Index, err)
		}

		req := base
		req.MessageHex = hex
		req.MessageRefNum = &refNum
		req.TotalSegments = seg.Total
		req.SegmentSeqNum = seg.Index
		req.OriginalMessageLength = info.TotalChars
		requests[i] = &req
	}
	return requests, nil
}

func encode(text string, enc models.Encoding) (string, error) {
	if enc == models.EncodingUTF16 {
		return utf16be.Encode(text), nil
	}
	return gsm7.Encode(text)
}
