package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
)

// Encoding is the transport encoding of an SMS
type Encoding uint8

// Possible values for Encoding, the zero value means unset
const (
	EncodingGSM7 Encoding = iota + 1
	EncodingUTF16
)

// per segment character budgets, single messages have no UDH so get a bigger budget
const (
	GSM7SingleBudget     = 160
	GSM7MultipartBudget  = 153
	UTF16SingleBudget    = 70
	UTF16MultipartBudget = 67
)

// ParseEncoding parses an encoding from one of its names or its data coding value
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gsm7", "gsm-7", "gsm", "0":
		return EncodingGSM7, nil
	case "utf16", "utf-16", "ucs2", "ucs-2", "8":
		return EncodingUTF16, nil
	}
	return 0, fmt.Errorf("unknown encoding '%s'", s)
}

// IsValid returns whether this is one of our known encodings
func (e Encoding) IsValid() bool {
	return e == EncodingGSM7 || e == EncodingUTF16
}

// DataCoding returns the SMPP data_coding value for this encoding
func (e Encoding) DataCoding() pdutext.DataCoding {
	if e == EncodingUTF16 {
		return pdutext.UCS2Type
	}
	return pdutext.DefaultType
}

// Code returns the data coding as the string used by verification payloads, "0" or "8"
func (e Encoding) Code() string {
	return strconv.Itoa(int(e.DataCoding()))
}

// SingleBudget returns the number of characters that fit in a single message
func (e Encoding) SingleBudget() int {
	if e == EncodingUTF16 {
		return UTF16SingleBudget
	}
	return GSM7SingleBudget
}

// MultipartBudget returns the number of characters that fit in each part of a multipart message
func (e Encoding) MultipartBudget() int {
	if e == EncodingUTF16 {
		return UTF16MultipartBudget
	}
	return GSM7MultipartBudget
}

func (e Encoding) String() string {
	switch e {
	case EncodingGSM7:
		return "gsm7"
	case EncodingUTF16:
		return "utf16"
	}
	return ""
}

// MarshalText marshals this encoding as its name
func (e Encoding) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, fmt.Errorf("invalid encoding %d", e)
	}
	return []byte(e.String()), nil
}

// UnmarshalText unmarshals an encoding from its name, an empty value leaves it unset
func (e *Encoding) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*e = 0
		return nil
	}
	parsed, err := ParseEncoding(string(b))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
