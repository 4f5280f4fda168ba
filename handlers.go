package smscodec

import (
	"net/http"

	"github.com/nyaruka/smscodec/advisor"
	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/segments"
	"github.com/nyaruka/smscodec/utils"
	"github.com/nyaruka/smscodec/verify"
)

type encodeForm struct {
	Text     string          `json:"text"`
	Encoding models.Encoding `json:"encoding"`
}

type decodeForm struct {
	Hex      string          `json:"hex"`
	Encoding models.Encoding `json:"encoding"`
}

type analyzeForm struct {
	Text string `json:"text" validate:"required"`
}

type analyzeResponse struct {
	Analysis    *advisor.Analysis         `json:"analysis"`
	Unsupported []advisor.UnsupportedChar `json:"unsupported"`
}

type segmentsForm struct {
	Text     string          `json:"text"`
	Encoding models.Encoding `json:"encoding"`
}

type segmentsResponse struct {
	Info     models.SegmentInfo `json:"info"`
	Segments []models.Segment   `json:"segments"`
}

type prepareResponse struct {
	Requests []*verify.Request `json:"requests"`
}

func (s *server) handleEncode(w http.ResponseWriter, r *http.Request) {
	form := &encodeForm{}
	if err := s.decode(w, r, form); err != nil {
		WriteError(w, r, err)
		return
	}

	result, err := EncodeText(form.Text, s.encodingOrDefault(form.Encoding))
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

func (s *server) handleDecode(w http.ResponseWriter, r *http.Request) {
	form := &decodeForm{}
	if err := s.decode(w, r, form); err != nil {
		WriteError(w, r, err)
		return
	}

	result, err := DecodeHex(form.Hex, s.encodingOrDefault(form.Encoding))
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	form := &analyzeForm{}
	if err := s.decode(w, r, form); err != nil {
		WriteError(w, r, err)
		return
	}
	if err := utils.Validate(form); err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, &analyzeResponse{
		Analysis:    advisor.Analyze(form.Text),
		Unsupported: advisor.FindUnsupported(form.Text),
	})
}

func (s *server) handleSegments(w http.ResponseWriter, r *http.Request) {
	form := &segmentsForm{}
	if err := s.decode(w, r, form); err != nil {
		WriteError(w, r, err)
		return
	}

	enc := s.encodingOrDefault(form.Encoding)

	writeJSONResponse(w, http.StatusOK, &segmentsResponse{
		Info:     segments.Plan(form.Text, enc),
		Segments: segments.Split(form.Text, enc),
	})
}

func (s *server) handlePrepare(w http.ResponseWriter, r *http.Request) {
	opts := &verify.Options{}
	if err := s.decode(w, r, opts); err != nil {
		WriteError(w, r, err)
		return
	}

	opts.Encoding = s.encodingOrDefault(opts.Encoding)

	requests, err := verify.Prepare(opts)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, &prepareResponse{Requests: requests})
}

func (s *server) decode(w http.ResponseWriter, r *http.Request, form any) error {
	return decodeRequest(w, r, form, s.config.MaxBodyBytes)
}

func (s *server) encodingOrDefault(enc models.Encoding) models.Encoding {
	if enc == 0 {
		return s.config.Encoding()
	}
	return enc
}
