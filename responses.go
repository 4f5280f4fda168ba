package smscodec

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nyaruka/gocommon/jsonx"
	"github.com/nyaruka/smscodec/core/models"
	validator "gopkg.in/go-playground/validator.v9"
)

// error kinds included in error responses so clients can tell them apart without parsing text
const (
	errorKindUnsupportedCharacter = "unsupported_character"
	errorKindInvalidHex           = "invalid_hex"
	errorKindInvalidLength        = "invalid_length"
	errorKindEmptyInput           = "empty_input"
	errorKindValidation           = "validation"
	errorKindInvalidRequest       = "invalid_request"
)

type errorResponse struct {
	Errors []string `json:"errors"`
	Kind   string   `json:"kind"`
}

// WriteError writes a 400 JSON response for the passed in error
func WriteError(w http.ResponseWriter, r *http.Request, err error) error {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		msgs := make([]string, len(vErrs))
		for i := range vErrs {
			msgs[i] = fmt.Sprintf("field '%s' %s", strings.ToLower(vErrs[i].Field()), vErrs[i].Tag())
		}
		return writeErrorMessages(w, http.StatusBadRequest, errorKindValidation, msgs...)
	}

	kind := errorKind(err)
	if kind == errorKindInvalidRequest {
		slog.Error("error handling request", "comp", "server", "url", r.URL.String(), "error", err)
	}

	return writeErrorMessages(w, http.StatusBadRequest, kind, err.Error())
}

func errorKind(err error) string {
	var unsupported *models.UnsupportedCharacterError
	var invalidHex *models.InvalidHexError
	var invalidLength *models.InvalidLengthError
	var empty *models.EmptyInputError

	switch {
	case errors.As(err, &unsupported):
		return errorKindUnsupportedCharacter
	case errors.As(err, &invalidHex):
		return errorKindInvalidHex
	case errors.As(err, &invalidLength):
		return errorKindInvalidLength
	case errors.As(err, &empty):
		return errorKindEmptyInput
	}
	return errorKindInvalidRequest
}

func writeErrorMessages(w http.ResponseWriter, statusCode int, kind string, msgs ...string) error {
	return writeJSONResponse(w, statusCode, &errorResponse{Errors: msgs, Kind: kind})
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, response any) error {
	body, err := jsonx.Marshal(response)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(body)
	return err
}
