package smscodec

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/nyaruka/gocommon/jsonx"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.SetAliasTag("json")
	return d
}

// decodeRequest decodes the body of the passed in request into the passed in form. JSON bodies
// are unmarshalled and anything else is treated as form values.
func decodeRequest(w http.ResponseWriter, r *http.Request, form any, maxBodyBytes int64) error {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if contentType == "application/json" {
		body, err := io.ReadAll(r.Body)
		defer r.Body.Close()
		if err != nil {
			return fmt.Errorf("unable to read request body: %w", err)
		}

		if err := jsonx.Unmarshal(body, form); err != nil {
			return fmt.Errorf("unable to parse request JSON: %w", err)
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("unable to parse request form: %w", err)
	}

	if err := decoder.Decode(form, r.PostForm); err != nil {
		return fmt.Errorf("unable to decode request form: %w", err)
	}
	return nil
}
