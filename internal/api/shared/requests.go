package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps the size of request documents.
const MaxBodyBytes = 1 << 20

// ErrMalformedDocument is returned when a request body is not a single JSON value.
var ErrMalformedDocument = errors.New("malformed JSON document")

// DecodeDocument reads the request body as a JSON document. A well-formed body
// whose top level is not an object decodes to an empty map, so member
// validation reports what is missing.
func DecodeDocument(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedDocument)
	}

	doc, ok := body.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return doc, nil
}
