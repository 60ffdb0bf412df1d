package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON binds an application/json body. Unknown fields and trailing data are
// rejected; string fields are stripped of control characters. Datastar
// requests also post JSON but are left to Signals.
//
//	type ContactRequest struct {
//		Name  string `json:"name"`
//		Email string `json:"email"`
//	}
func JSON() Func {
	return func(r *http.Request, v any) error {
		if mediaType(r) != "application/json" || r.Header.Get("Datastar-Request") == "true" {
			return ErrBinderNotApplicable
		}
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %w", ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrInvalidJSON, DefaultMaxJSONSize)
		}

		if err := decodeStrict(body, v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}

		sanitizeStrings(v)
		return nil
	}
}

func decodeStrict(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}
