package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals binds the Datastar signal store sent with a Datastar request.
// GET requests carry signals in the "datastar" query parameter; other methods
// send them as a JSON body. Non-Datastar requests are not applicable.
//
//	type ContactSignals struct {
//		Name  string `json:"name"`
//		Email string `json:"email"`
//	}
func Signals() Func {
	return func(r *http.Request, v any) error {
		if r.Header.Get("Datastar-Request") != "true" {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSignals, err)
		}
		sanitizeStrings(v)
		return nil
	}
}
