package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms.
const DefaultMaxMemory = 1 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies into fields tagged `form:"name"`. Untagged fields and `form:"-"`
// are skipped. Supported field types are the basic scalar kinds, pointers
// to them, and slices for multi-value fields.
func Form() Func {
	return func(r *http.Request, v any) error {
		var values map[string][]string

		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value
		default:
			return ErrBinderNotApplicable
		}

		if err := bindToStruct(v, "form", values, ErrInvalidForm); err != nil {
			return err
		}
		sanitizeStrings(v)
		return nil
	}
}
