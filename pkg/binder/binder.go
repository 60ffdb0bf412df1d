package binder

import (
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/sanitizer"
)

// Func binds request data into v, which must be a non-nil pointer to a struct.
// A Func returns ErrBinderNotApplicable when the request is not in its format.
type Func func(r *http.Request, v any) error

var cleanString = sanitizer.Compose(sanitizer.RemoveControlChars)

// mediaType returns the lowercased media type without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		if idx := strings.Index(ct, ";"); idx != -1 {
			ct = ct[:idx]
		}
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}

// sanitizeStrings strips control characters, except line breaks and tabs,
// from every settable string reachable from v.
func sanitizeStrings(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	sanitizeValue(rv.Elem())
}

func sanitizeValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(cleanString(rv.String()))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if f := rv.Field(i); f.CanSet() {
				sanitizeValue(f)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			sanitizeValue(rv.Index(i))
		}
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			sanitizeValue(rv.Elem())
		}
	}
}
