package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component should be merged into the DOM
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch represents a component with its own rendering options
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch creates a TemplPatch for TemplMulti and StreamContext.SendMultiple.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	status  int
	patches []TemplPatch
}

// Render sends each patch over SSE for Datastar, or writes the components
// as one HTML document otherwise.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders a single component.
//
//	return handler.Templ(views.ContactPage(state))
//	return handler.Templ(views.FieldError("email", msg), handler.WithTarget("#email-error"))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplWithStatus renders a component with a non-200 status for plain HTML
// requests. Datastar streams always answer 200.
func TemplWithStatus(status int, component templ.Component) Response {
	return templResponse{status: status, patches: []TemplPatch{Patch(component)}}
}

// TemplMulti renders several components, each with its own target.
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}
