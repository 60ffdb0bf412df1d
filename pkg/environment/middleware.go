package environment

import "net/http"

// Middleware stamps env on every request context so handlers can switch
// behaviour, e.g. showing delivery error details only in development.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), env)))
		})
	}
}
