package request

import (
	"net/http"

	"librarian/pkg/platform/validation"
)

// BodyLimit caps request bodies at maxBytes; zero or negative falls back to
// validation.MaxBodySize. Reads past the cap fail with *http.MaxBytesError,
// which the JSON decoder reports as 413.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = validation.MaxBodySize
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
