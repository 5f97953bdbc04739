package middleware

import "net/http"

// Methods whose bodies get capped. Everything else on this API carries
// no request body worth limiting.
var bodyLimitedMethods = map[string]bool{
	http.MethodPost:  true,
	http.MethodPut:   true,
	http.MethodPatch: true,
}

// BodyLimit caps the request body for mutating methods. A read past
// the cap makes the JSON decoder fail, which handlers report as an
// invalid_payload error. A non-positive cap disables the middleware.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if maxBytes <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if bodyLimitedMethods[r.Method] {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
