package middleware

import (
	"net/http"

	"woonlasten/internal/transport/http/api"
)

// RequireScope refuses callers whose token lacks scope. With enforce unset it is a no-op,
// which is how the API runs when authentication is optional.
func RequireScope(scope string, enforce bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enforce {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := GetCaller(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if !caller.HasScope(scope) {
				api.Fail(w, http.StatusForbidden, "forbidden", "insufficient scope", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
