package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"woonlasten/internal/domain/auth"
	"woonlasten/internal/requestctx"
	"woonlasten/internal/transport/http/api"
)

// Auth attaches the bearer token's caller to the request context. A missing or invalid
// token is ignored unless required is set, in which case the request is refused.
func Auth(secret string, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				if required {
					api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				if required {
					slog.Warn("token rejected", "path", r.URL.Path, "err", err, "requestId", GetRequestID(r.Context()))
					api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid token", GetRequestID(r.Context()))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := requestctx.WithCaller(r.Context(), claims.Caller())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func GetCaller(ctx context.Context) (auth.Caller, bool) {
	return requestctx.GetCaller(ctx)
}
