// internal/middleware/user_context.go
package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const UserIDContextKey contextKey = "user_id"

// GetUserIDFromContext returns the authenticated user's id, if any.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	if val := ctx.Value(UserIDContextKey); val != nil {
		if id, ok := val.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}

// AddUserIDToContext extracts user_id from a verified JWT and stores it in
// the request context. Requests without a token pass through untouched.
func AddUserIDToContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, _ := jwtauth.FromContext(r.Context())
			if claims == nil {
				next.ServeHTTP(w, r)
				return
			}

			if id, ok := claims["user_id"].(string); ok && id != "" {
				ctx := context.WithValue(r.Context(), UserIDContextKey, id)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
