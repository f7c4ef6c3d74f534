package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/worksite/onsite_backend/internal/pkg/response"
)

// SupervisorTokenHeader carries the shared supervisor secret. This scheme is
// deliberately independent of the per-user bearer tokens; the two never
// compose.
const SupervisorTokenHeader = "X-Supervisor-Token"

// SupervisorOnly gates site-wide read and bulk-close routes behind the
// configured shared secret. An empty server-side secret is a
// misconfiguration and answers 500, never open access.
func SupervisorOnly(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				response.RespondWithError(w, http.StatusInternalServerError, "Supervisor token not configured")
				return
			}

			token := r.Header.Get(SupervisorTokenHeader)
			if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				response.RespondWithError(w, http.StatusUnauthorized, "Invalid supervisor token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
