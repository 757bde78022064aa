package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/churn/api/internal/core/ports"
)

type contextKey string

// UsernameKey holds the token subject of the authenticated request.
const UsernameKey contextKey = "username"

// BearerAuth verifies the Authorization header against the token service
// and puts the token subject in the request context. Any missing, expired
// or malformed token is rejected with 401.
func BearerAuth(tokens ports.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				writeError(w, http.StatusUnauthorized, "authorization header must use the Bearer scheme")
				return
			}

			subject, err := tokens.Verify(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
