package httpapi

import (
	"context"
	"net/http"
	"strings"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/ports/output"
)

type contextKey string

const userIDKey contextKey = "userID"

// userID returns the authenticated identity id from the request context,
// empty when the request carried no valid session.
func userID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// withSession resolves an optional bearer token into the request context.
// Invalid tokens are treated as anonymous; handlers that need a user enforce
// it via requireAuth.
func withSession(provider output.IdentityProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if id, err := provider.VerifyToken(token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if userID(r) == "" {
			writeDomainError(w, domain.ErrAuthRequired)
			return
		}
		next(w, r)
	}
}
