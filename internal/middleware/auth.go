package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/staylog/internal/auth"
)

// TokenParser resolves a bearer token to a user ID.
type TokenParser interface {
	Parse(token string) (string, error)
}

// NewAuthHandler returns a middleware that resolves the Authorization header
// to a user ID stored in the request context. A request without the header
// proceeds anonymously; a malformed or invalid token is rejected with 401.
func NewAuthHandler(p TokenParser, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				unauthorized(w, "authorization header must be a bearer token")
				return
			}
			userID, err := p.Parse(strings.TrimSpace(token))
			if err != nil {
				logger.Debug("rejected token", "error", err, "path", r.URL.Path)
				unauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": "unauthenticated", "message": msg},
	})
}
