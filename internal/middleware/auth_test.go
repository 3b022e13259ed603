package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/staylog/internal/auth"
	"github.com/pkordes/staylog/internal/middleware"
)

type stubParser map[string]string

func (p stubParser) Parse(token string) (string, error) {
	if id, ok := p[token]; ok {
		return id, nil
	}
	return "", errors.New("bad token")
}

func whoAmI() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, auth.UserID(r.Context()))
	})
}

func serveAuth(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	h := middleware.NewAuthHandler(stubParser{"good": "traveller-1"}, logger)(whoAmI())

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_NoHeaderIsAnonymous(t *testing.T) {
	rec := serveAuth(t, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuthHandler_ValidTokenSetsUser(t *testing.T) {
	rec := serveAuth(t, "Bearer good")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "traveller-1", rec.Body.String())
}

func TestAuthHandler_InvalidTokenIs401(t *testing.T) {
	rec := serveAuth(t, "Bearer forged")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"unauthenticated","message":"invalid or expired token"}}`, rec.Body.String())
}

func TestAuthHandler_NonBearerSchemeIs401(t *testing.T) {
	rec := serveAuth(t, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
