package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/staylog/internal/auth"
	"github.com/pkordes/staylog/internal/domain"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss := auth.NewIssuer("s3cret", time.Hour)

	token, err := iss.Issue("traveller-1")
	require.NoError(t, err)

	userID, err := iss.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "traveller-1", userID)
}

func TestIssuer_Issue_RequiresUser(t *testing.T) {
	_, err := auth.NewIssuer("s3cret", time.Hour).Issue("  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIssuer_Parse_WrongSecret(t *testing.T) {
	token, err := auth.NewIssuer("one", time.Hour).Issue("traveller-1")
	require.NoError(t, err)

	_, err = auth.NewIssuer("two", time.Hour).Parse(token)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestIssuer_Parse_Expired(t *testing.T) {
	claims := auth.Claims{StandardClaims: jwt.StandardClaims{
		Subject:   "traveller-1",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = auth.NewIssuer("s3cret", time.Hour).Parse(token)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestIssuer_Parse_RejectsUnsignedToken(t *testing.T) {
	claims := auth.Claims{StandardClaims: jwt.StandardClaims{Subject: "traveller-1"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.NewIssuer("s3cret", time.Hour).Parse(token)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestIssuer_Parse_Garbage(t *testing.T) {
	_, err := auth.NewIssuer("s3cret", time.Hour).Parse("not.a.token")

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestUserID_Context(t *testing.T) {
	assert.Equal(t, "", auth.UserID(context.Background()))

	ctx := auth.WithUserID(context.Background(), "traveller-1")

	assert.Equal(t, "traveller-1", auth.UserID(ctx))
}
