// Package auth issues and verifies the bearer tokens that identify a user.
// Tokens are HS256 JWTs whose subject is the user ID.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/pkordes/staylog/internal/domain"
)

// Claims is the JWT payload. Subject carries the user ID.
type Claims struct {
	jwt.StandardClaims
}

// Issuer signs and verifies tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer returns an Issuer. A non-positive ttl issues tokens that never
// expire.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for userID.
func (i *Issuer) Issue(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("auth.Issuer.Issue: %w: user id is required", domain.ErrValidation)
	}
	now := i.now()
	claims := Claims{StandardClaims: jwt.StandardClaims{
		Subject:  userID,
		IssuedAt: now.Unix(),
		Issuer:   "staylog",
	}}
	if i.ttl > 0 {
		claims.ExpiresAt = now.Add(i.ttl).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth.Issuer.Issue: %w", err)
	}
	return token, nil
}

// Parse verifies token and returns its user ID. Any failure, including an
// expired token or a foreign signing method, is domain.ErrUnauthenticated.
func (i *Issuer) Parse(token string) (string, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("auth.Issuer.Parse: %w: %v", domain.ErrUnauthenticated, err)
	}
	if !t.Valid || claims.Subject == "" {
		return "", fmt.Errorf("auth.Issuer.Parse: %w: token has no subject", domain.ErrUnauthenticated)
	}
	return claims.Subject, nil
}

type ctxKey struct{}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserID returns the user carried by ctx, or "" for an anonymous request.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
