// Package identity resolves the acting user for identity-scoped routes.
//
// Token issuance belongs to the external auth provider; this package only
// verifies the bearer token it issued (HS256, shared secret) and exposes the
// verified subject to handlers. Routes behind the middleware can rely on
// CurrentUserID returning a non-empty ID.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/pitwall/internal/app/system/jsonutil"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type ctxKey struct{}

// Verifier validates bearer tokens and binds the verified subject to the
// request context.
type Verifier struct {
	secret []byte
	log    *zap.Logger
}

// NewVerifier creates a Verifier for the shared signing secret.
// The secret must match the one the external auth provider signs with.
func NewVerifier(secret string, logger *zap.Logger) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("identity: signing secret is required")
	}
	return &Verifier{secret: []byte(secret), log: logger}, nil
}

// Middleware rejects requests without a valid bearer token (401 JSON) and
// otherwise stores the token subject in the request context.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := v.subjectFromRequest(r)
		if err != nil {
			v.log.Debug("identity: rejected request", zap.Error(err))
			jsonutil.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, userID)))
	})
}

func (v *Verifier) subjectFromRequest(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "Bearer "
	if !strings.HasPrefix(raw, prefix) {
		return "", errors.New("missing bearer token")
	}

	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw[len(prefix):]), &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return v.secret, nil
		})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// CurrentUserID returns the verified user ID for the request, if any.
func CurrentUserID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// WithTestUser returns a copy of r carrying the given user ID, bypassing
// token verification. For handler tests only.
func WithTestUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, userID))
}
