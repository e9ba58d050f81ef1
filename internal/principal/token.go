// Package principal turns bearer tokens into authenticated principals.
package principal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/and161185/officehub/internal/errs"
	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks HS256 access tokens issued by the identity service.
type Verifier struct {
	key    []byte
	leeway time.Duration
}

// NewVerifier creates a verifier for tokens signed with key.
func NewVerifier(key []byte) *Verifier {
	return &Verifier{key: key, leeway: 30 * time.Second}
}

// Subject validates tok and returns the numeric user id from its sub claim.
func (v *Verifier) Subject(tok string) (int64, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.key, nil
	}, jwt.WithLeeway(v.leeway))
	if err != nil || !parsed.Valid {
		return 0, fmt.Errorf("%w: invalid token", errs.ErrUnauthorized)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject", errs.ErrUnauthorized)
	}
	return id, nil
}

// BearerToken extracts the token from an "Authorization: Bearer x" value.
func BearerToken(header string) (string, bool) {
	v := strings.TrimSpace(header)
	if len(v) < 7 || !strings.EqualFold(v[:7], "bearer ") {
		return "", false
	}
	t := strings.TrimSpace(v[7:])
	return t, t != ""
}
