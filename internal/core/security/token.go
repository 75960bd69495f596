package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer produces signed, time-bound bearer tokens. The signing secret
// and TTL are process-wide configuration fixed at startup; validity is
// solely signature plus expiry, there is no revocation list.
type TokenIssuer struct {
	secret string
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer. A non-positive TTL defaults to 24h.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue signs an HS256 token whose subject is the given identity.
func (i *TokenIssuer) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.secret))
}
