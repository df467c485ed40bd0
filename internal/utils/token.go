package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewSessionToken returns an opaque, cryptographically random session token.
// 32 bytes of entropy encoded as URL-safe base64; the value carries no user
// data and is only meaningful as a key into the sessions table.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// NewServiceToken builds and signs a short-lived HS256 JWT used by internal
// callers (the web tier) to authenticate against the API tier.  The token
// carries only an issuer claim plus the standard timestamps; it identifies
// the calling service, not an end user.
func NewServiceToken(secret, issuer string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"iss": issuer,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseServiceToken validates a service token and returns the issuer claim.
// Tokens signed with any method other than HMAC are rejected.
func ParseServiceToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !tok.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	iss, _ := claims["iss"].(string)
	return iss, nil
}
