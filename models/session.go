package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the client-side view of an authenticated session. The identity
// provider issues an opaque idToken; the client never verifies it (the remote
// APIs do), but when the token happens to be a parseable JWT the expiry and
// subject claims are extracted for display purposes only. Expiry is never
// enforced by this layer.
type Session struct {
	// Token is the opaque idToken issued by the identity provider. This is
	// the only value persisted locally.
	Token string

	// Email is the account email the session was opened for.
	Email string

	// LocalID is the provider-side user identifier.
	LocalID string

	// ExpiresAt is the token expiry parsed from the JWT "exp" claim.
	// Zero when the token is not a parseable JWT.
	ExpiresAt time.Time
}

// NewSession builds a Session from a provider response, filling ExpiresAt and
// a missing LocalID from the token claims when possible. Claim parsing is
// best-effort: a token that is not a JWT produces a session with zero expiry.
func NewSession(token, email, localID string) Session {
	s := Session{Token: token, Email: email, LocalID: localID}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return s
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return s
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	if s.LocalID == "" {
		if sub, err := claims.GetSubject(); err == nil {
			s.LocalID = sub
		}
	}

	return s
}

// String implements fmt.Stringer, returning the opaque token.
func (s Session) String() string {
	return s.Token
}
