package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenInfo holds the claims a bearer token carries about itself. The token
// is treated as opaque everywhere else; this inspection exists only for
// display (whoami) and is never used to grant access.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past. Tokens
// without an exp claim never report expired.
func (i TokenInfo) Expired() bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(time.Now())
}

// InspectToken parses the token without verifying its signature and extracts
// the subject and expiry claims. Opaque (non-JWT) tokens return an error and
// the caller degrades to showing nothing.
func InspectToken(raw string) (TokenInfo, error) {
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return TokenInfo{}, errors.Wrap(err, "[InspectToken] ParseUnverified")
	}

	var info TokenInfo
	if subject, err := token.Claims.GetSubject(); err == nil {
		info.Subject = subject
	}
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
