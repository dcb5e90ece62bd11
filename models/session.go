package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Session wraps the signed JWT that binds a browser to one authenticated user.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// The compact form in SignedString is what travels in the session cookie.
type Session struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Version is the user's session version at issue time ("ver" claim).
	Version int64 `json:"ver"`

	// UserID is the authenticated user extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
func (s *Session) GetUserID() (int64, error) {
	userIDString, err := s.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from session: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from session to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the session token.
// It implements the [fmt.Stringer] interface.
func (s *Session) String() string {
	return s.SignedString
}
