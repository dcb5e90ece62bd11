package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-contact-book/models"
)

// sessionClaims is the signed claim set: the registered claims plus the
// user's session version.
type sessionClaims struct {
	jwt.RegisteredClaims
	Version int64 `json:"ver"`
}

// GenerateSessionToken creates a signed HMAC-SHA256 JWT identifying userID at
// the given session version ("ver" claim).
//
// The token also includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	session, err := utils.GenerateSessionToken("go-contact-book", 42, 0, time.Hour, "secret")
func GenerateSessionToken(issuer string, userID, version int64, tokenDuration time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Version: version,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Session{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		SignedString:     tokenString,
		Version:          version,
		UserID:           userID,
	}, nil
}

// ValidateAndParseSessionToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Example usage:
//
//	session, err := utils.ValidateAndParseSessionToken(cookie.Value, "secret", "go-contact-book")
//	if err != nil {
//	    // treat as anonymous
//	}
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Session, error) {
	session := &models.Session{}
	token, err := jwt.ParseWithClaims(tokenString, session, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Session{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	session.Token = token
	session.SignedString = tokenString
	session.UserID = userID

	return *session, nil
}
