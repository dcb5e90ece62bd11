package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "go-contact-book"
	testSignKey = "secret"
)

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", duration: time.Hour, key: testSignKey},
		{name: "zero duration", issuer: testIssuer, key: testSignKey},
		{name: "empty key", issuer: testIssuer, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, 1, 0, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestSessionToken_RoundTrip(t *testing.T) {
	session, err := GenerateSessionToken(testIssuer, 42, 3, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, session.SignedString)
	assert.Equal(t, int64(42), session.UserID)
	assert.Equal(t, session.SignedString, session.String())

	parsed, err := ValidateAndParseSessionToken(session.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, int64(3), parsed.Version)

	id, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestValidateAndParseSessionToken_Rejects(t *testing.T) {
	valid, err := GenerateSessionToken(testIssuer, 7, 0, time.Hour, testSignKey)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredString, err := expired.SignedString([]byte(testSignKey))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	noSubjectString, err := noSubject.SignedString([]byte(testSignKey))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "garbage", token: "not-a-jwt", key: testSignKey, issuer: testIssuer},
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: testIssuer},
		{name: "wrong issuer", token: valid.SignedString, key: testSignKey, issuer: "someone-else"},
		{name: "expired", token: expiredString, key: testSignKey, issuer: testIssuer},
		{name: "empty subject", token: noSubjectString, key: testSignKey, issuer: testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseSessionToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}
