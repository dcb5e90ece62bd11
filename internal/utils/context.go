// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context keys, HMAC signing,
// password hashing, HTTP response writing, the outbound HTTP client,
// session token generation and validation, and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// A dedicated type prevents key collisions with other packages that
// may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the request context. The session middleware writes it, handlers read
// it back with GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under UserIDCtxKey.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// ok is false when the value is missing or has an unexpected type, which
// means the request did not pass through the session middleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
