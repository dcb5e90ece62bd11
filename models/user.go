package models

import "time"

// User represents a registered account.
// It carries the identity attributes shown on the users page and the
// bcrypt-derived password hash used during login.
type User struct {
	// UserID is the generated unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Plaintext passwords are never stored and never leave the service layer.
	PasswordHash string `json:"-"`

	// Image is the avatar URL. It always holds either a URL that answered
	// 200 OK at registration time or the fallback placeholder.
	Image string `json:"image"`

	// CreatedAt is set by the store when the user is inserted.
	CreatedAt time.Time `json:"created_at"`

	// SessionVersion is embedded in every session issued to the user.
	// Logging out increments it, which invalidates all earlier sessions.
	SessionVersion int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
