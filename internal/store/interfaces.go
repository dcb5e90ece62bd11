package store

import (
	"context"

	"github.com/MKhiriev/go-contact-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContactRepository persists [models.Contact] records.
type ContactRepository interface {
	// CreateContact inserts contact and returns it with ContactID and
	// CreatedAt populated.
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	// GetContact returns the contact with the given id or [ErrNotFound].
	GetContact(ctx context.Context, contactID int64) (models.Contact, error)
	// ListContacts returns every contact ordered by name.
	ListContacts(ctx context.Context) ([]models.Contact, error)
	// UpdateContact overwrites name, email, number and image of an existing
	// contact. CreatedAt is never changed.
	UpdateContact(ctx context.Context, contact models.Contact) error
	// DeleteContact removes the contact or returns [ErrNotFound].
	DeleteContact(ctx context.Context, contactID int64) error
}

// UserRepository persists [models.User] records.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// ListUsers returns every user ordered by username.
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	// BumpSessionVersion invalidates every session issued to the user so
	// far. Returns [ErrNotFound] for an unknown user.
	BumpSessionVersion(ctx context.Context, userID int64) error
}

// BookmarkRepository persists [models.Bookmark] records.
type BookmarkRepository interface {
	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	// ListBookmarks returns every bookmark ordered by creation time.
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)
}
