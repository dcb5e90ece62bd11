package service

import (
	"context"

	"github.com/MKhiriev/go-contact-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ImageService decides which image URL is stored for a record.
type ImageService interface {
	// Resolve returns candidate when it answers a GET with status 200 and
	// the fallback image URL otherwise. It never fails.
	Resolve(ctx context.Context, candidate string) string
}

type AuthService interface {
	Register(ctx context.Context, input models.RegistrationInput) (models.User, error)
	Login(ctx context.Context, input models.LoginInput) (models.User, error)
	CreateSession(ctx context.Context, user models.User) (models.Session, error)
	ParseSession(ctx context.Context, token string) (models.Session, error)
	// Logout revokes every session of the user. Unknown users are ignored.
	Logout(ctx context.Context, userID int64) error
}

type ContactService interface {
	Create(ctx context.Context, input models.ContactInput) (models.Contact, error)
	Get(ctx context.Context, contactID int64) (models.Contact, error)
	List(ctx context.Context) ([]models.Contact, error)
	// Update validates input before touching storage, then overwrites the
	// contact and re-resolves its image.
	Update(ctx context.Context, contactID int64, input models.ContactInput) (models.Contact, error)
	Delete(ctx context.Context, contactID int64) error
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, userID int64) (models.User, error)
	Delete(ctx context.Context, userID int64) error
}

type BookmarkService interface {
	Create(ctx context.Context, input models.BookmarkInput) (models.Bookmark, error)
	List(ctx context.Context) ([]models.Bookmark, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
