package service

import (
	"github.com/MKhiriev/go-contact-book/internal/adapter"
	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

type Services struct {
	AuthService     AuthService
	ContactService  ContactService
	UserService     UserService
	BookmarkService BookmarkService
	ImageService    ImageService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, prober adapter.ImageProber, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewFormValidator()
	imageService := NewImageService(prober, cfg.Adapter, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, imageService, validator, cfg.App, logger),
		ContactService:  NewContactService(storages.ContactRepository, imageService, validator, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
		BookmarkService: NewBookmarkService(storages.BookmarkRepository, validator, logger),
		ImageService:    imageService,
		AppInfoService:  appInfoService,
	}, nil
}
