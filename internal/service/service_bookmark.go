package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewBookmarkService(bookmarkRepository store.BookmarkRepository, validator validators.Validator, logger *logger.Logger) BookmarkService {
	return &bookmarkService{bookmarkRepository: bookmarkRepository, validator: validator, logger: logger}
}

func (s *bookmarkService) Create(ctx context.Context, input models.BookmarkInput) (models.Bookmark, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.bookmarkRepository.CreateBookmark(ctx, models.Bookmark{
		Name:        input.Name,
		URL:         input.URL,
		Description: input.Description,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookmarkService.Create").Msg("error creating bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return created, nil
}

func (s *bookmarkService) List(ctx context.Context) ([]models.Bookmark, error) {
	bookmarks, err := s.bookmarkRepository.ListBookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return bookmarks, nil
}
