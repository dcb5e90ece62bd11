package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{userRepository: userRepository, logger: logger}
}

// List returns every registered user ordered by username.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.List").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, wrapStoreError(err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, userID int64) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return wrapStoreError(err)
	}
	logger.FromContext(ctx).Info().Int64("user_id", userID).Msg("user deleted")
	return nil
}
