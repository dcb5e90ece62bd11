package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	imageService ImageService
	validator    validators.Validator

	// bcryptCost is the work factor used for new password hashes.
	bcryptCost int

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	sessionIssuer string

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, imageService ImageService, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		imageService:    imageService,
		validator:       validator,
		bcryptCost:      cfg.BcryptCost,
		sessionSignKey:  cfg.SessionSignKey,
		sessionIssuer:   cfg.SessionIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// Register creates a new user account.
//
// The input is validated first (including the password confirmation), so a
// rejected form never reaches storage. An email or username that is already
// taken is reported as a validation error on that field. The password is
// stored only as a bcrypt hash and the image goes through ImageService.
func (a *authService) Register(ctx context.Context, input models.RegistrationInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("registration form rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := a.checkAvailable(ctx, input); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(input.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Image:        a.imageService.Resolve(ctx, input.Image),
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, fieldTaken(validators.FieldEmail, emailTakenMessage)
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.User{}, fieldTaken(validators.FieldUsername, usernameTakenMessage)
	case err != nil:
		log.Err(err).Str("func", "*authService.Register").Str("username", input.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: user creation ended with error: %w", ErrPersistence, err)
	}

	log.Info().Int64("user_id", registered.UserID).Msg("user registered")
	return registered, nil
}

const (
	emailTakenMessage    = "A user with this email already exists"
	usernameTakenMessage = "This username is already taken"
)

func (a *authService) checkAvailable(ctx context.Context, input models.RegistrationInput) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return fieldTaken(validators.FieldEmail, emailTakenMessage)
	case !errors.Is(err, store.ErrNotFound):
		log.Err(err).Str("func", "*authService.checkAvailable").Msg("user search by email failed")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	_, err = a.userRepository.FindUserByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return fieldTaken(validators.FieldUsername, usernameTakenMessage)
	case !errors.Is(err, store.ErrNotFound):
		log.Err(err).Str("func", "*authService.checkAvailable").Msg("user search by username failed")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return nil
}

func fieldTaken(field, message string) error {
	return fmt.Errorf("%w: %w", ErrValidation, &validators.ValidationError{
		Fields: []validators.FieldError{{Field: field, Message: message}},
	})
}

// Login authenticates an existing user by username and password.
//
// Returns the authenticated user record or:
//   - ErrValidation if a field is empty.
//   - ErrUserNotFound if no user has the username.
//   - ErrBadCredentials if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, input models.LoginInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, input.Username)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Str("func", "*authService.Login").Str("username", input.Username).Msg("user does not exist")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.User{}, fmt.Errorf("%w: user search by username failed: %w", ErrPersistence, err)
	}

	if err = utils.CheckPassword(user.PasswordHash, input.Password); err != nil {
		log.Debug().Err(err).Int64("id", user.UserID).Str("username", user.Username).Msg("wrong password")
		return models.User{}, ErrBadCredentials
	}

	return user, nil
}

// CreateSession issues a signed session token for user.
func (a *authService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	session, err := utils.GenerateSessionToken(a.sessionIssuer, user.UserID, user.SessionVersion, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}

// ParseSession validates a raw session token and checks that its user still
// exists and has not logged out since the token was issued. Any failure is
// reported as ErrUnauthenticated.
func (a *authService) ParseSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := utils.ValidateAndParseSessionToken(token, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ParseSession").Msg("invalid session token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := a.userRepository.GetUser(ctx, session.UserID)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", session.UserID).Msg("session user is gone")
		return models.Session{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	if user.SessionVersion != session.Version {
		log.Debug().Int64("user_id", session.UserID).Int64("version", session.Version).Msg("session revoked")
		return models.Session{}, fmt.Errorf("%w: session revoked", ErrUnauthenticated)
	}

	return session, nil
}

// Logout bumps the user's session version, so that a copy of any cookie
// issued before it no longer authenticates.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	err := a.userRepository.BumpSessionVersion(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Int64("user_id", userID).Msg("session revocation failed")
		return fmt.Errorf("%w: session revocation failed: %w", ErrPersistence, err)
	}

	return nil
}
