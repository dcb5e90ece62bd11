package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

type contactService struct {
	contactRepository store.ContactRepository
	imageService      ImageService
	validator         validators.Validator

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, imageService ImageService, validator validators.Validator, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		imageService:      imageService,
		validator:         validator,
		logger:            logger,
	}
}

func (s *contactService) Create(ctx context.Context, input models.ContactInput) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	contact := models.Contact{
		Name:   input.Name,
		Email:  input.Email,
		Number: input.Number,
		Image:  s.imageService.Resolve(ctx, input.Image),
	}

	created, err := s.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Str("func", "*contactService.Create").Msg("error creating contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return created, nil
}

func (s *contactService) Get(ctx context.Context, contactID int64) (models.Contact, error) {
	contact, err := s.contactRepository.GetContact(ctx, contactID)
	if err != nil {
		return models.Contact{}, wrapStoreError(err)
	}
	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepository.ListContacts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactService.List").Msg("error listing contacts")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return contacts, nil
}

func (s *contactService) Update(ctx context.Context, contactID int64, input models.ContactInput) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	contact, err := s.contactRepository.GetContact(ctx, contactID)
	if err != nil {
		return models.Contact{}, wrapStoreError(err)
	}

	contact.Name = input.Name
	contact.Email = input.Email
	contact.Number = input.Number
	contact.Image = s.imageService.Resolve(ctx, input.Image)

	if err = s.contactRepository.UpdateContact(ctx, contact); err != nil {
		log.Err(err).Str("func", "*contactService.Update").Int64("contact_id", contactID).Msg("error updating contact")
		return models.Contact{}, wrapStoreError(err)
	}

	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, contactID int64) error {
	if err := s.contactRepository.DeleteContact(ctx, contactID); err != nil {
		return wrapStoreError(err)
	}
	return nil
}

// wrapStoreError keeps ErrNotFound visible and classifies everything else as
// ErrPersistence.
func wrapStoreError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
