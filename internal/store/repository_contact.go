package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

// contactRepository is the SQL-backed implementation of [ContactRepository].
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact.CreatedAt = now()
	query, args, err := buildInsertContactQuery(r.db.builder, contact)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error building query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&contact.ContactID); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error inserting contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

func (r *contactRepository) GetContact(ctx context.Context, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContactQuery(r.db.builder, contactID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.GetContact").Msg("error building query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var contact models.Contact
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&contact.ContactID, &contact.Name, &contact.Email, &contact.Number, &contact.Image, &contact.CreatedAt)
	if isNoRows(err) {
		return models.Contact{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.GetContact").Int64("contact_id", contactID).Msg("error scanning contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return contact, nil
}

func (r *contactRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContactsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error querying contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err = rows.Scan(&c.ContactID, &c.Name, &c.Email, &c.Number, &c.Image, &c.CreatedAt); err != nil {
			log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactQuery(r.db.builder, contact)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.execAffectingOne(ctx, "*contactRepository.UpdateContact", query, args...)
}

func (r *contactRepository) DeleteContact(ctx context.Context, contactID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteContactQuery(r.db.builder, contactID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.execAffectingOne(ctx, "*contactRepository.DeleteContact", query, args...)
}
