package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
)

// Storages bundles every repository backed by one database connection.
type Storages struct {
	ContactRepository  ContactRepository
	UserRepository     UserRepository
	BookmarkRepository BookmarkRepository

	db *DB
}

// NewStorages connects to the database described by cfg, applies the
// embedded migrations and constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	driver := cfg.DB.Driver
	if driver == "" {
		driver = config.DriverFromDSN(cfg.DB.DSN)
	}

	var (
		db  *DB
		err error
	)
	switch driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return &Storages{
		ContactRepository:  NewContactRepository(db, log),
		UserRepository:     NewUserRepository(db, log),
		BookmarkRepository: NewBookmarkRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
