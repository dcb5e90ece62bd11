package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/migrations"
)

// Driver names registered with database/sql.
const (
	driverPgx    = "pgx"
	driverSQLite = "sqlite3"
)

// ErrorClassificator inspects driver errors so repositories can translate
// them into store sentinels without importing driver packages.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	// Constraint returns the name of the violated unique constraint or
	// column, or "" when err is not a unique violation.
	Constraint(err error) string
}

// DB wraps a *sql.DB with the dialect-specific pieces shared by all
// repositories: the squirrel statement builder and the error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == driverPgx {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name backing db.
func (db *DB) Driver() string {
	return db.driver
}

// userConflict maps a unique violation on the users table to
// ErrUsernameAlreadyExists or ErrEmailAlreadyExists. It returns nil when err
// is not such a violation.
func (db *DB) userConflict(err error) error {
	if db.errorClassificator == nil || db.errorClassificator.Classify(err) != UniqueViolation {
		return nil
	}

	constraint := strings.ToLower(db.errorClassificator.Constraint(err))
	switch {
	case strings.Contains(constraint, "username"):
		return ErrUsernameAlreadyExists
	case strings.Contains(constraint, "email"):
		return ErrEmailAlreadyExists
	}

	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// execAffectingOne runs a DML statement keyed by primary key and returns
// ErrNotFound when no row was touched.
func (db *DB) execAffectingOne(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
