package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-book/models"
)

var (
	contactColumns  = []string{"id", "name", "email", "number", "image", "created_at"}
	userColumns     = []string{"id", "username", "email", "password_hash", "image", "created_at", "session_version"}
	bookmarkColumns = []string{"id", "name", "url", "description", "created_at"}
)

// contacts

func buildInsertContactQuery(b sq.StatementBuilderType, contact models.Contact) (string, []any, error) {
	return b.Insert(models.Contact{}.TableName()).
		Columns("name", "email", "number", "image", "created_at").
		Values(contact.Name, contact.Email, contact.Number, contact.Image, contact.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectContactQuery(b sq.StatementBuilderType, contactID int64) (string, []any, error) {
	return b.Select(contactColumns...).
		From(models.Contact{}.TableName()).
		Where(sq.Eq{"id": contactID}).
		ToSql()
}

func buildSelectContactsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(contactColumns...).
		From(models.Contact{}.TableName()).
		OrderBy("name", "id").
		ToSql()
}

func buildUpdateContactQuery(b sq.StatementBuilderType, contact models.Contact) (string, []any, error) {
	return b.Update(models.Contact{}.TableName()).
		Set("name", contact.Name).
		Set("email", contact.Email).
		Set("number", contact.Number).
		Set("image", contact.Image).
		Where(sq.Eq{"id": contact.ContactID}).
		ToSql()
}

func buildDeleteContactQuery(b sq.StatementBuilderType, contactID int64) (string, []any, error) {
	return b.Delete(models.Contact{}.TableName()).
		Where(sq.Eq{"id": contactID}).
		ToSql()
}

// users

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("username", "email", "password_hash", "image", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.Image, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildSelectUserQuery selects the single user matching every key in where.
func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("username", "id").
		ToSql()
}

func buildBumpSessionVersionQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("session_version", sq.Expr("session_version + 1")).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// bookmarks

func buildInsertBookmarkQuery(b sq.StatementBuilderType, bookmark models.Bookmark) (string, []any, error) {
	return b.Insert(models.Bookmark{}.TableName()).
		Columns("name", "url", "description", "created_at").
		Values(bookmark.Name, bookmark.URL, bookmark.Description, bookmark.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectBookmarksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(bookmarkColumns...).
		From(models.Bookmark{}.TableName()).
		OrderBy("created_at", "id").
		ToSql()
}

// now is the creation timestamp stamped on inserted rows.
var now = func() time.Time {
	return time.Now().UTC()
}
