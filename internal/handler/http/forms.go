package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func parseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return nil
}

func contactInputFromForm(r *http.Request) (models.ContactInput, error) {
	if err := parseForm(r); err != nil {
		return models.ContactInput{}, err
	}
	return models.ContactInput{
		Name:   strings.TrimSpace(r.PostFormValue(validators.FieldName)),
		Email:  strings.TrimSpace(r.PostFormValue(validators.FieldEmail)),
		Number: strings.TrimSpace(r.PostFormValue(validators.FieldNumber)),
		Image:  strings.TrimSpace(r.PostFormValue(validators.FieldImage)),
	}, nil
}

func registrationInputFromForm(r *http.Request) (models.RegistrationInput, error) {
	if err := parseForm(r); err != nil {
		return models.RegistrationInput{}, err
	}
	return models.RegistrationInput{
		Username:        strings.TrimSpace(r.PostFormValue(validators.FieldUsername)),
		Email:           strings.TrimSpace(r.PostFormValue(validators.FieldEmail)),
		Password:        r.PostFormValue(validators.FieldPassword),
		ConfirmPassword: r.PostFormValue(validators.FieldConfirmPassword),
		Image:           strings.TrimSpace(r.PostFormValue(validators.FieldImage)),
	}, nil
}

func loginInputFromForm(r *http.Request) (models.LoginInput, error) {
	if err := parseForm(r); err != nil {
		return models.LoginInput{}, err
	}
	return models.LoginInput{
		Username: strings.TrimSpace(r.PostFormValue(validators.FieldUsername)),
		Password: r.PostFormValue(validators.FieldPassword),
	}, nil
}

func bookmarkInputFromForm(r *http.Request) (models.BookmarkInput, error) {
	if err := parseForm(r); err != nil {
		return models.BookmarkInput{}, err
	}
	return models.BookmarkInput{
		Name:        strings.TrimSpace(r.PostFormValue(validators.FieldName)),
		URL:         strings.TrimSpace(r.PostFormValue(validators.FieldURL)),
		Description: strings.TrimSpace(r.PostFormValue(validators.FieldDescription)),
	}, nil
}

// errorNotices turns a validation or authentication failure into the
// messages shown above the form.
func errorNotices(err error) []flashNotice {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		notices := make([]flashNotice, 0, len(validationErr.Fields))
		for _, message := range validationErr.Messages() {
			notices = append(notices, flashNotice{Kind: flashError, Message: message})
		}
		return notices
	}

	var authErr *service.AuthError
	if errors.As(err, &authErr) {
		return []flashNotice{{Kind: flashError, Message: authErr.Error()}}
	}

	return []flashNotice{{Kind: flashError, Message: "Invalid data provided"}}
}

// safeNext keeps only local absolute paths so that the login form cannot be
// used as an open redirect.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
