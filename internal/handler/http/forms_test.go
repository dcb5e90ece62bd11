package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

func requestWithID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/update_contact/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := pathID(requestWithID(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContactInputFromForm_TrimsValues(t *testing.T) {
	req := formRequest(http.MethodPost, "/contacts/", url.Values{
		"name":   {"  Ann "},
		"email":  {" ann@example.com"},
		"number": {"555 "},
		"image":  {" https://img.example.com/a.png "},
	})

	input, err := contactInputFromForm(req)
	require.NoError(t, err)

	assert.Equal(t, models.ContactInput{
		Name:   "Ann",
		Email:  "ann@example.com",
		Number: "555",
		Image:  "https://img.example.com/a.png",
	}, input)
}

func TestRegistrationInputFromForm_KeepsPasswordsVerbatim(t *testing.T) {
	req := formRequest(http.MethodPost, "/add_user/", url.Values{
		"username":         {" ann "},
		"email":            {"ann@example.com"},
		"password":         {" secret "},
		"confirm_password": {" secret "},
	})

	input, err := registrationInputFromForm(req)
	require.NoError(t, err)

	assert.Equal(t, "ann", input.Username)
	assert.Equal(t, " secret ", input.Password)
	assert.Equal(t, " secret ", input.ConfirmPassword)
}

func TestBookmarkInputFromForm(t *testing.T) {
	req := formRequest(http.MethodPost, "/bookmarks/", url.Values{
		"name":        {"Go"},
		"url":         {"https://go.dev"},
		"description": {"The Go site"},
	})

	input, err := bookmarkInputFromForm(req)
	require.NoError(t, err)
	assert.Equal(t, models.BookmarkInput{Name: "Go", URL: "https://go.dev", Description: "The Go site"}, input)
}

func TestParseForm_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/contacts/", strings.NewReader("%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := contactInputFromForm(req)
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestErrorNotices(t *testing.T) {
	validation := fmt.Errorf("%w: %w", service.ErrValidation, &validators.ValidationError{Fields: []validators.FieldError{
		{Field: validators.FieldName, Message: "Please enter a valid name"},
		{Field: validators.FieldEmail, Message: "Please enter a valid email"},
	}})

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{name: "validation", err: validation, want: []string{"Please enter a valid name", "Please enter a valid email"}},
		{name: "unknown user", err: service.ErrUserNotFound, want: []string{"User does not exist"}},
		{name: "wrong password", err: fmt.Errorf("login: %w", service.ErrBadCredentials), want: []string{"Wrong password"}},
		{name: "anything else", err: service.ErrValidation, want: []string{"Invalid data provided"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notices := errorNotices(tt.err)

			messages := make([]string, 0, len(notices))
			for _, n := range notices {
				assert.Equal(t, flashError, n.Kind)
				messages = append(messages, n.Message)
			}
			assert.Equal(t, tt.want, messages)
		})
	}
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{"", ""},
		{"/contacts/", "/contacts/"},
		{"/update_contact/3?x=1", "/update_contact/3?x=1"},
		{"https://evil.example.com/", ""},
		{"//evil.example.com/", ""},
		{"/\\evil.example.com", ""},
		{"contacts/", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, safeNext(tt.next), "next=%q", tt.next)
	}
}
