package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

var invalidEmail = fmt.Errorf("%w: %w", service.ErrValidation, &validators.ValidationError{Fields: []validators.FieldError{
	{Field: validators.FieldEmail, Message: "Please enter a valid email"},
}})

func TestContactPages_RequireSession(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/contacts/"},
		{http.MethodPost, "/contacts/"},
		{http.MethodGet, "/update_contact/1"},
		{http.MethodPost, "/update_contact/1"},
		{http.MethodGet, "/delete_contact/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h, _ := newMockedHandler(t)

			rec := serve(h, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login/?next="+url.QueryEscape(tt.path), rec.Header().Get("Location"))
			assert.Equal(t, "Please log in to access this page.", flashOf(t, h, rec).Message)
		})
	}
}

func TestContacts_StaleSessionIsCleared(t *testing.T) {
	h, m := newMockedHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/contacts/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired"})
	m.auth.EXPECT().ParseSession(gomock.Any(), "expired").Return(models.Session{}, service.ErrUnauthenticated)

	rec := serve(h, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	cleared := responseCookie(rec, sessionCookieName)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestContacts_ListsByName(t *testing.T) {
	h, m := newMockedHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/contacts/", nil)
	logIn(m, req, 1)
	m.contacts.EXPECT().List(gomock.Any()).Return([]models.Contact{
		{ContactID: 2, Name: "Ann", Email: "ann@example.com", Number: "555", Image: models.FallbackImageURL},
		{ContactID: 1, Name: "Bob", Email: "bob@example.com", Image: "https://img.example.com/bob.png"},
	}, nil)

	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Less(t, strings.Index(body, "ann@example.com"), strings.Index(body, "bob@example.com"))
	assert.Contains(t, body, `href="/update_contact/2"`)
	assert.Contains(t, body, `href="/delete_contact/1"`)
	assert.Contains(t, body, "Log out")
}

func TestAddContact(t *testing.T) {
	form := url.Values{"name": {"Ann"}, "email": {"ann.example.com"}, "number": {"555"}, "image": {"https://img.example.com/ann.png"}}
	input := models.ContactInput{Name: "Ann", Email: "ann.example.com", Number: "555", Image: "https://img.example.com/ann.png"}

	tests := []struct {
		name       string
		createErr  error
		wantStatus int
		wantBody   []string
		wantList   bool
	}{
		{name: "created", wantStatus: http.StatusSeeOther},
		{name: "invalid email", createErr: invalidEmail, wantStatus: http.StatusUnprocessableEntity, wantList: true,
			wantBody: []string{"Please enter a valid email", `value="Ann"`, `value="ann.example.com"`, `value="555"`}},
		{name: "persistence failure", createErr: fmt.Errorf("%w: %w", service.ErrPersistence, store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError, wantBody: []string{"Unable to add contact"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			req := formRequest(http.MethodPost, "/contacts/", form)
			logIn(m, req, 1)
			m.contacts.EXPECT().Create(gomock.Any(), input).
				Return(models.Contact{ContactID: 3, Name: "Ann"}, tt.createErr)
			if tt.wantList {
				m.contacts.EXPECT().List(gomock.Any()).Return(nil, nil)
			}

			rec := serve(h, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusSeeOther {
				assert.Equal(t, "/contacts/", rec.Header().Get("Location"))
				assert.Equal(t, "Contact Ann added", flashOf(t, h, rec).Message)
			}
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestUpdateContactForm(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		expectID   int64
		contact    models.Contact
		getErr     error
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "prefilled",
			path:       "/update_contact/4",
			expectID:   4,
			contact:    models.Contact{ContactID: 4, Name: "Ann", Email: "ann@example.com", Number: "555", Image: models.FallbackImageURL},
			wantStatus: http.StatusOK,
			wantBody:   []string{`action="/update_contact/4"`, `value="Ann"`, `value="ann@example.com"`, `value="555"`},
		},
		{name: "not numeric", path: "/update_contact/abc", wantStatus: http.StatusNotFound},
		{name: "unknown id", path: "/update_contact/9", expectID: 9, getErr: fmt.Errorf("get: %w", store.ErrNotFound), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			logIn(m, req, 1)
			if tt.expectID != 0 {
				m.contacts.EXPECT().Get(gomock.Any(), tt.expectID).Return(tt.contact, tt.getErr)
			}

			rec := serve(h, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestUpdateContact(t *testing.T) {
	form := url.Values{"name": {"Anna"}, "email": {"anna@example.com"}, "number": {""}, "image": {""}}
	input := models.ContactInput{Name: "Anna", Email: "anna@example.com"}

	tests := []struct {
		name       string
		path       string
		expectID   int64
		updateErr  error
		wantStatus int
		wantBody   []string
	}{
		{name: "updated", path: "/update_contact/4", expectID: 4, wantStatus: http.StatusSeeOther},
		{name: "not numeric", path: "/update_contact/x", wantStatus: http.StatusNotFound},
		{name: "unknown id", path: "/update_contact/9", expectID: 9, updateErr: fmt.Errorf("%w", service.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "invalid", path: "/update_contact/4", expectID: 4, updateErr: invalidEmail, wantStatus: http.StatusUnprocessableEntity,
			wantBody: []string{"Please enter a valid email", `value="Anna"`, `action="/update_contact/4"`}},
		{name: "persistence failure", path: "/update_contact/4", expectID: 4, updateErr: fmt.Errorf("%w: %w", service.ErrPersistence, store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError, wantBody: []string{"Unable to update contact"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			req := formRequest(http.MethodPost, tt.path, form)
			logIn(m, req, 1)
			if tt.expectID != 0 {
				m.contacts.EXPECT().Update(gomock.Any(), tt.expectID, input).Return(models.Contact{ContactID: tt.expectID}, tt.updateErr)
			}

			rec := serve(h, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusSeeOther {
				assert.Equal(t, "/contacts/", rec.Header().Get("Location"))
				assert.Equal(t, "Contact updated", flashOf(t, h, rec).Message)
			}
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestDeleteContact(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		expectID   int64
		deleteErr  error
		wantStatus int
	}{
		{name: "deleted", path: "/delete_contact/4", expectID: 4, wantStatus: http.StatusSeeOther},
		{name: "not numeric", path: "/delete_contact/four", wantStatus: http.StatusNotFound},
		{name: "unknown id", path: "/delete_contact/9", expectID: 9, deleteErr: fmt.Errorf("delete: %w", service.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "persistence failure", path: "/delete_contact/4", expectID: 4, deleteErr: fmt.Errorf("%w: boom", service.ErrPersistence), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			logIn(m, req, 1)
			if tt.expectID != 0 {
				m.contacts.EXPECT().Delete(gomock.Any(), tt.expectID).Return(tt.deleteErr)
			}

			rec := serve(h, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			switch tt.wantStatus {
			case http.StatusSeeOther:
				assert.Equal(t, "/contacts/", rec.Header().Get("Location"))
			case http.StatusInternalServerError:
				assert.Contains(t, rec.Body.String(), "Unable to delete contact")
				assert.NotContains(t, rec.Body.String(), "boom")
			}
		})
	}
}
