package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/service"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidID, http.StatusNotFound},
	{ErrInvalidForm, http.StatusBadRequest},
	{service.ErrValidation, http.StatusUnprocessableEntity},
	{service.ErrAuth, http.StatusUnauthorized},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrPersistence, http.StatusInternalServerError},
	{service.ErrSessionCreationFailed, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
