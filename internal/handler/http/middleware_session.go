package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
)

const loginRequiredMessage = "Please log in to access this page."

// withSession loads the session cookie, if any. A valid session puts the user
// id into the request context under utils.UserIDCtxKey; an invalid one is
// cleared. The request always proceeds.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := readSessionCookie(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseSession(ctx, token)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("dropping session cookie")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, session.UserID)))
	})
}

// requireSession sends anonymous visitors to the login page, remembering the
// requested path in the "next" query parameter.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			logger.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("login required")
			target := "/login/?next=" + url.QueryEscape(r.URL.RequestURI())
			h.redirectWithFlash(w, r, target, flashNotice{Kind: flashInfo, Message: loginRequiredMessage})
			return
		}

		next.ServeHTTP(w, r)
	})
}
