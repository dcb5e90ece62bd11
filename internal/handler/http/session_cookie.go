package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-contact-book/models"
)

const sessionCookieName = "session"

func (h *Handler) writeSessionCookie(w http.ResponseWriter, session models.Session) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresAt != nil {
		cookie.Expires = session.ExpiresAt.Time
		cookie.MaxAge = int(time.Until(session.ExpiresAt.Time).Seconds())
	}

	http.SetCookie(w, cookie)
}

func readSessionCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
