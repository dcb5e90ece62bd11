package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/logger"
)

const flashCookieName = "flash"

type flashKind string

const (
	flashSuccess flashKind = "success"
	flashInfo    flashKind = "info"
	flashError   flashKind = "error"
)

// flashNotice is a one-shot message shown on the next rendered page.
type flashNotice struct {
	Kind    flashKind `json:"kind"`
	Message string    `json:"message"`
}

// writeFlash stores notice in a signed cookie: base64url(JSON) "." hmac.
func (h *Handler) writeFlash(w http.ResponseWriter, notice flashNotice) {
	raw, err := json.Marshal(notice)
	if err != nil {
		return
	}

	payload := base64.RawURLEncoding.EncodeToString(raw)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    payload + "." + h.signer.Sign([]byte(payload)),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// readAndClearFlash returns the pending notice, if any, and expires the
// cookie. Tampered or malformed cookies are dropped silently.
func (h *Handler) readAndClearFlash(w http.ResponseWriter, r *http.Request) (flashNotice, bool) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return flashNotice{}, false
	}
	h.clearFlash(w)

	notice, err := h.decodeFlash(cookie.Value)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("dropping flash cookie")
		return flashNotice{}, false
	}
	return notice, true
}

func (h *Handler) decodeFlash(value string) (flashNotice, error) {
	payload, signature, ok := strings.Cut(value, ".")
	if !ok || !h.signer.Verify([]byte(payload), signature) {
		return flashNotice{}, ErrInvalidFlash
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return flashNotice{}, ErrInvalidFlash
	}

	var notice flashNotice
	if err = json.Unmarshal(raw, &notice); err != nil || notice.Message == "" {
		return flashNotice{}, ErrInvalidFlash
	}
	return notice, nil
}

func (h *Handler) clearFlash(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// redirectWithFlash leaves notice for the next page and answers 303.
func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, target string, notice flashNotice) {
	h.writeFlash(w, notice)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
