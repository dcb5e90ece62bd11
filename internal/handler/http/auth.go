package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/models"
)

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageLogin, pageData{Next: safeNext(r.URL.Query().Get("next"))})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	input, err := loginInputFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid login form")
		http.Error(w, ErrInvalidForm.Error(), http.StatusBadRequest)
		return
	}
	next := safeNext(r.PostFormValue("next"))

	user, err := h.services.AuthService.Login(ctx, input)
	if err != nil {
		switch status := statusFromError(err); status {
		case http.StatusUnprocessableEntity, http.StatusUnauthorized:
			log.Debug().Err(err).Str("username", input.Username).Msg("login rejected")
			h.render(w, r, status, pageLogin, pageData{
				Notices:   errorNotices(err),
				LoginForm: models.LoginInput{Username: input.Username},
				Next:      next,
			})
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.serverError(w, r, "Unable to log in")
		}
		return
	}

	session, err := h.services.AuthService.CreateSession(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("creation of session failed")
		h.serverError(w, r, "Unable to log in")
		return
	}

	h.writeSessionCookie(w, session)
	log.Info().Int64("user_id", user.UserID).Msg("user logged in")

	if next == "" {
		next = "/"
	}
	h.redirectWithFlash(w, r, next, flashNotice{Kind: flashSuccess, Message: "Logged in as " + user.Username})
}

// logout revokes every session of the user, not only the cookie presented.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())

	h.clearSessionCookie(w)
	if err := h.services.AuthService.Logout(r.Context(), userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session revocation failed")
		h.serverError(w, r, "Unable to log out")
		return
	}

	log.Info().Int64("user_id", userID).Msg("user logged out")
	h.redirectWithFlash(w, r, "/login/", flashNotice{Kind: flashInfo, Message: "You have been logged out."})
}
