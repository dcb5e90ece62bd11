package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		log.Err(err).Msg("listing users failed")
		h.serverError(w, r, "Unable to load users")
		return
	}

	h.render(w, r, http.StatusOK, pageIndex, pageData{Users: users})
}

func (h *Handler) addUserForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageAddUser, pageData{})
}

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	input, err := registrationInputFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid registration form")
		http.Error(w, ErrInvalidForm.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, input)
	if err != nil {
		switch status := statusFromError(err); status {
		case http.StatusUnprocessableEntity:
			log.Debug().Err(err).Msg("registration rejected")
			h.render(w, r, status, pageAddUser, pageData{
				Notices:          errorNotices(err),
				RegistrationForm: models.RegistrationInput{Username: input.Username, Email: input.Email, Image: input.Image},
			})
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.serverError(w, r, "Unable to create new user")
		}
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user created")
	h.redirectWithFlash(w, r, "/", flashNotice{Kind: flashSuccess, Message: fmt.Sprintf("User %s created", user.Username)})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := pathID(r)
	if err != nil {
		h.notFound(w, r)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), userID); err != nil {
		switch statusFromError(err) {
		case http.StatusNotFound:
			h.notFound(w, r)
		default:
			log.Err(err).Int64("user_id", userID).Msg("deleting user failed")
			h.serverError(w, r, "Unable to delete user")
		}
		return
	}

	log.Info().Int64("user_id", userID).Msg("user deleted")
	h.redirectWithFlash(w, r, "/", flashNotice{Kind: flashSuccess, Message: "User deleted"})
}
