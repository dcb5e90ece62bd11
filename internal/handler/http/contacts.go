package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

func (h *Handler) contacts(w http.ResponseWriter, r *http.Request) {
	h.renderContacts(w, r, http.StatusOK, pageData{})
}

// renderContacts lists every contact by name under the creation form.
func (h *Handler) renderContacts(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	contacts, err := h.services.ContactService.List(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing contacts failed")
		h.serverError(w, r, "Unable to load contacts")
		return
	}

	data.Contacts = contacts
	h.render(w, r, status, pageContacts, data)
}

func (h *Handler) addContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	input, err := contactInputFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid contact form")
		http.Error(w, ErrInvalidForm.Error(), http.StatusBadRequest)
		return
	}

	contact, err := h.services.ContactService.Create(r.Context(), input)
	if err != nil {
		switch status := statusFromError(err); status {
		case http.StatusUnprocessableEntity:
			log.Debug().Err(err).Msg("contact rejected")
			h.renderContacts(w, r, status, pageData{Notices: errorNotices(err), ContactForm: input})
		default:
			log.Err(err).Msg("adding contact failed")
			h.serverError(w, r, "Unable to add contact")
		}
		return
	}

	log.Info().Int64("contact_id", contact.ContactID).Msg("contact added")
	h.redirectWithFlash(w, r, "/contacts/", flashNotice{Kind: flashSuccess, Message: "Contact " + contact.Name + " added"})
}

func (h *Handler) updateContactForm(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r)
	if err != nil {
		h.notFound(w, r)
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), contactID)
	if err != nil {
		switch statusFromError(err) {
		case http.StatusNotFound:
			h.notFound(w, r)
		default:
			logger.FromRequest(r).Err(err).Int64("contact_id", contactID).Msg("loading contact failed")
			h.serverError(w, r, "Unable to load contact")
		}
		return
	}

	h.render(w, r, http.StatusOK, pageUpdateContact, pageData{
		ContactID:   contact.ContactID,
		ContactForm: models.ContactInput{Name: contact.Name, Email: contact.Email, Number: contact.Number, Image: contact.Image},
	})
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contactID, err := pathID(r)
	if err != nil {
		h.notFound(w, r)
		return
	}

	input, err := contactInputFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid contact form")
		http.Error(w, ErrInvalidForm.Error(), http.StatusBadRequest)
		return
	}

	if _, err = h.services.ContactService.Update(r.Context(), contactID, input); err != nil {
		switch status := statusFromError(err); status {
		case http.StatusUnprocessableEntity:
			log.Debug().Err(err).Int64("contact_id", contactID).Msg("contact update rejected")
			h.render(w, r, status, pageUpdateContact, pageData{
				Notices:     errorNotices(err),
				ContactID:   contactID,
				ContactForm: input,
			})
		case http.StatusNotFound:
			h.notFound(w, r)
		default:
			log.Err(err).Int64("contact_id", contactID).Msg("updating contact failed")
			h.serverError(w, r, "Unable to update contact")
		}
		return
	}

	log.Info().Int64("contact_id", contactID).Msg("contact updated")
	h.redirectWithFlash(w, r, "/contacts/", flashNotice{Kind: flashSuccess, Message: "Contact updated"})
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contactID, err := pathID(r)
	if err != nil {
		h.notFound(w, r)
		return
	}

	if err = h.services.ContactService.Delete(r.Context(), contactID); err != nil {
		switch statusFromError(err) {
		case http.StatusNotFound:
			h.notFound(w, r)
		default:
			log.Err(err).Int64("contact_id", contactID).Msg("deleting contact failed")
			h.serverError(w, r, "Unable to delete contact")
		}
		return
	}

	log.Info().Int64("contact_id", contactID).Msg("contact deleted")
	h.redirectWithFlash(w, r, "/contacts/", flashNotice{Kind: flashSuccess, Message: "Contact deleted"})
}
