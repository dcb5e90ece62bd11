package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/logger"
)

func (h *Handler) bookmarks(w http.ResponseWriter, r *http.Request) {
	h.renderBookmarks(w, r, http.StatusOK, pageData{})
}

func (h *Handler) renderBookmarks(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	bookmarks, err := h.services.BookmarkService.List(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing bookmarks failed")
		h.serverError(w, r, "Unable to load bookmarks")
		return
	}

	data.Bookmarks = bookmarks
	h.render(w, r, status, pageBookmarks, data)
}

func (h *Handler) addBookmark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	input, err := bookmarkInputFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid bookmark form")
		http.Error(w, ErrInvalidForm.Error(), http.StatusBadRequest)
		return
	}

	bookmark, err := h.services.BookmarkService.Create(r.Context(), input)
	if err != nil {
		switch status := statusFromError(err); status {
		case http.StatusUnprocessableEntity:
			log.Debug().Err(err).Msg("bookmark rejected")
			h.renderBookmarks(w, r, status, pageData{Notices: errorNotices(err), BookmarkForm: input})
		default:
			log.Err(err).Msg("adding bookmark failed")
			h.serverError(w, r, "Unable to add bookmark")
		}
		return
	}

	log.Info().Int64("bookmark_id", bookmark.BookmarkID).Msg("bookmark added")
	h.redirectWithFlash(w, r, "/bookmarks/", flashNotice{Kind: flashSuccess, Message: "Bookmark " + bookmark.Name + " added"})
}
