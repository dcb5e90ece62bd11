package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	// public pages
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/add_user/", h.addUserForm)
		r.Post("/add_user/", h.addUser)
		r.Get("/delete_user/{id}", h.deleteUser)
		r.Get("/login/", h.loginForm)
		r.Post("/login/", h.login)
		r.Get("/version", h.getServerVersion)
	})

	// pages behind the login wall
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/logout/", h.logout)
		r.Post("/logout/", h.logout)
		r.Get("/bookmarks/", h.bookmarks)
		r.Post("/bookmarks/", h.addBookmark)
		r.Get("/contacts/", h.contacts)
		r.Post("/contacts/", h.addContact)
		r.Get("/update_contact/{id}", h.updateContactForm)
		r.Post("/update_contact/{id}", h.updateContact)
		r.Get("/delete_contact/{id}", h.deleteContact)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
