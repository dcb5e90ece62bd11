package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageIndex         = "index.html"
	pageAddUser       = "add_user.html"
	pageLogin         = "login.html"
	pageContacts      = "contacts.html"
	pageUpdateContact = "update_contact.html"
	pageBookmarks     = "bookmarks.html"
	pageNotFound      = "404.html"
	pageServerError   = "500.html"
)

var pageFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format("2006-01-02 15:04")
	},
}

// pages holds one template set per page, each parsed together with the
// shared layout so that every page can define its own "content" block.
var pages = mustParsePages(
	pageIndex,
	pageAddUser,
	pageLogin,
	pageContacts,
	pageUpdateContact,
	pageBookmarks,
	pageNotFound,
	pageServerError,
)

func mustParsePages(names ...string) map[string]*template.Template {
	set := make(map[string]*template.Template, len(names))
	for _, name := range names {
		set[name] = template.Must(
			template.New(name).Funcs(pageFuncs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name),
		)
	}
	return set
}

// pageData is the view model handed to every page.
type pageData struct {
	Notices  []flashNotice
	LoggedIn bool

	Users     []models.User
	Contacts  []models.Contact
	Bookmarks []models.Bookmark

	// ContactID is the record edited on the update page.
	ContactID int64

	ContactForm      models.ContactInput
	RegistrationForm models.RegistrationInput
	LoginForm        models.LoginInput
	BookmarkForm     models.BookmarkInput

	// Next is the local path to return to after logging in.
	Next string

	// Message is the generic error text of the 500 page.
	Message string
}

// render executes page into a buffer and writes it with status. A flash
// notice left by the previous response is consumed and shown first.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	log := logger.FromRequest(r)

	if notice, ok := h.readAndClearFlash(w, r); ok {
		data.Notices = append([]flashNotice{notice}, data.Notices...)
	}
	_, data.LoggedIn = utils.GetUserIDFromContext(r.Context())

	tmpl, ok := pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("page", page).Msg("page rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteHTML(w, buf.Bytes(), status); err != nil {
		log.Err(err).Str("page", page).Msg("writing page failed")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, pageNotFound, pageData{})
}

// serverError renders the 500 page. message is shown to the user and must
// not carry error details.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, message string) {
	h.render(w, r, http.StatusInternalServerError, pageServerError, pageData{Message: message})
}
