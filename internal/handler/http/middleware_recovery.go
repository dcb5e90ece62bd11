package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-contact-book/internal/logger"
)

// withRecovery turns a panic in a handler into the 500 page.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			h.serverError(w, r, "")
		}()

		next.ServeHTTP(w, r)
	})
}
