package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"
)

// WriteJSON marshals data and writes it with statusCode. A value that cannot
// be marshalled produces a plain 500 response and a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return writeBody(w, contentTypeJSON, body, statusCode)
}

// WriteHTML writes an already rendered page. Pages reflect per-user state
// (flash notices, session), so they are never cached.
func WriteHTML(w http.ResponseWriter, page []byte, statusCode int) (int, error) {
	w.Header().Set("Cache-Control", "no-store")
	return writeBody(w, contentTypeHTML, page, statusCode)
}

func writeBody(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
