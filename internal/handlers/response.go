package handlers

import (
	"encoding/json"
	"net/http"
)

// WriteError writes a standardised JSON error response. The request id is
// carried by the X-Request-ID header, never the body.
func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}
