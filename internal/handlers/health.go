package handlers

import "net/http"

// Health reports process liveness. It deliberately does not touch the
// calculator window: the service is healthy even when the target
// application is closed.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
