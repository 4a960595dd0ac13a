package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the tool surface onto the given router under the
// /calculator prefix.
func RegisterRoutes(r chi.Router, c *Controller) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/open", c.handleOpen)
		r.Post("/run", c.handleRun)
		r.Post("/press", c.handlePress)
	})
}
