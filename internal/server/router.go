package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hsinghweb/eag-v2-s13/internal/calculator"
	"github.com/hsinghweb/eag-v2-s13/internal/handlers"
	"github.com/hsinghweb/eag-v2-s13/internal/observability"
)

// NewRouter assembles the HTTP surface: the three calculator tool
// endpoints plus health and metrics.
func NewRouter(ctrl *calculator.Controller) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.RegisterRoutes(r, ctrl)

	return r
}
