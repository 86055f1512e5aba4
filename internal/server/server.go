// Package server assembles the hrdash HTTP handler: routes, catch-all and
// the middleware chain.
package server

import (
	"fmt"
	"net/http"

	"github.com/johnwards/hrdash/internal/api"
	"github.com/johnwards/hrdash/internal/api/admin"
	"github.com/johnwards/hrdash/internal/api/employees"
	"github.com/johnwards/hrdash/internal/api/reference"
	"github.com/johnwards/hrdash/internal/api/ui"
	"github.com/johnwards/hrdash/internal/metrics"
	"github.com/johnwards/hrdash/internal/store"
)

// NewHandler returns the full application handler.
func NewHandler(s *store.Store, pages employees.PageSizer, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	employees.RegisterRoutes(mux, s, pages, m)
	reference.RegisterRoutes(mux, s)
	admin.RegisterRoutes(mux, s)
	ui.RegisterRoutes(mux)
	mux.Handle("GET /metrics", m.Handler())

	// Catch-all: return 404 in the error envelope format.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, http.StatusNotFound, api.NewNotFoundError(
			fmt.Sprintf("No route found for %s %s", r.Method, r.URL.Path),
			api.CorrelationID(r.Context()),
		))
	})

	return api.Chain(mux,
		api.Recovery(),
		api.RequestID(),
		api.JSONContentType(),
		api.Metrics(m),
		api.Logging(),
	)
}
