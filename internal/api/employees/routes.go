package employees

import (
	"net/http"

	"github.com/johnwards/hrdash/internal/metrics"
	"github.com/johnwards/hrdash/internal/store"
)

// RegisterRoutes registers the employee endpoints on the mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store, pages PageSizer, m *metrics.Metrics) {
	h := &Handler{store: s, pages: pages, metrics: m}

	mux.HandleFunc("GET /api/employees", h.List)
	mux.HandleFunc("POST /api/employees", h.Create)
	mux.HandleFunc("GET /api/employees/{id}", h.Get)
}
