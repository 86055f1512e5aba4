package reference

import (
	"net/http"

	"github.com/johnwards/hrdash/internal/store"
)

// RegisterRoutes registers the reference data endpoints on the mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/departments", h.Departments)
	mux.HandleFunc("GET /api/positions", h.Positions)
}
