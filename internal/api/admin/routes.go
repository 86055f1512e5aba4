package admin

import (
	"net/http"

	"github.com/johnwards/hrdash/internal/store"
)

// RegisterRoutes registers all admin API endpoints on the mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("POST /_hrdash/reset", h.Reset)
	mux.HandleFunc("POST /_hrdash/seed", h.SeedData)
}
