package admin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/johnwards/hrdash/internal/api"
	"github.com/johnwards/hrdash/internal/seed"
	"github.com/johnwards/hrdash/internal/store"
)

// Handler serves the admin API at /_hrdash/.
type Handler struct {
	store *store.Store
}

// Reset removes every employee and re-runs seeds.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := ResetData(r.Context(), h.store); err != nil {
		slog.Error("reset failed", "error", err)
		api.WriteError(w, http.StatusInternalServerError,
			api.NewInternalError(fmt.Sprintf("failed to reset: %s", err), api.CorrelationID(r.Context())))
		return
	}

	api.WriteJSON(w, http.StatusOK, api.StatusResponse{Status: "ok"})
}

// SeedData runs seed data without dropping existing data first.
func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) {
	if err := seed.Seed(r.Context(), h.store.DB, h.store.Employees); err != nil {
		slog.Error("seed failed", "error", err)
		api.WriteError(w, http.StatusInternalServerError,
			api.NewInternalError(fmt.Sprintf("failed to seed: %s", err), api.CorrelationID(r.Context())))
		return
	}

	api.WriteJSON(w, http.StatusOK, api.StatusResponse{Status: "ok"})
}

// ResetData clears all employees and re-seeds. Exported for reuse by tests
// or other callers.
func ResetData(ctx context.Context, s *store.Store) error {
	if err := s.Employees.Reset(ctx); err != nil {
		return fmt.Errorf("clear employees: %w", err)
	}
	return seed.Seed(ctx, s.DB, s.Employees)
}
