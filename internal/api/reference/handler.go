package reference

import (
	"net/http"
	"strings"

	"github.com/johnwards/hrdash/internal/api"
	"github.com/johnwards/hrdash/internal/store"
)

// Handler serves the department and position pick lists.
type Handler struct {
	store *store.Store
}

// Departments handles GET /api/departments.
func (h *Handler) Departments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.store.Reference.Departments(r.Context())
	if err != nil {
		api.WriteStoreError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, departments)
}

// Positions handles GET /api/positions?department=.
func (h *Handler) Positions(w http.ResponseWriter, r *http.Request) {
	department := strings.TrimSpace(r.URL.Query().Get("department"))
	if department == "" {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError(
			"Department is required", api.CorrelationID(r.Context()),
			[]api.ErrorDetail{{Message: "department is required", Code: "REQUIRED", In: "department"}},
		))
		return
	}

	positions, err := h.store.Reference.Positions(r.Context(), department)
	if err != nil {
		api.WriteStoreError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, positions)
}
