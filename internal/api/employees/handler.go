package employees

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/johnwards/hrdash/internal/api"
	"github.com/johnwards/hrdash/internal/domain"
	"github.com/johnwards/hrdash/internal/metrics"
	"github.com/johnwards/hrdash/internal/query"
	"github.com/johnwards/hrdash/internal/store"
)

const maxBodyBytes = 1 << 20

// PageSizer supplies the current list page size.
type PageSizer interface {
	PageSize() int
}

// Handler handles employee HTTP requests.
type Handler struct {
	store   *store.Store
	pages   PageSizer
	metrics *metrics.Metrics
}

// List handles GET /api/employees.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.search(r)
	if err != nil {
		if errors.Is(err, query.ErrInvalidQuery) {
			h.metrics.QueryExecuted(metrics.OutcomeInvalid)
		} else {
			h.metrics.QueryExecuted(metrics.OutcomeError)
		}
		api.WriteStoreError(w, r, err)
		return
	}

	h.metrics.QueryExecuted(metrics.OutcomeOK)
	api.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) search(r *http.Request) (*domain.EmployeePage, error) {
	s, err := domain.ParseEmployeeSearch(r.URL.Query())
	if err != nil {
		return nil, err
	}
	q, err := s.Query(h.pages.PageSize())
	if err != nil {
		return nil, err
	}
	return h.store.Search.Search(r.Context(), q)
}

// Get handles GET /api/employees/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.store.Employees.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound,
				api.NewNotFoundError("Employee not found", api.CorrelationID(r.Context())))
			return
		}
		api.WriteStoreError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, e)
}

// Create handles POST /api/employees.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var in domain.CreateEmployeeInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid JSON body", corrID, []api.ErrorDetail{
			{Message: err.Error(), Code: "INVALID_JSON"},
		}))
		return
	}

	if err := in.Validate(); err != nil {
		api.WriteStoreError(w, r, err)
		return
	}

	e, err := h.store.Employees.Create(r.Context(), in.Employee())
	if err != nil {
		api.WriteStoreError(w, r, err)
		return
	}

	h.metrics.EmployeeCreated()
	api.WriteJSON(w, http.StatusCreated, api.CreatedResponse{
		Success: true,
		Message: "Employee created successfully",
		Data:    e,
	})
}
