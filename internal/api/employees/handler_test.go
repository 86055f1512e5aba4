package employees_test

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/johnwards/hrdash/internal/api"
	"github.com/johnwards/hrdash/internal/api/employees"
	"github.com/johnwards/hrdash/internal/domain"
	"github.com/johnwards/hrdash/internal/metrics"
	"github.com/johnwards/hrdash/internal/seed"
	"github.com/johnwards/hrdash/internal/store"
	"github.com/johnwards/hrdash/internal/testhelpers"
)

type fixedPages int

func (p fixedPages) PageSize() int { return int(p) }

func setupServer(t *testing.T, pageSize int) (*httptest.Server, *metrics.Metrics) {
	t.Helper()
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()

	s, err := store.New(db, store.BackendSQLite)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := seed.Seed(ctx, db, s.Employees); err != nil {
		t.Fatalf("seed: %v", err)
	}

	m := metrics.New()
	mux := http.NewServeMux()
	employees.RegisterRoutes(mux, s, fixedPages(pageSize), m)

	srv := httptest.NewServer(api.Chain(mux, api.RequestID()))
	t.Cleanup(srv.Close)
	return srv, m
}

func getPage(t *testing.T, url string) *domain.EmployeePage {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var page domain.EmployeePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return &page
}

func names(p *domain.EmployeePage) []string {
	out := []string{}
	for _, e := range p.Employees {
		out = append(out, e.Name)
	}
	return out
}

func TestListEmployeesDefaults(t *testing.T) {
	srv, m := setupServer(t, 10)

	page := getPage(t, srv.URL+"/api/employees")

	if diff := cmp.Diff([]string{"Jane Smith", "John Doe", "Michael Johnson"}, names(page)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if page.TotalEmployees != 3 || page.TotalPages != 1 || page.CurrentPage != 1 {
		t.Errorf("page = %+v", page)
	}

	want := `
# HELP hrdash_query_executions_total Employee list queries by outcome.
# TYPE hrdash_query_executions_total counter
hrdash_query_executions_total{outcome="ok"} 1
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(want), "hrdash_query_executions_total"); err != nil {
		t.Error(err)
	}
}

func TestListEmployeesFiltersAndSort(t *testing.T) {
	srv, _ := setupServer(t, 10)

	tests := []struct {
		query string
		want  []string
	}{
		{"?department=Human+Resources", []string{"Jane Smith"}},
		{"?department=HR", []string{}},
		{"?name=JOHN", []string{"John Doe", "Michael Johnson"}},
		{"?startDate=2022-01-01&sort=hireDate", []string{"John Doe", "Michael Johnson"}},
		{"?endDate=2022-01-15&sort=hireDate&direction=desc", []string{"John Doe", "Jane Smith"}},
		{"?sort=salary&direction=desc", []string{"Jane Smith", "John Doe", "Michael Johnson"}},
		{"?position=Marketing+Manager&department=Marketing", []string{"Michael Johnson"}},
		{"?department=engineering", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			page := getPage(t, srv.URL+"/api/employees"+tt.query)
			if diff := cmp.Diff(tt.want, names(page)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListEmployeesPagination(t *testing.T) {
	srv, _ := setupServer(t, 2)

	page := getPage(t, srv.URL+"/api/employees?page=2")
	if diff := cmp.Diff([]string{"Michael Johnson"}, names(page)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if page.TotalPages != 2 || page.CurrentPage != 2 || page.TotalEmployees != 3 {
		t.Errorf("page = %+v", page)
	}

	beyond := getPage(t, srv.URL+"/api/employees?page=999")
	if len(beyond.Employees) != 0 || beyond.TotalEmployees != 3 || beyond.CurrentPage != 999 {
		t.Errorf("out-of-range page = %+v", beyond)
	}
}

func TestListEmployeesExtremePages(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		query    string
		want     []string
	}{
		{"max page", 2, "?page=9223372036854775807", []string{}},
		{"huge page", 10, "?page=1844674407370955162", []string{}},
		{"max page size", math.MaxInt, "", []string{"Jane Smith", "John Doe", "Michael Johnson"}},
		{"max page size second page", math.MaxInt, "?page=2", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := setupServer(t, tt.pageSize)

			page := getPage(t, srv.URL+"/api/employees"+tt.query)
			if diff := cmp.Diff(tt.want, names(page)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if page.TotalEmployees != 3 {
				t.Errorf("TotalEmployees = %d, want 3", page.TotalEmployees)
			}
		})
	}
}

func TestListEmployeesInvalidQuery(t *testing.T) {
	srv, m := setupServer(t, 10)

	tests := []struct {
		query string
		param string
	}{
		{"?page=0", "page"},
		{"?page=-1", "page"},
		{"?page=two", "page"},
		{"?sort=shoeSize", "sort"},
		{"?direction=sideways", "direction"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/api/employees" + tt.query)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}

			var apiErr api.Error
			if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if apiErr.Category != api.CategoryInvalidQuery {
				t.Errorf("category = %q, want %q", apiErr.Category, api.CategoryInvalidQuery)
			}
			if len(apiErr.Errors) != 1 || apiErr.Errors[0].In != tt.param {
				t.Errorf("errors = %+v, want one detail in %q", apiErr.Errors, tt.param)
			}
			if apiErr.CorrelationID == "" {
				t.Error("expected correlation id")
			}
		})
	}

	want := `
# HELP hrdash_query_executions_total Employee list queries by outcome.
# TYPE hrdash_query_executions_total counter
hrdash_query_executions_total{outcome="invalid"} 5
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(want), "hrdash_query_executions_total"); err != nil {
		t.Error(err)
	}
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestCreateEmployee(t *testing.T) {
	srv, m := setupServer(t, 10)

	resp := post(t, srv.URL+"/api/employees",
		`{"name":"Ada Lovelace","department":"Engineering","position":"Software Engineer","hireDate":"2024-03-01","salary":120000}`)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var result struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    domain.Employee `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Success || result.Message != "Employee created successfully" {
		t.Errorf("result = %+v", result)
	}
	if result.Data.ID != "4" || result.Data.Salary != 120000 {
		t.Errorf("data = %+v", result.Data)
	}

	page := getPage(t, srv.URL+"/api/employees")
	if diff := cmp.Diff([]string{"Ada Lovelace", "Jane Smith", "John Doe", "Michael Johnson"}, names(page)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	want := `
# HELP hrdash_employees_created_total Employees created through the API.
# TYPE hrdash_employees_created_total counter
hrdash_employees_created_total 1
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(want), "hrdash_employees_created_total"); err != nil {
		t.Error(err)
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	srv, _ := setupServer(t, 10)

	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{"empty object", `{}`, []string{"name", "department", "position", "hireDate", "salary"}},
		{"bad date and negative salary", `{"name":"A","department":"B","position":"C","hireDate":"March","salary":-5}`, []string{"hireDate", "salary"}},
		{"invalid json", `{"name":`, nil},
		{"wrong type", `{"salary":"lots"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+"/api/employees", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}

			var apiErr api.Error
			if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if apiErr.Category != api.CategoryValidationError {
				t.Errorf("category = %q, want %q", apiErr.Category, api.CategoryValidationError)
			}
			if tt.fields == nil {
				return
			}
			var got []string
			for _, d := range apiErr.Errors {
				got = append(got, d.In)
			}
			if diff := cmp.Diff(tt.fields, got); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetEmployee(t *testing.T) {
	srv, _ := setupServer(t, 10)

	resp, err := http.Get(srv.URL + "/api/employees/2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var e domain.Employee
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Name != "Jane Smith" {
		t.Errorf("name = %q, want Jane Smith", e.Name)
	}
}

func TestGetEmployeeNotFound(t *testing.T) {
	srv, _ := setupServer(t, 10)

	resp, err := http.Get(srv.URL + "/api/employees/999")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var apiErr api.Error
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if apiErr.Category != api.CategoryObjectNotFound {
		t.Errorf("category = %q, want %q", apiErr.Category, api.CategoryObjectNotFound)
	}
}
