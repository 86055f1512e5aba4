package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/johnwards/hrdash/internal/query"
)

// Defaults applied to an employee search when a parameter is absent.
const (
	DefaultSort      = "name"
	DefaultDirection = "asc"
)

// EmployeeSearch is the list request shared by the HTTP handler, the CLI
// client and the web page. Its query-string form is the public API.
type EmployeeSearch struct {
	Page       int
	Sort       string
	Direction  string
	Name       string
	Department string
	Position   string
	StartDate  string
	EndDate    string
}

// ParseEmployeeSearch reads a search from query parameters. A page that is
// present but not an integer is an invalid query; range checks on the page
// happen in the query engine.
func ParseEmployeeSearch(v url.Values) (EmployeeSearch, error) {
	s := EmployeeSearch{
		Page:       1,
		Sort:       DefaultSort,
		Direction:  DefaultDirection,
		Name:       strings.TrimSpace(v.Get("name")),
		Department: strings.TrimSpace(v.Get("department")),
		Position:   strings.TrimSpace(v.Get("position")),
		StartDate:  strings.TrimSpace(v.Get("startDate")),
		EndDate:    strings.TrimSpace(v.Get("endDate")),
	}

	if raw := strings.TrimSpace(v.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return EmployeeSearch{}, &query.InvalidQueryError{
				Param:   "page",
				Message: fmt.Sprintf("page must be an integer, got %q", raw),
			}
		}
		s.Page = page
	}
	if sort := strings.TrimSpace(v.Get("sort")); sort != "" {
		s.Sort = sort
	}
	if dir := strings.TrimSpace(v.Get("direction")); dir != "" {
		s.Direction = dir
	}
	return s, nil
}

// Values encodes the search as query parameters, omitting empty ones.
func (s EmployeeSearch) Values() url.Values {
	v := url.Values{}
	if s.Page != 0 {
		v.Set("page", strconv.Itoa(s.Page))
	}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("sort", s.Sort)
	set("direction", s.Direction)
	set("name", s.Name)
	set("department", s.Department)
	set("position", s.Position)
	set("startDate", s.StartDate)
	set("endDate", s.EndDate)
	return v
}

// Query maps the search onto an engine query with the given page size.
func (s EmployeeSearch) Query(pageSize int) (query.Query, error) {
	var q query.Query

	if s.Name != "" {
		q.Filters = append(q.Filters, query.FilterClause{Field: "name", Op: query.OpContains, Value: s.Name})
	}
	if s.Department != "" {
		q.Filters = append(q.Filters, query.FilterClause{Field: "department", Op: query.OpEquals, Value: s.Department})
	}
	if s.Position != "" {
		q.Filters = append(q.Filters, query.FilterClause{Field: "position", Op: query.OpEquals, Value: s.Position})
	}
	if s.StartDate != "" {
		q.Filters = append(q.Filters, query.FilterClause{Field: "hireDate", Op: query.OpGTE, Value: s.StartDate})
	}
	if s.EndDate != "" {
		q.Filters = append(q.Filters, query.FilterClause{Field: "hireDate", Op: query.OpLTE, Value: s.EndDate})
	}

	if s.Sort != "" {
		dir, err := query.ParseDirection(s.Direction)
		if err != nil {
			return query.Query{}, err
		}
		q.Sort = &query.SortSpec{Field: s.Sort, Direction: dir}
	}

	q.Page = query.PageRequest{Page: s.Page, Size: pageSize}
	return q, nil
}
