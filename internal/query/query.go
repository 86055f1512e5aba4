// Package query implements the in-memory query engine: filter, sort and
// paginate a collection of records without touching the collection itself.
package query

import (
	"fmt"
	"strings"
)

// Record is a single row the engine can query. Field reports false when the
// record does not carry the named field.
type Record interface {
	Field(name string) (Value, bool)
}

// Operator is a filter comparison.
type Operator string

const (
	// OpContains is a case-insensitive substring match on strings.
	OpContains Operator = "contains"
	// OpEquals is a case-sensitive exact match.
	OpEquals Operator = "equals"
	// OpGTE keeps records whose field is on or after / at least the value.
	OpGTE Operator = "gte"
	// OpLTE keeps records whose field is on or before / at most the value.
	OpLTE Operator = "lte"
)

// Valid reports whether op is one of the supported operators.
func (op Operator) Valid() bool {
	switch op {
	case OpContains, OpEquals, OpGTE, OpLTE:
		return true
	}
	return false
}

// FilterClause is one field/operator/value predicate. Clauses in a Query
// combine with AND.
type FilterClause struct {
	Field string   `json:"field"`
	Op    Operator `json:"op"`
	Value string   `json:"value"`
}

// Direction is the sort order.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// ParseDirection accepts the long and short spellings of a direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", &InvalidQueryError{Param: "direction", Message: fmt.Sprintf("unknown sort direction %q", s)}
}

// SortSpec names the single active sort field.
type SortSpec struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// PageRequest selects a 1-based page of Size records.
type PageRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Query is the full descriptor passed to Execute.
type Query struct {
	Filters []FilterClause `json:"filters,omitempty"`
	Sort    *SortSpec      `json:"sort,omitempty"`
	Page    PageRequest    `json:"page"`
}

// Result is one page of a query together with the totals of the filtered set.
type Result[R Record] struct {
	Records      []R `json:"records"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
}

// Schema declares the fields a record type carries and their kinds.
type Schema map[string]Kind

// Validate checks q for malformed parts. Schema checks only apply when s is
// non-nil.
func (s Schema) Validate(q Query) error {
	if q.Page.Page < 1 {
		return &InvalidQueryError{Param: "page", Message: fmt.Sprintf("page must be >= 1, got %d", q.Page.Page)}
	}
	if q.Page.Size < 1 {
		return &InvalidQueryError{Param: "size", Message: fmt.Sprintf("page size must be >= 1, got %d", q.Page.Size)}
	}

	for _, f := range q.Filters {
		if f.Field == "" {
			return &InvalidQueryError{Param: "filter", Message: "filter field is required"}
		}
		if !f.Op.Valid() {
			return &InvalidQueryError{Param: f.Field, Message: fmt.Sprintf("unknown filter operator %q", f.Op)}
		}
		if s == nil {
			continue
		}
		kind, ok := s[f.Field]
		if !ok {
			return &InvalidQueryError{Param: f.Field, Message: fmt.Sprintf("unknown filter field %q", f.Field)}
		}
		if f.Op == OpContains && kind != KindString {
			return &InvalidQueryError{Param: f.Field, Message: fmt.Sprintf("operator %s does not apply to %s field %q", f.Op, kind, f.Field)}
		}
	}

	if q.Sort != nil {
		if q.Sort.Field == "" {
			return &InvalidQueryError{Param: "sort", Message: "sort field is required"}
		}
		if q.Sort.Direction != Ascending && q.Sort.Direction != Descending {
			return &InvalidQueryError{Param: "direction", Message: fmt.Sprintf("unknown sort direction %q", q.Sort.Direction)}
		}
		if s != nil {
			if _, ok := s[q.Sort.Field]; !ok {
				return &InvalidQueryError{Param: "sort", Message: fmt.Sprintf("unknown sort field %q", q.Sort.Field)}
			}
		}
	}

	return nil
}
