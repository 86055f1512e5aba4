package query_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/johnwards/hrdash/internal/query"
)

// row is a map-backed record used by the tests.
type row map[string]query.Value

func (r row) Field(name string) (query.Value, bool) {
	v, ok := r[name]
	return v, ok
}

func person(name, dept, hire string) row {
	return row{
		"name": query.String(name),
		"dept": query.String(dept),
		"hire": query.String(hire),
	}
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r["name"].Str()
	}
	return out
}

func sample() []row {
	return []row{
		person("Bob", "eng", "2022-01-01"),
		person("Amy", "hr", "2021-01-01"),
	}
}

func byName(dir query.Direction) *query.SortSpec {
	return &query.SortSpec{Field: "name", Direction: dir}
}

func TestExecuteSortByNameAscending(t *testing.T) {
	result, err := query.Execute(sample(), query.Query{
		Sort: byName(query.Ascending),
		Page: query.PageRequest{Page: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if diff := cmp.Diff([]string{"Amy", "Bob"}, names(result.Records)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if result.TotalRecords != 2 {
		t.Errorf("TotalRecords = %d, want 2", result.TotalRecords)
	}
	if result.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", result.TotalPages)
	}
	if result.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1", result.CurrentPage)
	}
}

func TestExecuteEqualsFilter(t *testing.T) {
	result, err := query.Execute(sample(), query.Query{
		Filters: []query.FilterClause{{Field: "dept", Op: query.OpEquals, Value: "eng"}},
		Sort:    byName(query.Ascending),
		Page:    query.PageRequest{Page: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if diff := cmp.Diff([]string{"Bob"}, names(result.Records)); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if result.TotalRecords != 1 {
		t.Errorf("TotalRecords = %d, want 1", result.TotalRecords)
	}
}

func TestExecuteSecondPage(t *testing.T) {
	result, err := query.Execute(sample(), query.Query{
		Sort: byName(query.Ascending),
		Page: query.PageRequest{Page: 2, Size: 1},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if diff := cmp.Diff([]string{"Bob"}, names(result.Records)); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if result.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", result.TotalPages)
	}
	if result.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", result.CurrentPage)
	}
}

func TestExecuteOutOfRangePage(t *testing.T) {
	records := []row{
		person("A", "x", "2020-01-01"),
		person("B", "x", "2020-01-01"),
		person("C", "x", "2020-01-01"),
	}

	result, err := query.Execute(records, query.Query{Page: query.PageRequest{Page: 999, Size: 10}})
	if err != nil {
		t.Fatalf("expected no error for out-of-range page, got %v", err)
	}
	if len(result.Records) != 0 {
		t.Errorf("expected empty page, got %d records", len(result.Records))
	}
	if result.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", result.TotalRecords)
	}
	if result.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", result.TotalPages)
	}
	if result.CurrentPage != 999 {
		t.Errorf("CurrentPage = %d, want 999", result.CurrentPage)
	}
}

func TestExecuteExtremePageBounds(t *testing.T) {
	tests := []struct {
		name      string
		page      query.PageRequest
		wantNames []string
		wantPages int
	}{
		{"huge page", query.PageRequest{Page: 1844674407370955162, Size: 10}, nil, 1},
		{"max page", query.PageRequest{Page: math.MaxInt, Size: 10}, nil, 1},
		{"max page and size", query.PageRequest{Page: math.MaxInt, Size: math.MaxInt}, nil, 1},
		{"max size", query.PageRequest{Page: 1, Size: math.MaxInt}, []string{"Amy", "Bob"}, 1},
		{"second page of max size", query.PageRequest{Page: 2, Size: math.MaxInt}, nil, 1},
		{"max page of size one", query.PageRequest{Page: math.MaxInt, Size: 1}, nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := query.Execute(sample(), query.Query{Sort: byName(query.Ascending), Page: tt.page})
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if result.Records == nil {
				t.Fatal("expected non-nil page")
			}
			if diff := cmp.Diff(tt.wantNames, names(result.Records), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if result.TotalRecords != 2 {
				t.Errorf("TotalRecords = %d, want 2", result.TotalRecords)
			}
			if result.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantPages)
			}
			if result.CurrentPage != tt.page.Page {
				t.Errorf("CurrentPage = %d, want %d", result.CurrentPage, tt.page.Page)
			}
		})
	}
}

func TestExecuteEmptyResultIsOnePage(t *testing.T) {
	result, err := query.Execute(sample(), query.Query{
		Filters: []query.FilterClause{{Field: "dept", Op: query.OpEquals, Value: "nobody"}},
		Page:    query.PageRequest{Page: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.TotalRecords != 0 {
		t.Errorf("TotalRecords = %d, want 0", result.TotalRecords)
	}
	if result.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", result.TotalPages)
	}
	if result.Records == nil {
		t.Error("expected non-nil empty page")
	}
}

func TestExecuteNilInput(t *testing.T) {
	result, err := query.Execute[row](nil, query.Query{Page: query.PageRequest{Page: 1, Size: 10}})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.TotalRecords != 0 || len(result.Records) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestExecuteDoesNotMutateInput(t *testing.T) {
	records := []row{
		person("Cid", "eng", "2020-01-01"),
		person("Amy", "hr", "2021-01-01"),
		person("Bob", "eng", "2022-01-01"),
	}
	before := names(records)

	_, err := query.Execute(records, query.Query{
		Filters: []query.FilterClause{{Field: "dept", Op: query.OpEquals, Value: "eng"}},
		Sort:    byName(query.Ascending),
		Page:    query.PageRequest{Page: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if diff := cmp.Diff(before, names(records)); diff != "" {
		t.Errorf("input was reordered (-before +after):\n%s", diff)
	}
	if records[1]["dept"].Str() != "hr" {
		t.Errorf("input element changed: %v", records[1])
	}

	// A second query over the same input still sees every record.
	result, err := query.Execute(records, query.Query{Page: query.PageRequest{Page: 1, Size: 10}})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", result.TotalRecords)
	}
}

func TestExecuteIdempotent(t *testing.T) {
	records := manyPeople(37)
	q := query.Query{
		Filters: []query.FilterClause{{Field: "name", Op: query.OpContains, Value: "1"}},
		Sort:    &query.SortSpec{Field: "dept", Direction: query.Descending},
		Page:    query.PageRequest{Page: 2, Size: 4},
	}

	first, err := query.Execute(records, q)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	second, err := query.Execute(records, q)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if diff := cmp.Diff(names(first.Records), names(second.Records)); diff != "" {
		t.Errorf("repeated execution differs (-first +second):\n%s", diff)
	}
	if first.TotalRecords != second.TotalRecords || first.TotalPages != second.TotalPages {
		t.Errorf("totals differ: %+v vs %+v", first, second)
	}
}

func TestExecutePaginationCoverage(t *testing.T) {
	records := manyPeople(23)
	sort := &query.SortSpec{Field: "dept", Direction: query.Ascending}

	full, err := query.Execute(records, query.Query{Sort: sort, Page: query.PageRequest{Page: 1, Size: len(records)}})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	for _, size := range []int{1, 3, 5, 10, 23, 50} {
		first, err := query.Execute(records, query.Query{Sort: sort, Page: query.PageRequest{Page: 1, Size: size}})
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}

		var all []row
		for p := 1; p <= first.TotalPages; p++ {
			page, err := query.Execute(records, query.Query{Sort: sort, Page: query.PageRequest{Page: p, Size: size}})
			if err != nil {
				t.Fatalf("size %d page %d: %v", size, p, err)
			}
			all = append(all, page.Records...)
		}

		if diff := cmp.Diff(names(full.Records), names(all)); diff != "" {
			t.Errorf("size %d: concatenated pages differ (-want +got):\n%s", size, diff)
		}
	}
}

func TestExecuteStableSort(t *testing.T) {
	records := []row{
		person("first", "eng", "2020-01-01"),
		person("second", "hr", "2020-01-01"),
		person("third", "eng", "2020-01-01"),
		person("fourth", "hr", "2020-01-01"),
		person("fifth", "eng", "2020-01-01"),
	}

	asc, err := query.Execute(records, query.Query{
		Sort: &query.SortSpec{Field: "dept", Direction: query.Ascending},
		Page: query.PageRequest{Page: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := []string{"first", "third", "fifth", "second", "fourth"}
	if diff := cmp.Diff(want, names(asc.Records)); diff != "" {
		t.Errorf("ascending mismatch (-want +got):\n%s", diff)
	}

	// Descending flips the comparator, not the output, so ties keep input order.
	desc, err := query.Execute(records, query.Query{
		Sort: &query.SortSpec{Field: "dept", Direction: query.Descending},
		Page: query.PageRequest{Page: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want = []string{"second", "fourth", "first", "third", "fifth"}
	if diff := cmp.Diff(want, names(desc.Records)); diff != "" {
		t.Errorf("descending mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteFilterMonotonicity(t *testing.T) {
	records := manyPeople(40)
	clauses := []query.FilterClause{
		{Field: "name", Op: query.OpContains, Value: "person"},
		{Field: "dept", Op: query.OpEquals, Value: "eng"},
		{Field: "hire", Op: query.OpGTE, Value: "2020-01-10"},
		{Field: "hire", Op: query.OpLTE, Value: "2020-02-01"},
	}

	prev := len(records) + 1
	for i := 0; i <= len(clauses); i++ {
		result, err := query.Execute(records, query.Query{
			Filters: clauses[:i],
			Page:    query.PageRequest{Page: 1, Size: 10},
		})
		if err != nil {
			t.Fatalf("execute with %d clauses: %v", i, err)
		}
		if result.TotalRecords > prev {
			t.Errorf("%d clauses: total %d exceeds %d", i, result.TotalRecords, prev)
		}
		prev = result.TotalRecords
	}
}

func TestExecuteInvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query query.Query
		param string
	}{
		{
			name:  "page zero",
			query: query.Query{Page: query.PageRequest{Page: 0, Size: 10}},
			param: "page",
		},
		{
			name:  "negative page",
			query: query.Query{Page: query.PageRequest{Page: -3, Size: 10}},
			param: "page",
		},
		{
			name:  "zero page size",
			query: query.Query{Page: query.PageRequest{Page: 1, Size: 0}},
			param: "size",
		},
		{
			name: "unknown operator",
			query: query.Query{
				Filters: []query.FilterClause{{Field: "name", Op: "startsWith", Value: "A"}},
				Page:    query.PageRequest{Page: 1, Size: 10},
			},
			param: "name",
		},
		{
			name: "empty filter field",
			query: query.Query{
				Filters: []query.FilterClause{{Op: query.OpEquals, Value: "A"}},
				Page:    query.PageRequest{Page: 1, Size: 10},
			},
			param: "filter",
		},
		{
			name: "empty sort field",
			query: query.Query{
				Sort: &query.SortSpec{Direction: query.Ascending},
				Page: query.PageRequest{Page: 1, Size: 10},
			},
			param: "sort",
		},
		{
			name: "unknown direction",
			query: query.Query{
				Sort: &query.SortSpec{Field: "name", Direction: "sideways"},
				Page: query.PageRequest{Page: 1, Size: 10},
			},
			param: "direction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := query.Execute(sample(), tt.query)
			if !errors.Is(err, query.ErrInvalidQuery) {
				t.Fatalf("expected ErrInvalidQuery, got %v", err)
			}
			var qErr *query.InvalidQueryError
			if !errors.As(err, &qErr) {
				t.Fatalf("expected *InvalidQueryError, got %T", err)
			}
			if qErr.Param != tt.param {
				t.Errorf("Param = %q, want %q", qErr.Param, tt.param)
			}
		})
	}
}

func TestExecuteStrictSchema(t *testing.T) {
	schema := query.Schema{
		"name":   query.KindString,
		"dept":   query.KindString,
		"hire":   query.KindDate,
		"salary": query.KindNumber,
	}

	tests := []struct {
		name    string
		query   query.Query
		wantErr bool
	}{
		{
			name: "known fields",
			query: query.Query{
				Filters: []query.FilterClause{{Field: "dept", Op: query.OpEquals, Value: "eng"}},
				Sort:    byName(query.Ascending),
				Page:    query.PageRequest{Page: 1, Size: 10},
			},
		},
		{
			name: "unknown sort field",
			query: query.Query{
				Sort: &query.SortSpec{Field: "shoeSize", Direction: query.Ascending},
				Page: query.PageRequest{Page: 1, Size: 10},
			},
			wantErr: true,
		},
		{
			name: "unknown filter field",
			query: query.Query{
				Filters: []query.FilterClause{{Field: "shoeSize", Op: query.OpEquals, Value: "9"}},
				Page:    query.PageRequest{Page: 1, Size: 10},
			},
			wantErr: true,
		},
		{
			name: "contains on a number",
			query: query.Query{
				Filters: []query.FilterClause{{Field: "salary", Op: query.OpContains, Value: "9"}},
				Page:    query.PageRequest{Page: 1, Size: 10},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := query.Execute(sample(), tt.query, query.WithSchema(schema))
			if tt.wantErr && !errors.Is(err, query.ErrInvalidQuery) {
				t.Fatalf("expected ErrInvalidQuery, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	// Without a schema an unknown sort field is not an error.
	if _, err := query.Execute(sample(), tests[1].query); err != nil {
		t.Errorf("lenient mode: unexpected error %v", err)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want query.Direction
	}{
		{"", query.Ascending},
		{"asc", query.Ascending},
		{"ASC", query.Ascending},
		{"ascending", query.Ascending},
		{"desc", query.Descending},
		{"descending", query.Descending},
	}
	for _, tt := range tests {
		got, err := query.ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := query.ParseDirection("up"); !errors.Is(err, query.ErrInvalidQuery) {
		t.Errorf("ParseDirection(up): expected ErrInvalidQuery, got %v", err)
	}
}

// manyPeople builds n records spread over three departments and hire dates
// in January and February 2020.
func manyPeople(n int) []row {
	depts := []string{"eng", "hr", "sales"}
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]row, n)
	for i := range n {
		out[i] = person(
			fmt.Sprintf("person-%02d", i),
			depts[i%len(depts)],
			start.AddDate(0, 0, i*2).Format("2006-01-02"),
		)
	}
	return out
}

