package query

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Option configures a single Execute call.
type Option func(*options)

type options struct {
	schema Schema
	locale language.Tag
}

// WithSchema turns on strict mode: filter and sort fields must be declared
// in s and operators must fit the declared kind.
func WithSchema(s Schema) Option {
	return func(o *options) { o.schema = s }
}

// WithLocale sets the collation locale used for string ordering.
func WithLocale(tag language.Tag) Option {
	return func(o *options) { o.locale = tag }
}

// Execute filters, sorts and paginates records. The input slice and its
// elements are never modified; the result holds a freshly allocated slice.
//
// Data anomalies (missing fields, unparsable dates or numbers) exclude the
// record from a filter clause instead of failing. Only a malformed query
// returns an error, and that error matches ErrInvalidQuery.
func Execute[R Record](records []R, q Query, opts ...Option) (*Result[R], error) {
	o := options{locale: language.English}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.schema.Validate(q); err != nil {
		return nil, err
	}

	// Collators and casers keep internal buffers, so each call gets its own.
	fold := cases.Fold()
	matchers := make([]matcher, len(q.Filters))
	for i, f := range q.Filters {
		matchers[i] = compileFilter(f, fold)
	}

	filtered := make([]R, 0, len(records))
	for _, rec := range records {
		if matchAll(rec, matchers) {
			filtered = append(filtered, rec)
		}
	}

	if q.Sort != nil {
		filtered = sortRecords(filtered, *q.Sort, collate.New(o.locale))
	}

	total := len(filtered)
	size := q.Page.Size
	filled := total / size
	if total%size != 0 {
		filled++
	}
	totalPages := max(1, filled)

	// Pages past the last filled one are empty. Checking the page index
	// before multiplying keeps start within [0, total).
	page := []R{}
	if q.Page.Page-1 < filled {
		start := (q.Page.Page - 1) * size
		end := start + min(size, total-start)
		page = make([]R, end-start)
		copy(page, filtered[start:end])
	}

	return &Result[R]{
		Records:      page,
		TotalRecords: total,
		TotalPages:   totalPages,
		CurrentPage:  q.Page.Page,
	}, nil
}

func matchAll(rec Record, matchers []matcher) bool {
	for _, m := range matchers {
		if !m(rec) {
			return false
		}
	}
	return true
}

// keyed pairs a record with its sort key so Field is read once per record.
type keyed[R Record] struct {
	rec R
	key Value
	ok  bool
}

func sortRecords[R Record](records []R, by SortSpec, coll *collate.Collator) []R {
	rows := make([]keyed[R], len(records))
	for i, rec := range records {
		v, ok := rec.Field(by.Field)
		rows[i] = keyed[R]{rec: rec, key: v, ok: ok}
	}

	sign := 1
	if by.Direction == Descending {
		sign = -1
	}
	slices.SortStableFunc(rows, func(a, b keyed[R]) int {
		return sign * compareKeys(coll, a.key, a.ok, b.key, b.ok)
	})

	out := make([]R, len(rows))
	for i, row := range rows {
		out[i] = row.rec
	}
	return out
}

// compareKeys orders two sort keys. A missing key is lower than any present
// key; keys of different kinds compare equal.
func compareKeys(coll *collate.Collator, a Value, aok bool, b Value, bok bool) int {
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	if a.kind != b.kind {
		return 0
	}
	switch a.kind {
	case KindString:
		return coll.CompareString(a.s, b.s)
	case KindNumber:
		return cmp.Compare(a.n, b.n)
	case KindDate:
		return a.t.Compare(b.t)
	}
	return 0
}
