package query

import (
	"cmp"
	"strings"

	"golang.org/x/text/cases"
)

type matcher func(Record) bool

// compileFilter parses the clause value once and returns the predicate.
// The operator has already been validated.
func compileFilter(f FilterClause, fold cases.Caser) matcher {
	switch f.Op {
	case OpContains:
		needle := fold.String(f.Value)
		return func(rec Record) bool {
			v, ok := rec.Field(f.Field)
			if !ok || v.kind != KindString {
				return false
			}
			return strings.Contains(fold.String(v.s), needle)
		}
	case OpEquals:
		return equalsMatcher(f)
	case OpGTE:
		return rangeMatcher(f, func(c int) bool { return c >= 0 })
	case OpLTE:
		return rangeMatcher(f, func(c int) bool { return c <= 0 })
	}
	return func(Record) bool { return false }
}

func equalsMatcher(f FilterClause) matcher {
	num, numOK := parseNumber(f.Value)
	date, dateOK := ParseDate(f.Value)

	return func(rec Record) bool {
		v, ok := rec.Field(f.Field)
		if !ok {
			return false
		}
		switch v.kind {
		case KindString:
			return v.s == f.Value
		case KindNumber:
			return numOK && v.n == num
		case KindDate:
			return dateOK && v.t.Equal(date)
		}
		return false
	}
}

// rangeMatcher builds gte/lte. keep receives the comparison of the record
// value against the clause value.
func rangeMatcher(f FilterClause, keep func(int) bool) matcher {
	num, numOK := parseNumber(f.Value)
	date, dateOK := ParseDate(f.Value)

	return func(rec Record) bool {
		v, ok := rec.Field(f.Field)
		if !ok {
			return false
		}
		if v.kind == KindNumber {
			if !numOK {
				return false
			}
			return keep(cmp.Compare(v.n, num))
		}
		if !dateOK {
			return false
		}
		d, ok := asDate(v)
		if !ok {
			return false
		}
		return keep(d.Compare(date))
	}
}
