package query

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the type carried by a Value.
type Kind int

const (
	// KindString is free text compared with the collator.
	KindString Kind = iota + 1
	// KindNumber is a float64.
	KindNumber
	// KindDate is a calendar date; the time of day is discarded.
	KindDate
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Value is a single typed field value of a Record.
type Value struct {
	kind Kind
	s    string
	n    float64
	t    time.Time
}

// String wraps s as a string Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Number wraps n as a number Value.
func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

// Date wraps t as a date Value truncated to its calendar day.
func Date(t time.Time) Value {
	return Value{kind: KindDate, t: day(t)}
}

// Kind reports the type of the value.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload. It is empty for non-string values.
func (v Value) Str() string { return v.s }

// Num returns the number payload. It is zero for non-number values.
func (v Value) Num() float64 { return v.n }

// Time returns the date payload. It is the zero time for non-date values.
func (v Value) Time() time.Time { return v.t }

// dateLayouts are tried in order when a string has to be read as a date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate reads s as a calendar date. Accepted forms are YYYY-MM-DD and
// the RFC 3339 timestamp variants; the time of day is dropped.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return day(t), true
		}
	}
	return time.Time{}, false
}

// day keeps the calendar date as written in t's own location.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// asDate normalises a record value to a date. String values are parsed.
func asDate(v Value) (time.Time, bool) {
	switch v.kind {
	case KindDate:
		return v.t, true
	case KindString:
		return ParseDate(v.s)
	default:
		return time.Time{}, false
	}
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
