package store

import (
	"time"

	"github.com/johnwards/hrdash/internal/domain"
)

// now returns the current UTC time as a millisecond timestamp.
func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// clone returns a copy of e that shares no memory with it.
func clone(e *domain.Employee) *domain.Employee {
	c := *e
	return &c
}
