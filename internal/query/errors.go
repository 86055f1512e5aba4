package query

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery is matched by every error caused by a malformed query
// descriptor.
var ErrInvalidQuery = errors.New("invalid query")

// InvalidQueryError reports which part of a query was rejected.
type InvalidQueryError struct {
	Param   string // Query part that failed ("page", "sort", a field name...)
	Message string
}

// Error implements the error interface.
func (e *InvalidQueryError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid query [%s]: %s", e.Param, e.Message)
	}
	return "invalid query: " + e.Message
}

// Unwrap makes errors.Is(err, ErrInvalidQuery) hold.
func (e *InvalidQueryError) Unwrap() error {
	return ErrInvalidQuery
}
