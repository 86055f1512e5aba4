package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/johnwards/hrdash/internal/api"
	"github.com/johnwards/hrdash/internal/query"
	"github.com/johnwards/hrdash/internal/store"
)

// APIError is a non-2xx reply from the server.
type APIError struct {
	StatusCode    int
	Category      string
	Message       string
	CorrelationID string
	Details       []api.ErrorDetail
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}

	var env api.Error
	if err := json.Unmarshal(body, &env); err == nil && env.Category != "" {
		e.Category = env.Category
		e.Message = env.Message
		e.CorrelationID = env.CorrelationID
		e.Details = env.Errors
		return e
	}

	e.Message = strings.TrimSpace(string(body))
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "hrdash: %d", e.StatusCode)
	if e.Category != "" {
		fmt.Fprintf(&b, " %s", e.Category)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	for _, d := range e.Details {
		if d.In != "" {
			fmt.Fprintf(&b, "; %s: %s", d.In, d.Message)
		} else {
			fmt.Fprintf(&b, "; %s", d.Message)
		}
	}
	return b.String()
}

// Is lets callers match server categories against the local sentinels:
// INVALID_QUERY matches query.ErrInvalidQuery and OBJECT_NOT_FOUND matches
// store.ErrNotFound.
func (e *APIError) Is(target error) bool {
	switch target {
	case query.ErrInvalidQuery:
		return e.Category == api.CategoryInvalidQuery
	case store.ErrNotFound:
		return e.Category == api.CategoryObjectNotFound
	}
	return false
}
