package store

import (
	"context"
	"fmt"

	"github.com/johnwards/hrdash/internal/domain"
	"github.com/johnwards/hrdash/internal/query"
)

// SearchStore answers list queries over employees.
type SearchStore interface {
	Search(ctx context.Context, q query.Query) (*domain.EmployeePage, error)
}

// EngineSearchStore runs the query engine over a snapshot of an
// EmployeeStore. Queries are checked against domain.EmployeeSchema, so an
// unknown field or a type-incompatible operator is an invalid query.
type EngineSearchStore struct {
	employees EmployeeStore
	opts      []query.Option
}

// NewEngineSearchStore creates a search store over employees. Extra options
// are passed to every query execution.
func NewEngineSearchStore(employees EmployeeStore, opts ...query.Option) *EngineSearchStore {
	return &EngineSearchStore{
		employees: employees,
		opts:      append([]query.Option{query.WithSchema(domain.EmployeeSchema)}, opts...),
	}
}

// Search filters, sorts and paginates the current employees. Each call works
// on its own snapshot.
func (s *EngineSearchStore) Search(ctx context.Context, q query.Query) (*domain.EmployeePage, error) {
	snapshot, err := s.employees.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot employees: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := query.Execute(snapshot, q, s.opts...)
	if err != nil {
		return nil, err
	}
	return domain.NewEmployeePage(result), nil
}
