package store

import (
	"context"

	"github.com/johnwards/hrdash/internal/domain"
)

// EmployeeStore defines the interface for employee persistence. Returned
// employees are copies; callers may modify them freely.
type EmployeeStore interface {
	// Create stores e and returns the stored record with its ID and
	// creation time filled in. e itself is not modified.
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	// All returns a snapshot of every employee in insertion order.
	All(ctx context.Context) ([]*domain.Employee, error)
	Count(ctx context.Context) (int, error)
	// Reset removes every employee and restarts ID assignment.
	Reset(ctx context.Context) error
}
