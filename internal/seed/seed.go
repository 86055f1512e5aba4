// Package seed loads the reference data and sample employees a fresh
// dashboard starts with.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/johnwards/hrdash/internal/domain"
)

// EmployeeWriter is the part of an employee store seeding needs.
type EmployeeWriter interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
}

// Seed inserts all standard seed data. It is idempotent: reference rows are
// upserted by value and employees are only added to an empty store.
// Departments must go in before positions.
func Seed(ctx context.Context, db *sql.DB, employees EmployeeWriter) error {
	if err := Departments(ctx, db); err != nil {
		return fmt.Errorf("seed departments: %w", err)
	}
	if err := Positions(ctx, db); err != nil {
		return fmt.Errorf("seed positions: %w", err)
	}
	if err := Employees(ctx, employees); err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}
	return nil
}
