package seed

import (
	"context"
	"fmt"

	"github.com/johnwards/hrdash/internal/domain"
)

const seedTimestamp = "2024-01-01T00:00:00.000Z"

// DefaultEmployees returns fresh copies of the sample employees.
func DefaultEmployees() []*domain.Employee {
	return []*domain.Employee{
		{Name: "John Doe", Department: "Engineering", Position: "Software Engineer", HireDate: "2022-01-15", Salary: 85000, CreatedAt: seedTimestamp},
		{Name: "Jane Smith", Department: "Human Resources", Position: "HR Manager", HireDate: "2021-05-10", Salary: 95000, CreatedAt: seedTimestamp},
		{Name: "Michael Johnson", Department: "Marketing", Position: "Marketing Manager", HireDate: "2023-02-20", Salary: 75000, CreatedAt: seedTimestamp},
	}
}

// Employees adds the sample employees if the store is empty.
func Employees(ctx context.Context, w EmployeeWriter) error {
	n, err := w.Count(ctx)
	if err != nil {
		return fmt.Errorf("count employees: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, e := range DefaultEmployees() {
		if _, err := w.Create(ctx, e); err != nil {
			return fmt.Errorf("insert employee %s: %w", e.Name, err)
		}
	}
	return nil
}
