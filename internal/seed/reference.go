package seed

import (
	"context"
	"database/sql"
	"fmt"
)

type departmentDef struct {
	id        int
	name      string
	value     string
	positions []positionDef
}

type positionDef struct {
	id    int
	name  string
	value string
}

var defaultDepartments = []departmentDef{
	{id: 1, name: "Engineering", value: "engineering", positions: []positionDef{
		{id: 1, name: "Software Engineer", value: "software-engineer"},
		{id: 2, name: "Frontend Developer", value: "frontend-developer"},
		{id: 3, name: "Backend Developer", value: "backend-developer"},
		{id: 4, name: "DevOps Engineer", value: "devops-engineer"},
	}},
	{id: 2, name: "Human Resources", value: "hr", positions: []positionDef{
		{id: 5, name: "HR Manager", value: "hr-manager"},
		{id: 6, name: "Recruiter", value: "recruiter"},
		{id: 7, name: "HR Specialist", value: "hr-specialist"},
	}},
	{id: 3, name: "Marketing", value: "marketing", positions: []positionDef{
		{id: 8, name: "Marketing Manager", value: "marketing-manager"},
		{id: 9, name: "Content Writer", value: "content-writer"},
		{id: 10, name: "Social Media Manager", value: "social-media-manager"},
	}},
	{id: 4, name: "Sales", value: "sales", positions: []positionDef{
		{id: 11, name: "Sales Manager", value: "sales-manager"},
		{id: 12, name: "Account Executive", value: "account-executive"},
		{id: 13, name: "Sales Representative", value: "sales-representative"},
	}},
	{id: 5, name: "Finance", value: "finance", positions: []positionDef{
		{id: 14, name: "Finance Manager", value: "finance-manager"},
		{id: 15, name: "Accountant", value: "accountant"},
		{id: 16, name: "Financial Analyst", value: "financial-analyst"},
	}},
}

// Departments upserts the standard departments.
func Departments(ctx context.Context, db *sql.DB) error {
	for _, d := range defaultDepartments {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO departments (id, name, value) VALUES (?, ?, ?)
			 ON CONFLICT(value) DO UPDATE SET name = excluded.name`,
			d.id, d.name, d.value,
		); err != nil {
			return fmt.Errorf("insert department %s: %w", d.value, err)
		}
	}
	return nil
}

// Positions upserts the positions offered by each standard department.
func Positions(ctx context.Context, db *sql.DB) error {
	for _, d := range defaultDepartments {
		for _, p := range d.positions {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO positions (id, department, name, value) VALUES (?, ?, ?, ?)
				 ON CONFLICT(department, value) DO UPDATE SET name = excluded.name`,
				p.id, d.value, p.name, p.value,
			); err != nil {
				return fmt.Errorf("insert position %s/%s: %w", d.value, p.value, err)
			}
		}
	}
	return nil
}
