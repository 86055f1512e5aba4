package domain

import (
	"github.com/johnwards/hrdash/internal/query"
)

// Employee is one HR record.
type Employee struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	HireDate   string  `json:"hireDate"` // YYYY-MM-DD
	Salary     float64 `json:"salary"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

// EmployeeSchema lists the queryable employee fields and their kinds.
var EmployeeSchema = query.Schema{
	"id":         query.KindString,
	"name":       query.KindString,
	"department": query.KindString,
	"position":   query.KindString,
	"hireDate":   query.KindDate,
	"salary":     query.KindNumber,
	"createdAt":  query.KindDate,
}

// Field exposes the employee to the query engine. A hire date that does not
// parse is returned as a plain string, which date filters then exclude.
func (e *Employee) Field(name string) (query.Value, bool) {
	switch name {
	case "id":
		return query.String(e.ID), true
	case "name":
		return query.String(e.Name), true
	case "department":
		return query.String(e.Department), true
	case "position":
		return query.String(e.Position), true
	case "hireDate":
		return dateField(e.HireDate)
	case "salary":
		return query.Number(e.Salary), true
	case "createdAt":
		return dateField(e.CreatedAt)
	}
	return query.Value{}, false
}

func dateField(s string) (query.Value, bool) {
	if s == "" {
		return query.Value{}, false
	}
	if t, ok := query.ParseDate(s); ok {
		return query.Date(t), true
	}
	return query.String(s), true
}

// CreateEmployeeInput is the body of an employee creation request.
type CreateEmployeeInput struct {
	Name       string   `json:"name" validate:"required,max=200"`
	Department string   `json:"department" validate:"required,max=100"`
	Position   string   `json:"position" validate:"required,max=100"`
	HireDate   string   `json:"hireDate" validate:"required,datetime=2006-01-02"`
	Salary     *float64 `json:"salary" validate:"required,gte=0"`
}

// Employee builds the record to store from a validated input.
func (in *CreateEmployeeInput) Employee() *Employee {
	e := &Employee{
		Name:       in.Name,
		Department: in.Department,
		Position:   in.Position,
		HireDate:   in.HireDate,
	}
	if in.Salary != nil {
		e.Salary = *in.Salary
	}
	return e
}

// EmployeePage is the list endpoint response.
type EmployeePage struct {
	Employees      []*Employee `json:"employees"`
	TotalEmployees int         `json:"totalEmployees"`
	TotalPages     int         `json:"totalPages"`
	CurrentPage    int         `json:"currentPage"`
}

// NewEmployeePage converts a query result into the wire shape.
func NewEmployeePage(r *query.Result[*Employee]) *EmployeePage {
	return &EmployeePage{
		Employees:      r.Records,
		TotalEmployees: r.TotalRecords,
		TotalPages:     r.TotalPages,
		CurrentPage:    r.CurrentPage,
	}
}
