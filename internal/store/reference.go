package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/johnwards/hrdash/internal/domain"
)

// ReferenceStore serves the department and position pick lists.
type ReferenceStore interface {
	Departments(ctx context.Context) ([]*domain.Department, error)
	// Positions returns the positions of the department with the given
	// value, or an empty slice for an unknown department.
	Positions(ctx context.Context, department string) ([]*domain.Position, error)
}

// SQLiteReferenceStore implements ReferenceStore backed by SQLite.
type SQLiteReferenceStore struct {
	db *sql.DB
}

// NewSQLiteReferenceStore creates a new SQLiteReferenceStore.
func NewSQLiteReferenceStore(db *sql.DB) *SQLiteReferenceStore {
	return &SQLiteReferenceStore{db: db}
}

// Departments returns all departments ordered by ID.
func (s *SQLiteReferenceStore) Departments(ctx context.Context) ([]*domain.Department, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, value FROM departments ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	departments := []*domain.Department{}
	for rows.Next() {
		var d domain.Department
		var id int64
		if err := rows.Scan(&id, &d.Name, &d.Value); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		d.ID = strconv.FormatInt(id, 10)
		departments = append(departments, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return departments, nil
}

// Positions returns the positions of one department ordered by ID.
func (s *SQLiteReferenceStore) Positions(ctx context.Context, department string) ([]*domain.Position, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, value FROM positions WHERE department = ? ORDER BY id ASC`, department)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	positions := []*domain.Position{}
	for rows.Next() {
		var p domain.Position
		var id int64
		if err := rows.Scan(&id, &p.Name, &p.Value); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		p.ID = strconv.FormatInt(id, 10)
		positions = append(positions, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return positions, nil
}
