package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/johnwards/hrdash/internal/domain"
)

// SQLiteEmployeeStore implements EmployeeStore backed by SQLite.
type SQLiteEmployeeStore struct {
	db *sql.DB
}

// NewSQLiteEmployeeStore creates a new SQLiteEmployeeStore.
func NewSQLiteEmployeeStore(db *sql.DB) *SQLiteEmployeeStore {
	return &SQLiteEmployeeStore{db: db}
}

const employeeColumns = `id, name, department, position, hire_date, salary, created_at`

// Create inserts a new employee.
func (s *SQLiteEmployeeStore) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	stored := clone(e)
	if stored.CreatedAt == "" {
		stored.CreatedAt = now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO employees (name, department, position, hire_date, salary, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		stored.Name, stored.Department, stored.Position, stored.HireDate, stored.Salary, stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	stored.ID = strconv.FormatInt(id, 10)
	return stored, nil
}

// Get retrieves a single employee by ID.
func (s *SQLiteEmployeeStore) Get(ctx context.Context, id string) (*domain.Employee, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, ErrNotFound
	}

	e, err := scanEmployee(s.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = ?`, n))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// All returns every employee ordered by ID, which is insertion order.
func (s *SQLiteEmployeeStore) All(ctx context.Context) ([]*domain.Employee, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer func() { _ = rows.Close() }()

	employees := []*domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return employees, nil
}

// Count returns the number of employees.
func (s *SQLiteEmployeeStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

// Reset deletes every employee and restarts the ID sequence.
func (s *SQLiteEmployeeStore) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("clear employees: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'employees'`); err != nil {
		return fmt.Errorf("reset employee ids: %w", err)
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var e domain.Employee
	var id int64
	if err := row.Scan(&id, &e.Name, &e.Department, &e.Position, &e.HireDate, &e.Salary, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.ID = strconv.FormatInt(id, 10)
	return &e, nil
}
