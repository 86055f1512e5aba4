package store

import (
	"database/sql"
	"fmt"
)

// Employee storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Store holds all sub-stores used by the application.
type Store struct {
	DB        *sql.DB
	Employees EmployeeStore
	Search    SearchStore
	Reference ReferenceStore
}

// New creates a Store whose employees live in the named backend. Reference
// data always lives in db.
func New(db *sql.DB, backend string) (*Store, error) {
	var employees EmployeeStore
	switch backend {
	case BackendSQLite, "":
		employees = NewSQLiteEmployeeStore(db)
	case BackendMemory:
		employees = NewMemoryEmployeeStore()
	default:
		return nil, fmt.Errorf("store backend %q: %w", backend, ErrUnknownBackend)
	}

	return &Store{
		DB:        db,
		Employees: employees,
		Search:    NewEngineSearchStore(employees),
		Reference: NewSQLiteReferenceStore(db),
	}, nil
}
