package database

// migrations is an ordered list of SQL migration groups. Each entry is a slice
// of SQL statements that are executed together in a single transaction. The
// version number is the 1-based index into this slice.
var migrations = [][]string{
	// Migration 1: reference data and employees
	{
		`CREATE TABLE departments (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			value TEXT UNIQUE NOT NULL
		)`,

		`CREATE TABLE positions (
			id INTEGER PRIMARY KEY,
			department TEXT NOT NULL,
			name TEXT NOT NULL,
			value TEXT NOT NULL,
			UNIQUE(department, value),
			FOREIGN KEY (department) REFERENCES departments(value)
		)`,
		`CREATE INDEX idx_positions_department ON positions(department)`,

		`CREATE TABLE employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			department TEXT NOT NULL,
			position TEXT NOT NULL,
			hire_date TEXT NOT NULL,
			salary REAL NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,
	},
}
