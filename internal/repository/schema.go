package repository

import (
	"context"
	"fmt"

	"github.com/locvowork/hr_sql_practice/internal/domain"
)

// Tables lists every table in the schema in dependency order: parents
// before children, so the same order works for both DDL and bulk load.
var Tables = []string{
	"regions",
	"countries",
	"locations",
	"departments",
	"jobs",
	"employees",
	"dependents",
}

// tableDDL holds one CREATE TABLE statement per table, keyed by name.
// No IF NOT EXISTS: redefining an existing table is a schema error and
// must surface as one.
var tableDDL = map[string]string{
	"regions": `
CREATE TABLE regions (
  region_id INTEGER PRIMARY KEY,
  region_name TEXT NOT NULL
)`,
	"countries": `
CREATE TABLE countries (
  country_id TEXT PRIMARY KEY,
  country_name TEXT NOT NULL,
  region_id INTEGER NOT NULL REFERENCES regions (region_id)
)`,
	"locations": `
CREATE TABLE locations (
  location_id INTEGER PRIMARY KEY,
  street_address TEXT,
  postal_code TEXT,
  city TEXT NOT NULL,
  state_province TEXT,
  country_id TEXT NOT NULL REFERENCES countries (country_id)
)`,
	"departments": `
CREATE TABLE departments (
  department_id INTEGER PRIMARY KEY,
  department_name TEXT NOT NULL,
  location_id INTEGER NOT NULL REFERENCES locations (location_id)
)`,
	"jobs": `
CREATE TABLE jobs (
  job_id INTEGER PRIMARY KEY,
  job_title TEXT NOT NULL,
  min_salary REAL NOT NULL,
  max_salary REAL NOT NULL
)`,
	"employees": `
CREATE TABLE employees (
  employee_id INTEGER PRIMARY KEY,
  first_name TEXT,
  last_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone_number TEXT,
  hire_date TEXT NOT NULL,
  job_id INTEGER NOT NULL REFERENCES jobs (job_id),
  salary REAL NOT NULL,
  manager_id INTEGER REFERENCES employees (employee_id),
  department_id INTEGER NOT NULL REFERENCES departments (department_id)
)`,
	"dependents": `
CREATE TABLE dependents (
  dependent_id INTEGER PRIMARY KEY,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  relationship TEXT NOT NULL,
  employee_id INTEGER NOT NULL REFERENCES employees (employee_id)
)`,
}

// CreateSchema declares all seven tables. It fails with a
// *domain.SchemaError if any of them is already defined, before
// creating anything, so a half-declared schema is never left behind
// by a duplicate run.
func (r *hrRepository) CreateSchema(ctx context.Context) error {
	existing, err := r.existingTables(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	for _, name := range Tables {
		if existing[name] {
			return &domain.SchemaError{Table: name}
		}
	}

	for _, name := range Tables {
		if _, err := r.db.ExecContext(ctx, tableDDL[name]); err != nil {
			return &domain.SchemaError{Table: name, Err: err}
		}
	}
	return nil
}

func (r *hrRepository) existingTables(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		existing[name] = true
	}
	return existing, rows.Err()
}
