package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/locvowork/hr_sql_practice/internal/domain"
	"github.com/locvowork/hr_sql_practice/internal/repository/builder"
)

type hrRepository struct {
	db *sql.DB
}

// NewHRStore creates a store over an open database handle. The caller
// owns the handle lifecycle.
func NewHRStore(db *sql.DB) domain.HRStore {
	return &hrRepository{db: db}
}

func (r *hrRepository) InsertRegions(ctx context.Context, rows []domain.Region) error {
	return r.insertBatch(ctx, "regions", len(rows), func(tx *sql.Tx, i int) error {
		row := rows[i]
		if row.RegionName == "" {
			return requiredField("regions", "region_name")
		}
		b := builder.NewSQLBuilder()
		query, args := b.Insert("regions", "region_id", "region_name").
			Values(row.RegionID, row.RegionName).
			Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return classify("regions", err)
	})
}

func (r *hrRepository) InsertCountries(ctx context.Context, rows []domain.Country) error {
	return r.insertBatch(ctx, "countries", len(rows), func(tx *sql.Tx, i int) error {
		row := rows[i]
		if row.CountryID == "" {
			return requiredField("countries", "country_id")
		}
		if row.CountryName == "" {
			return requiredField("countries", "country_name")
		}
		b := builder.NewSQLBuilder()
		query, args := b.Insert("countries", "country_id", "country_name", "region_id").
			Values(row.CountryID, row.CountryName, row.RegionID).
			Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return classify("countries", err)
	})
}

func (r *hrRepository) InsertLocations(ctx context.Context, rows []domain.Location) error {
	return r.insertBatch(ctx, "locations", len(rows), func(tx *sql.Tx, i int) error {
		row := rows[i]
		if row.City == "" {
			return requiredField("locations", "city")
		}
		if row.CountryID == "" {
			return requiredField("locations", "country_id")
		}
		b := builder.NewSQLBuilder()
		query, args := b.Insert("locations",
			"location_id", "street_address", "postal_code", "city", "state_province", "country_id").
			Values(row.LocationID, nullable(row.StreetAddress), nullable(row.PostalCode),
				row.City, nullable(row.StateProvince), row.CountryID).
			Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return classify("locations", err)
	})
}

func (r *hrRepository) InsertDepartments(ctx context.Context, rows []domain.Department) error {
	return r.insertBatch(ctx, "departments", len(rows), func(tx *sql.Tx, i int) error {
		row := rows[i]
		if row.DepartmentName == "" {
			return requiredField("departments", "department_name")
		}
		b := builder.NewSQLBuilder()
		query, args := b.Insert("departments", "department_id", "department_name", "location_id").
			Values(row.DepartmentID, row.DepartmentName, row.LocationID).
			Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return classify("departments", err)
	})
}

func (r *hrRepository) InsertJobs(ctx context.Context, rows []domain.Job) error {
	return r.insertBatch(ctx, "jobs", len(rows), func(tx *sql.Tx, i int) error {
		row := rows[i]
		if row.JobTitle == "" {
			return requiredField("jobs", "job_title")
		}
		b := builder.NewSQLBuilder()
		query, args := b.Insert("jobs", "job_id", "job_title", "min_salary", "max_salary").
			Values(row.JobID, row.JobTitle, row.MinSalary, row.MaxSalary).
			Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return classify("jobs", err)
	})
}

func (r *hrRepository) InsertEmployees(ctx context.Context, rows []domain.Employee) error {
	return r.insertBatch(ctx, "employees", len(rows), func(tx *sql.Tx, i int) error {
		row := rows[i]
		if row.LastName == "" {
			return requiredField("employees", "last_name")
		}
		if row.Email == "" {
			return requiredField("employees", "email")
		}
		if row.HireDate == "" {
			return requiredField("employees", "hire_date")
		}
		// manager_id stays NULL for root employees
		var managerID interface{}
		if row.ManagerID != nil {
			managerID = *row.ManagerID
		}
		b := builder.NewSQLBuilder()
		query, args := b.Insert("employees",
			"employee_id", "first_name", "last_name", "email", "phone_number",
			"hire_date", "job_id", "salary", "manager_id", "department_id").
			Values(row.EmployeeID, nullable(row.FirstName), row.LastName, row.Email,
				nullable(row.PhoneNumber), row.HireDate, row.JobID, row.Salary,
				managerID, row.DepartmentID).
			Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return classify("employees", err)
	})
}

func (r *hrRepository) InsertDependents(ctx context.Context, rows []domain.Dependent) error {
	return r.insertBatch(ctx, "dependents", len(rows), func(tx *sql.Tx, i int) error {
		row := rows[i]
		if row.FirstName == "" {
			return requiredField("dependents", "first_name")
		}
		if row.LastName == "" {
			return requiredField("dependents", "last_name")
		}
		if row.Relationship == "" {
			return requiredField("dependents", "relationship")
		}
		b := builder.NewSQLBuilder()
		query, args := b.Insert("dependents",
			"dependent_id", "first_name", "last_name", "relationship", "employee_id").
			Values(row.DependentID, row.FirstName, row.LastName, row.Relationship, row.EmployeeID).
			Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return classify("dependents", err)
	})
}

func (r *hrRepository) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(Tables))
	for _, table := range Tables {
		b := builder.NewSQLBuilder()
		query, args := b.Select("COUNT(*)").From(table).Build()
		var n int
		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

// insertBatch runs the per-row insert function inside one transaction,
// so each entity load is all-or-nothing. Entities loaded by earlier
// calls are unaffected by a later failure.
func (r *hrRepository) insertBatch(ctx context.Context, table string, n int, insert func(tx *sql.Tx, i int) error) error {
	if n == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin %s load: %w", table, err)
	}

	for i := 0; i < n; i++ {
		if err := insert(tx, i); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s load: %w", table, err)
	}
	return nil
}

// nullable maps the empty string to NULL for optional text columns.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func requiredField(table, field string) error {
	return &domain.ConstraintViolation{
		Table:  table,
		Kind:   domain.ViolationRequiredField,
		Detail: field + " is required",
	}
}

// classify maps SQLite constraint errors onto the domain taxonomy.
// The driver exposes constraint failures through the error text, so
// matching on the canonical messages keeps this driver-portable.
func classify(table string, err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint"):
		return &domain.ConstraintViolation{Table: table, Kind: domain.ViolationPrimaryKey, Err: err}
	case strings.Contains(msg, "FOREIGN KEY constraint"):
		return &domain.ConstraintViolation{Table: table, Kind: domain.ViolationForeignKey, Err: err}
	case strings.Contains(msg, "NOT NULL constraint"):
		return &domain.ConstraintViolation{Table: table, Kind: domain.ViolationRequiredField, Err: err}
	default:
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
}
