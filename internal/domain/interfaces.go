package domain

import "context"

// HRStore defines the write-and-count surface over the HR schema.
// There are deliberately no update or delete operations: the dataset
// is loaded once and read-only afterwards.
//
// Loads must follow dependency order (regions -> countries ->
// locations -> departments/jobs -> employees -> dependents) or the
// foreign-key checks fail at insert time.
type HRStore interface {
	// CreateSchema declares all seven tables. It fails with a
	// *SchemaError if any of them already exists.
	CreateSchema(ctx context.Context) error

	InsertRegions(ctx context.Context, rows []Region) error
	InsertCountries(ctx context.Context, rows []Country) error
	InsertLocations(ctx context.Context, rows []Location) error
	InsertDepartments(ctx context.Context, rows []Department) error
	InsertJobs(ctx context.Context, rows []Job) error
	InsertEmployees(ctx context.Context, rows []Employee) error
	InsertDependents(ctx context.Context, rows []Dependent) error

	// Counts returns the row count for every table in the schema.
	Counts(ctx context.Context) (map[string]int, error)
}
