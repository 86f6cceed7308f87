package database

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/locvowork/hr_sql_practice/internal/domain"
	"github.com/locvowork/hr_sql_practice/internal/logger"
)

//go:embed seed.yaml
var seedYAML []byte

// Dataset is the canonical HR sample: 4 regions, 25 countries,
// 7 locations, 11 departments, 19 jobs, 40 employees, 30 dependents.
//
// The manager graph in the dataset is acyclic. That is a data-quality
// expectation, not a schema guarantee: the schema only requires that
// manager_id, when set, points at an existing employee.
type Dataset struct {
	Regions     []domain.Region     `yaml:"regions"`
	Countries   []domain.Country    `yaml:"countries"`
	Locations   []domain.Location   `yaml:"locations"`
	Departments []domain.Department `yaml:"departments"`
	Jobs        []domain.Job        `yaml:"jobs"`
	Employees   []domain.Employee   `yaml:"employees"`
	Dependents  []domain.Dependent  `yaml:"dependents"`
}

// ExpectedCounts returns the per-table row counts of the dataset.
func (d *Dataset) ExpectedCounts() map[string]int {
	return map[string]int{
		"regions":     len(d.Regions),
		"countries":   len(d.Countries),
		"locations":   len(d.Locations),
		"departments": len(d.Departments),
		"jobs":        len(d.Jobs),
		"employees":   len(d.Employees),
		"dependents":  len(d.Dependents),
	}
}

// LoadDataset decodes and validates the embedded sample dataset.
func LoadDataset() (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(seedYAML, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode seed dataset: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// validate applies the loader-owned rules the schema does not enforce:
// job salary bands must be ordered and hire dates must be ISO dates.
func (d *Dataset) validate() error {
	for _, job := range d.Jobs {
		if job.MinSalary > job.MaxSalary {
			return fmt.Errorf("job %d (%s): min_salary %.0f exceeds max_salary %.0f",
				job.JobID, job.JobTitle, job.MinSalary, job.MaxSalary)
		}
	}
	for _, emp := range d.Employees {
		if _, err := time.Parse("2006-01-02", emp.HireDate); err != nil {
			return fmt.Errorf("employee %d: invalid hire_date %q", emp.EmployeeID, emp.HireDate)
		}
	}
	return nil
}

// DataSeeder loads a dataset into the store in dependency order.
type DataSeeder struct {
	store domain.HRStore
}

func NewDataSeeder(store domain.HRStore) *DataSeeder {
	return &DataSeeder{store: store}
}

// Seed loads the dataset entity by entity. Each entity load is
// all-or-nothing; a failure aborts the run and leaves entities loaded
// by earlier steps in place.
func (ds *DataSeeder) Seed(ctx context.Context, data *Dataset) error {
	start := time.Now()

	steps := []struct {
		table string
		load  func() error
	}{
		{"regions", func() error { return ds.store.InsertRegions(ctx, data.Regions) }},
		{"countries", func() error { return ds.store.InsertCountries(ctx, data.Countries) }},
		{"locations", func() error { return ds.store.InsertLocations(ctx, data.Locations) }},
		{"departments", func() error { return ds.store.InsertDepartments(ctx, data.Departments) }},
		{"jobs", func() error { return ds.store.InsertJobs(ctx, data.Jobs) }},
		{"employees", func() error { return ds.store.InsertEmployees(ctx, data.Employees) }},
		{"dependents", func() error { return ds.store.InsertDependents(ctx, data.Dependents) }},
	}

	for _, step := range steps {
		if err := step.load(); err != nil {
			return fmt.Errorf("failed to load %s: %w", step.table, err)
		}
		logger.InfoLog(ctx, "Loaded %s", step.table)
	}

	logger.InfoLog(ctx, "Dataset loaded in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

// VerifyCounts reads back the per-table counts and compares them with
// the dataset.
func (ds *DataSeeder) VerifyCounts(ctx context.Context, data *Dataset) (map[string]int, error) {
	counts, err := ds.store.Counts(ctx)
	if err != nil {
		return nil, err
	}
	for table, want := range data.ExpectedCounts() {
		if counts[table] != want {
			return counts, fmt.Errorf("table %s: expected %d rows, found %d", table, want, counts[table])
		}
	}
	return counts, nil
}
