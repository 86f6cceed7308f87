package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/hr_sql_practice/internal/domain"
	"github.com/locvowork/hr_sql_practice/internal/repository"
)

func TestLoadDataset(t *testing.T) {
	data, err := LoadDataset()
	require.NoError(t, err)

	want := map[string]int{
		"regions":     4,
		"countries":   25,
		"locations":   7,
		"departments": 11,
		"jobs":        19,
		"employees":   40,
		"dependents":  30,
	}
	assert.Equal(t, want, data.ExpectedCounts())
}

func TestDatasetManagerReferencesResolve(t *testing.T) {
	data, err := LoadDataset()
	require.NoError(t, err)

	ids := make(map[int]bool, len(data.Employees))
	for _, e := range data.Employees {
		ids[e.EmployeeID] = true
	}

	roots := 0
	for _, e := range data.Employees {
		if e.ManagerID == nil {
			roots++
			continue
		}
		assert.True(t, ids[*e.ManagerID], "employee %d references unknown manager %d", e.EmployeeID, *e.ManagerID)
	}
	assert.Equal(t, 1, roots, "expected exactly one root employee")
}

func TestDatasetValidateRejectsInvertedSalaryBand(t *testing.T) {
	ds := &Dataset{
		Jobs: []domain.Job{{JobID: 1, JobTitle: "Broken", MinSalary: 9000, MaxSalary: 4200}},
	}
	err := ds.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_salary")
}

func TestDatasetValidateRejectsBadHireDate(t *testing.T) {
	ds := &Dataset{
		Employees: []domain.Employee{{EmployeeID: 1, LastName: "X", Email: "x@y", HireDate: "17-06-1987"}},
	}
	err := ds.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hire_date")
}

func TestSeedEndToEnd(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	store := repository.NewHRStore(db)
	require.NoError(t, store.CreateSchema(ctx))

	data, err := LoadDataset()
	require.NoError(t, err)

	seeder := NewDataSeeder(store)
	require.NoError(t, seeder.Seed(ctx, data))

	counts, err := seeder.VerifyCounts(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, data.ExpectedCounts(), counts)
}
