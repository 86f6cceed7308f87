package lesson_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/hr_sql_practice/internal/database"
	"github.com/locvowork/hr_sql_practice/internal/lesson"
	"github.com/locvowork/hr_sql_practice/internal/repository"
)

func seededDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := repository.NewHRStore(db)
	require.NoError(t, store.CreateSchema(ctx))

	data, err := database.LoadDataset()
	require.NoError(t, err)
	require.NoError(t, database.NewDataSeeder(store).Seed(ctx, data))

	return db
}

func TestLessonsRegistry(t *testing.T) {
	names := []string{"select", "joins", "aggregation", "subqueries"}
	lessons := lesson.Lessons()
	require.Len(t, lessons, len(names))
	for i, name := range names {
		assert.Equal(t, name, lessons[i].Name)
		assert.NotEmpty(t, lessons[i].Queries)
	}

	_, ok := lesson.ByName("joins")
	assert.True(t, ok)
	_, ok = lesson.ByName("window-functions")
	assert.False(t, ok)
}

func TestAllLessonsRun(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	for _, l := range lesson.Lessons() {
		results, err := lesson.Run(ctx, db, l)
		require.NoError(t, err, "lesson %s", l.Name)
		require.Len(t, results, len(l.Queries), "lesson %s", l.Name)
		for _, res := range results {
			assert.NotEmpty(t, res.Columns, "lesson %s, %s", l.Name, res.Title)
			assert.NotEmpty(t, res.Rows, "lesson %s, %s", l.Name, res.Title)
		}
	}
}

func TestAggregationTotals(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	l, ok := lesson.ByName("aggregation")
	require.True(t, ok)

	results, err := lesson.Run(ctx, db, l)
	require.NoError(t, err)

	// First query: company-wide statistics over all 40 employees.
	stats := results[0]
	require.Len(t, stats.Rows, 1)
	assert.Equal(t, "employees", stats.Columns[0])
	assert.Equal(t, "40", stats.Rows[0][0])
}

func TestRecursiveReportingChain(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	l, ok := lesson.ByName("subqueries")
	require.True(t, ok)

	results, err := lesson.Run(ctx, db, l)
	require.NoError(t, err)

	chain := results[len(results)-1]
	require.NotEmpty(t, chain.Rows)

	// The chain is rooted at the single employee without a manager
	// and covers the whole company.
	assert.Equal(t, []string{"1", "100", "King"}, chain.Rows[0])
	assert.Len(t, chain.Rows, 40)
}

func TestSelfJoinKeepsRootEmployee(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	l, ok := lesson.ByName("joins")
	require.True(t, ok)

	results, err := lesson.Run(ctx, db, l)
	require.NoError(t, err)

	// Fifth query: employees with their managers via LEFT self join;
	// the president appears with a NULL manager.
	selfJoin := results[4]
	require.NotEmpty(t, selfJoin.Rows)
	assert.Equal(t, []string{"King", "NULL"}, selfJoin.Rows[0])
}

func TestFormatTable(t *testing.T) {
	res := lesson.Result{
		Title:   "All regions",
		Columns: []string{"region_id", "region_name"},
		Rows: [][]string{
			{"1", "Europe"},
			{"2", "Americas"},
		},
	}
	out := lesson.FormatTable(res)
	assert.Contains(t, out, "All regions")
	assert.Contains(t, out, "region_id")
	assert.Contains(t, out, "Americas")
}
