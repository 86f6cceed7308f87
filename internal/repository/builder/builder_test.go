package builder

import (
	"strings"
	"testing"
)

func TestSQLBuilder(t *testing.T) {
	t.Run("Select", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("region_id", "region_name").From("regions").Where("region_id = ?", 1).Build()
		expected := "SELECT region_id, region_name FROM regions WHERE region_id = ?"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 || args[0] != 1 {
			t.Errorf("expected args [1], got %v", args)
		}
	})

	t.Run("Insert", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Insert("regions", "region_id", "region_name").Values(1, "Europe").Build()
		expected := "INSERT INTO regions (region_id, region_name) VALUES (?, ?)"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 2 || args[0] != 1 || args[1] != "Europe" {
			t.Errorf("expected args [1 Europe], got %v", args)
		}
	})

	t.Run("Join", func(t *testing.T) {
		b := NewSQLBuilder()
		query, _ := b.Select("e.last_name", "j.job_title").
			From("employees e").
			Join("INNER", "jobs j", "e.job_id = j.job_id").
			OrderBy("e.last_name ASC").
			Build()
		expected := "SELECT e.last_name, j.job_title FROM employees e INNER JOIN jobs j ON e.job_id = j.job_id ORDER BY e.last_name ASC"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
	})

	t.Run("GroupByHaving", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("department_id", "COUNT(*)").
			From("employees").
			GroupBy("department_id").
			Having("COUNT(*) > ?", 5).
			Build()
		expected := "SELECT department_id, COUNT(*) FROM employees GROUP BY department_id HAVING COUNT(*) > ?"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 || args[0] != 5 {
			t.Errorf("expected args [5], got %v", args)
		}
	})

	t.Run("LimitOffset", func(t *testing.T) {
		b := NewSQLBuilder()
		query, _ := b.Select("*").From("employees").OrderBy("employee_id").Limit(10).Offset(20).Build()
		if !strings.HasSuffix(query, "ORDER BY employee_id LIMIT 10 OFFSET 20") {
			t.Errorf("unexpected query %s", query)
		}
	})
}

func TestBuildSafe(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b := NewSQLBuilder()
		_, args, err := b.Select("*").
			From("employees").
			Where("salary > ?", 10000).
			Where("department_id = ?", 9).
			BuildSafe()
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if len(args) != 2 {
			t.Errorf("expected 2 args, got %d", len(args))
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		b := NewSQLBuilder()
		_, _, err := b.Select("*").
			From("employees").
			Where("salary > ? AND job_id = ?", 10000).
			BuildSafe()
		if err == nil {
			t.Error("expected placeholder mismatch error")
		}
	})
}
