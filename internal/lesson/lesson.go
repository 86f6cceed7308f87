// Package lesson holds the SQL practice lessons run against the HR
// schema. Each lesson is a list of titled read-only queries; the
// runner executes them in order and returns the results as string
// tables so the CLIs can print or export them.
package lesson

import (
	"context"
	"database/sql"
	"fmt"
)

// Query is a single titled practice query.
type Query struct {
	Title string
	SQL   string
}

// Lesson groups the queries for one topic.
type Lesson struct {
	Name        string
	Description string
	Queries     []Query
}

// Result is the tabular outcome of one query. NULLs render as "NULL".
type Result struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Lessons returns all lessons in teaching order.
func Lessons() []Lesson {
	return []Lesson{
		selectLesson(),
		joinsLesson(),
		aggregationLesson(),
		subqueriesLesson(),
	}
}

// ByName finds a lesson by its short name.
func ByName(name string) (Lesson, bool) {
	for _, l := range Lessons() {
		if l.Name == name {
			return l, true
		}
	}
	return Lesson{}, false
}

// Run executes every query of a lesson against the handle.
func Run(ctx context.Context, db *sql.DB, l Lesson) ([]Result, error) {
	results := make([]Result, 0, len(l.Queries))
	for _, q := range l.Queries {
		res, err := runQuery(ctx, db, q)
		if err != nil {
			return nil, fmt.Errorf("lesson %s, query %q: %w", l.Name, q.Title, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func runQuery(ctx context.Context, db *sql.DB, q Query) (Result, error) {
	rows, err := db.QueryContext(ctx, q.SQL)
	if err != nil {
		return Result{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Result{}, err
	}

	res := Result{Title: q.Title, Columns: cols}
	for rows.Next() {
		cells := make([]sql.NullString, len(cols))
		dest := make([]interface{}, len(cols))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return Result{}, err
		}

		row := make([]string, len(cols))
		for i, cell := range cells {
			if cell.Valid {
				row[i] = cell.String
			} else {
				row[i] = "NULL"
			}
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Result{}, err
	}
	return res, nil
}
