package lesson

// selectLesson covers basic SELECT statements: projections, aliases,
// expressions, filtering, sorting and limiting.
func selectLesson() Lesson {
	return Lesson{
		Name:        "select",
		Description: "Basic SELECT statements, WHERE, ORDER BY and LIMIT",
		Queries: []Query{
			{
				Title: "All regions",
				SQL:   `SELECT * FROM regions`,
			},
			{
				Title: "Column aliases",
				SQL: `SELECT region_id AS id, region_name AS name
FROM regions
ORDER BY id`,
			},
			{
				Title: "Expressions: full name and annual salary",
				SQL: `SELECT employee_id,
       first_name || ' ' || last_name AS full_name,
       salary * 12 AS annual_salary
FROM employees
ORDER BY annual_salary DESC
LIMIT 10`,
			},
			{
				Title: "Filtering with WHERE",
				SQL: `SELECT employee_id, last_name, salary
FROM employees
WHERE salary > 10000
ORDER BY salary DESC`,
			},
			{
				Title: "Employees hired in the 1990s",
				SQL: `SELECT employee_id, last_name, hire_date
FROM employees
WHERE hire_date BETWEEN '1990-01-01' AND '1999-12-31'
ORDER BY hire_date
LIMIT 10`,
			},
			{
				Title: "Distinct job ids in use",
				SQL: `SELECT DISTINCT job_id
FROM employees
ORDER BY job_id`,
			},
		},
	}
}
