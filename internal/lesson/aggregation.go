package lesson

// aggregationLesson covers the aggregate functions, GROUP BY and
// HAVING.
func aggregationLesson() Lesson {
	return Lesson{
		Name:        "aggregation",
		Description: "COUNT, AVG, MIN, MAX, SUM with GROUP BY and HAVING",
		Queries: []Query{
			{
				Title: "Company-wide salary statistics",
				SQL: `SELECT COUNT(*) AS employees,
       ROUND(AVG(salary), 2) AS avg_salary,
       MIN(salary) AS min_salary,
       MAX(salary) AS max_salary,
       SUM(salary) AS total_payroll
FROM employees`,
			},
			{
				Title: "Headcount per department",
				SQL: `SELECT d.department_name, COUNT(e.employee_id) AS headcount
FROM departments d
LEFT JOIN employees e ON e.department_id = d.department_id
GROUP BY d.department_id, d.department_name
ORDER BY headcount DESC, d.department_name`,
			},
			{
				Title: "Average salary per job",
				SQL: `SELECT j.job_title, ROUND(AVG(e.salary), 2) AS avg_salary
FROM jobs j
INNER JOIN employees e ON e.job_id = j.job_id
GROUP BY j.job_id, j.job_title
ORDER BY avg_salary DESC`,
			},
			{
				Title: "Departments with more than five employees (HAVING)",
				SQL: `SELECT d.department_name, COUNT(*) AS headcount
FROM departments d
INNER JOIN employees e ON e.department_id = d.department_id
GROUP BY d.department_id, d.department_name
HAVING COUNT(*) > 5
ORDER BY headcount DESC`,
			},
			{
				Title: "Hires per year",
				SQL: `SELECT strftime('%Y', hire_date) AS hire_year, COUNT(*) AS hires
FROM employees
GROUP BY hire_year
ORDER BY hire_year`,
			},
			{
				Title: "Employees per country",
				SQL: `SELECT c.country_name, COUNT(e.employee_id) AS employees
FROM countries c
INNER JOIN locations l ON l.country_id = c.country_id
INNER JOIN departments d ON d.location_id = l.location_id
INNER JOIN employees e ON e.department_id = d.department_id
GROUP BY c.country_id, c.country_name
ORDER BY employees DESC`,
			},
		},
	}
}
