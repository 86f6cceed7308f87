package lesson

// subqueriesLesson covers scalar, IN, EXISTS and correlated
// subqueries, plus plain and recursive common table expressions.
func subqueriesLesson() Lesson {
	return Lesson{
		Name:        "subqueries",
		Description: "Subqueries and CTEs, including a recursive reporting chain",
		Queries: []Query{
			{
				Title: "Employees earning above the company average (scalar subquery)",
				SQL: `SELECT employee_id, last_name, salary
FROM employees
WHERE salary > (SELECT AVG(salary) FROM employees)
ORDER BY salary DESC`,
			},
			{
				Title: "Employees in departments located in Seattle (IN)",
				SQL: `SELECT employee_id, last_name, department_id
FROM employees
WHERE department_id IN (
    SELECT d.department_id
    FROM departments d
    INNER JOIN locations l ON d.location_id = l.location_id
    WHERE l.city = 'Seattle'
)
ORDER BY employee_id`,
			},
			{
				Title: "Employees with dependents (EXISTS)",
				SQL: `SELECT e.employee_id, e.last_name
FROM employees e
WHERE EXISTS (
    SELECT 1 FROM dependents d WHERE d.employee_id = e.employee_id
)
ORDER BY e.employee_id
LIMIT 10`,
			},
			{
				Title: "Employees above their department average (correlated)",
				SQL: `SELECT e.employee_id, e.last_name, e.department_id, e.salary
FROM employees e
WHERE e.salary > (
    SELECT AVG(e2.salary)
    FROM employees e2
    WHERE e2.department_id = e.department_id
)
ORDER BY e.department_id, e.salary DESC`,
			},
			{
				Title: "Department statistics via a CTE",
				SQL: `WITH dept_stats AS (
    SELECT department_id,
           COUNT(*) AS headcount,
           ROUND(AVG(salary), 2) AS avg_salary
    FROM employees
    GROUP BY department_id
)
SELECT d.department_name, s.headcount, s.avg_salary
FROM dept_stats s
INNER JOIN departments d ON d.department_id = s.department_id
ORDER BY s.avg_salary DESC`,
			},
			{
				Title: "Reporting chain from the president (recursive CTE)",
				SQL: `WITH RECURSIVE reporting_chain AS (
    SELECT employee_id, last_name, manager_id, 1 AS level
    FROM employees
    WHERE manager_id IS NULL
    UNION ALL
    SELECT e.employee_id, e.last_name, e.manager_id, rc.level + 1
    FROM employees e
    INNER JOIN reporting_chain rc ON e.manager_id = rc.employee_id
)
SELECT level, employee_id, last_name
FROM reporting_chain
ORDER BY level, employee_id`,
			},
		},
	}
}
