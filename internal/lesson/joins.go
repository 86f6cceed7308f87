package lesson

// joinsLesson covers inner and outer joins across the entity graph,
// including the self join on the employee manager relation.
func joinsLesson() Lesson {
	return Lesson{
		Name:        "joins",
		Description: "Inner, left and self joins across the HR schema",
		Queries: []Query{
			{
				Title: "Employees with their job titles",
				SQL: `SELECT e.employee_id, e.last_name, j.job_title
FROM employees e
INNER JOIN jobs j ON e.job_id = j.job_id
ORDER BY e.employee_id
LIMIT 10`,
			},
			{
				Title: "Employees with department and city",
				SQL: `SELECT e.last_name, d.department_name, l.city
FROM employees e
INNER JOIN departments d ON e.department_id = d.department_id
INNER JOIN locations l ON d.location_id = l.location_id
ORDER BY e.last_name
LIMIT 10`,
			},
			{
				Title: "Department locations up to the region",
				SQL: `SELECT d.department_name, l.city, c.country_name, r.region_name
FROM departments d
INNER JOIN locations l ON d.location_id = l.location_id
INNER JOIN countries c ON l.country_id = c.country_id
INNER JOIN regions r ON c.region_id = r.region_id
ORDER BY d.department_name`,
			},
			{
				Title: "Countries without locations (LEFT JOIN)",
				SQL: `SELECT c.country_id, c.country_name
FROM countries c
LEFT JOIN locations l ON c.country_id = l.country_id
WHERE l.location_id IS NULL
ORDER BY c.country_id`,
			},
			{
				Title: "Employees and their managers (self join)",
				SQL: `SELECT e.last_name AS employee,
       m.last_name AS manager
FROM employees e
LEFT JOIN employees m ON e.manager_id = m.employee_id
ORDER BY e.employee_id
LIMIT 15`,
			},
			{
				Title: "Employees with their dependents",
				SQL: `SELECT e.last_name AS employee, d.first_name AS dependent, d.relationship
FROM employees e
INNER JOIN dependents d ON d.employee_id = e.employee_id
ORDER BY e.last_name, d.first_name
LIMIT 10`,
			},
		},
	}
}
