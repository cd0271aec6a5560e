package lessons

// Joins covers INNER, LEFT, RIGHT, FULL OUTER, CROSS, and self joins,
// plus multi-table joins with aggregation.
var Joins = Lesson{
	Name:  "joins",
	Title: "SQL Practice: JOIN Operations",
	Examples: []Example{
		{
			Title: "1. Employees with Departments (INNER JOIN)",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS full_name,
    d.department_name
FROM employees e
INNER JOIN departments d ON e.department_id = d.department_id
ORDER BY e.employee_id
LIMIT 10`,
		},
		{
			Title: "2. High-Salary Employees with Job Titles",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS full_name,
    e.salary,
    j.job_title
FROM employees e
INNER JOIN jobs j ON e.job_id = j.job_id
WHERE e.salary > 8000
ORDER BY e.salary DESC`,
		},
		{
			Title: "3. Employees with Job, Department, and Location",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS full_name,
    j.job_title,
    d.department_name,
    l.city
FROM employees e
INNER JOIN jobs j ON e.job_id = j.job_id
INNER JOIN departments d ON e.department_id = d.department_id
INNER JOIN locations l ON d.location_id = l.location_id
ORDER BY e.employee_id
LIMIT 10`,
		},
		{
			Title: "4. Employees with Managers (LEFT JOIN)",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS employee_name,
    m.first_name || ' ' || m.last_name AS manager_name
FROM employees e
LEFT JOIN employees m ON e.manager_id = m.employee_id
ORDER BY e.employee_id
LIMIT 15`,
			Limit: 15,
		},
		{
			Title: "5. Employees with Dependents (LEFT JOIN)",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS employee_name,
    dep.first_name || ' ' || dep.last_name AS dependent_name,
    dep.relationship
FROM employees e
LEFT JOIN dependents dep ON e.employee_id = dep.employee_id
ORDER BY e.employee_id, dep.dependent_id
LIMIT 20`,
			Limit: 20,
		},
		{
			Title: "6. Departments with Employee Counts",
			Query: `
SELECT
    d.department_id,
    d.department_name,
    COUNT(e.employee_id) AS employee_count
FROM departments d
LEFT JOIN employees e ON d.department_id = e.department_id
GROUP BY d.department_id, d.department_name
ORDER BY employee_count DESC, d.department_name`,
			Limit: 15,
		},
		{
			Title: "7. All Jobs with Employee Counts (RIGHT JOIN)",
			Query: `
SELECT
    j.job_id,
    j.job_title,
    COUNT(e.employee_id) AS employee_count
FROM employees e
RIGHT JOIN jobs j ON e.job_id = j.job_id
GROUP BY j.job_id, j.job_title
ORDER BY employee_count DESC, j.job_title`,
			Limit: 20,
		},
		{
			Title: "8. All Regions and Countries (FULL OUTER JOIN)",
			Query: `
SELECT
    r.region_id,
    r.region_name,
    c.country_id,
    c.country_name
FROM regions r
FULL OUTER JOIN countries c ON r.region_id = c.region_id
ORDER BY r.region_id, c.country_id`,
			Limit: 15,
		},
		{
			Title: "9. Cross Join Example (Limited)",
			Query: `
SELECT
    r.region_name,
    'can expand to' AS relationship,
    c.country_name
FROM regions r
CROSS JOIN countries c
WHERE r.region_id = 1
ORDER BY r.region_name, c.country_name
LIMIT 10`,
		},
		{
			Title: "10. Employee-Manager Relationships (SELF JOIN)",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS employee_name,
    e.salary AS employee_salary,
    m.employee_id AS manager_id,
    m.first_name || ' ' || m.last_name AS manager_name,
    m.salary AS manager_salary
FROM employees e
INNER JOIN employees m ON e.manager_id = m.employee_id
ORDER BY m.employee_id, e.employee_id`,
		},
		{
			Title: "11. Employees Earning More Than Managers",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS employee_name,
    e.salary AS employee_salary,
    m.first_name || ' ' || m.last_name AS manager_name,
    m.salary AS manager_salary,
    e.salary - m.salary AS salary_difference
FROM employees e
INNER JOIN employees m ON e.manager_id = m.employee_id
WHERE e.salary > m.salary
ORDER BY salary_difference DESC`,
		},
		{
			Title: "12. Employee Pairs in Same Department",
			Query: `
SELECT
    e1.first_name || ' ' || e1.last_name AS employee1,
    e2.first_name || ' ' || e2.last_name AS employee2,
    d.department_name
FROM employees e1
INNER JOIN employees e2 ON e1.department_id = e2.department_id
INNER JOIN departments d ON e1.department_id = d.department_id
WHERE e1.employee_id < e2.employee_id
ORDER BY d.department_name, e1.employee_id
LIMIT 15`,
			Limit: 15,
		},
		{
			Title: "13. Complete Employee Information",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS full_name,
    j.job_title,
    d.department_name,
    l.city,
    c.country_name,
    r.region_name,
    e.salary,
    m.first_name || ' ' || m.last_name AS manager_name
FROM employees e
INNER JOIN jobs j ON e.job_id = j.job_id
INNER JOIN departments d ON e.department_id = d.department_id
INNER JOIN locations l ON d.location_id = l.location_id
INNER JOIN countries c ON l.country_id = c.country_id
INNER JOIN regions r ON c.region_id = r.region_id
LEFT JOIN employees m ON e.manager_id = m.employee_id
ORDER BY e.employee_id
LIMIT 10`,
		},
		{
			Title: "14. Department Summary with Geography",
			Query: `
SELECT
    d.department_name,
    l.city,
    c.country_name,
    r.region_name,
    COUNT(e.employee_id) AS employee_count,
    ROUND(AVG(e.salary), 2) AS avg_salary,
    MIN(e.salary) AS min_salary,
    MAX(e.salary) AS max_salary
FROM departments d
INNER JOIN locations l ON d.location_id = l.location_id
INNER JOIN countries c ON l.country_id = c.country_id
INNER JOIN regions r ON c.region_id = r.region_id
LEFT JOIN employees e ON d.department_id = e.department_id
GROUP BY d.department_id, d.department_name, l.city, c.country_name, r.region_name
ORDER BY employee_count DESC`,
			Limit: 15,
		},
		{
			Title: "15. Job Salary Analysis",
			Query: `
SELECT
    j.job_title,
    j.min_salary,
    j.max_salary,
    COUNT(e.employee_id) AS current_employees,
    ROUND(AVG(e.salary), 2) AS avg_current_salary,
    CASE
        WHEN AVG(e.salary) < j.min_salary THEN 'Below Range'
        WHEN AVG(e.salary) > j.max_salary THEN 'Above Range'
        ELSE 'Within Range'
    END AS salary_status
FROM jobs j
LEFT JOIN employees e ON j.job_id = e.job_id
GROUP BY j.job_id, j.job_title, j.min_salary, j.max_salary
ORDER BY current_employees DESC`,
			Limit: 20,
		},
	},
}
