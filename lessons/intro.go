package lessons

// Intro covers basic SELECT statements: filtering, sorting, limiting,
// DISTINCT, and CASE expressions.
var Intro = Lesson{
	Name:  "intro",
	Title: "SQL Practice: Introduction and SELECT Statements",
	Examples: []Example{
		{
			Title: "Basic Query",
			Query: "SELECT 'Hello from DuckDB!' AS message, CURRENT_DATE AS today",
		},
		{
			Title: "1. All Regions",
			Query: "SELECT * FROM regions",
		},
		{
			Title: "2. Specific Columns from Regions",
			Query: "SELECT region_id, region_name FROM regions",
		},
		{
			Title: "3. Column Aliases",
			Query: "SELECT region_id AS id, region_name AS name FROM regions",
		},
		{
			Title: "4. Expressions and Concatenation",
			Query: `
SELECT
    employee_id,
    first_name || ' ' || last_name AS full_name,
    salary,
    salary * 12 AS annual_salary
FROM employees
LIMIT 5`,
		},
		{
			Title: "5. Countries in Region 1 (Europe)",
			Query: "SELECT * FROM countries WHERE region_id = 1",
			Limit: 15,
		},
		{
			Title: "6. Jobs with 'Manager' in Title",
			Query: "SELECT * FROM jobs WHERE job_title LIKE '%Manager%'",
		},
		{
			Title: "7. High-Salary Employees (> 10,000)",
			Query: `
SELECT
    employee_id,
    first_name || ' ' || last_name AS full_name,
    salary
FROM employees
WHERE salary > 10000`,
		},
		{
			Title: "8. High-Salary Employees in Department 5",
			Query: `
SELECT
    employee_id,
    first_name || ' ' || last_name AS full_name,
    salary,
    department_id
FROM employees
WHERE salary > 8000 AND department_id = 5`,
		},
		{
			Title: "9. Employees in Departments 3, 6, or 9",
			Query: `
SELECT
    employee_id,
    first_name || ' ' || last_name AS full_name,
    department_id
FROM employees
WHERE department_id IN (3, 6, 9)`,
		},
		{
			Title: "10. Jobs with Min Salary Between 4,000 and 8,000",
			Query: `
SELECT
    job_id,
    job_title,
    min_salary,
    max_salary
FROM jobs
WHERE min_salary BETWEEN 4000 AND 8000`,
		},
		{
			Title: "11. Employees with No Phone Number",
			Query: `
SELECT
    employee_id,
    first_name || ' ' || last_name AS full_name,
    phone_number
FROM employees
WHERE phone_number IS NULL`,
		},
		{
			Title: "12. Employees by Salary (Descending)",
			Query: `
SELECT
    employee_id,
    first_name || ' ' || last_name AS full_name,
    salary
FROM employees
ORDER BY salary DESC
LIMIT 10`,
		},
		{
			Title: "13. Employees by Department, then Salary (Desc)",
			Query: `
SELECT
    employee_id,
    first_name || ' ' || last_name AS full_name,
    department_id,
    salary
FROM employees
ORDER BY department_id, salary DESC
LIMIT 15`,
			Limit: 15,
		},
		{
			Title: "14. Next 5 Employees (Offset 5)",
			Query: `
SELECT
    employee_id,
    first_name || ' ' || last_name AS full_name,
    salary
FROM employees
ORDER BY employee_id
LIMIT 5 OFFSET 5`,
		},
		{
			Title: "15. Distinct Departments",
			Query: "SELECT DISTINCT department_id FROM employees ORDER BY department_id",
			Limit: 15,
		},
		{
			Title: "16. Distinct Department-Job Combinations",
			Query: `
SELECT DISTINCT
    department_id,
    job_id
FROM employees
ORDER BY department_id, job_id`,
		},
		{
			Title: "17. Salary Categories",
			Query: `
SELECT
    employee_id,
    first_name || ' ' || last_name AS full_name,
    salary,
    CASE
        WHEN salary < 5000 THEN 'Low'
        WHEN salary < 10000 THEN 'Medium'
        ELSE 'High'
    END AS salary_category
FROM employees
ORDER BY salary
LIMIT 10`,
		},
		{
			Title: "18. Region Sizes by Country Count",
			Query: `
SELECT
    r.region_name,
    COUNT(*) AS country_count,
    CASE
        WHEN COUNT(*) < 5 THEN 'Small Region'
        WHEN COUNT(*) < 10 THEN 'Medium Region'
        ELSE 'Large Region'
    END AS region_size
FROM regions r
JOIN countries c ON r.region_id = c.region_id
GROUP BY r.region_id, r.region_name
ORDER BY country_count DESC`,
		},
	},
}
