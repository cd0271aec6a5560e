package lessons

// Aggregation covers aggregate functions, GROUP BY, HAVING, window
// functions, string aggregation, and date-based analysis.
var Aggregation = Lesson{
	Name:  "aggregation",
	Title: "SQL Practice: Aggregation Functions and GROUP BY",
	Examples: []Example{
		{
			Title: "1. Total Employee Count",
			Query: "SELECT COUNT(*) AS total_employees FROM employees",
		},
		{
			Title: "2. Count with NULL handling",
			Query: `
SELECT
    COUNT(*) AS total_employees,
    COUNT(phone_number) AS employees_with_phone,
    COUNT(manager_id) AS employees_with_manager
FROM employees`,
		},
		{
			Title: "3. Salary Statistics",
			Query: `
SELECT
    COUNT(*) AS employee_count,
    MIN(salary) AS min_salary,
    MAX(salary) AS max_salary,
    ROUND(AVG(salary), 2) AS avg_salary,
    SUM(salary) AS total_salary
FROM employees`,
		},
		{
			Title: "4. Distinct Counts",
			Query: `
SELECT
    COUNT(DISTINCT department_id) AS unique_departments,
    COUNT(DISTINCT job_id) AS unique_jobs,
    COUNT(DISTINCT manager_id) AS unique_managers
FROM employees`,
		},
		{
			Title: "5. Employees by Department",
			Query: `
SELECT
    department_id,
    COUNT(*) AS employee_count,
    ROUND(AVG(salary), 2) AS avg_salary
FROM employees
GROUP BY department_id
ORDER BY department_id`,
			Limit: 15,
		},
		{
			Title: "6. Department Statistics with Names",
			Query: `
SELECT
    d.department_name,
    COUNT(e.employee_id) AS employee_count,
    ROUND(AVG(e.salary), 2) AS avg_salary,
    MIN(e.salary) AS min_salary,
    MAX(e.salary) AS max_salary
FROM departments d
LEFT JOIN employees e ON d.department_id = e.department_id
GROUP BY d.department_id, d.department_name
ORDER BY employee_count DESC`,
			Limit: 15,
		},
		{
			Title: "7. Employees by Department and Job",
			Query: `
SELECT
    d.department_name,
    j.job_title,
    COUNT(e.employee_id) AS employee_count,
    ROUND(AVG(e.salary), 2) AS avg_salary
FROM employees e
JOIN departments d ON e.department_id = d.department_id
JOIN jobs j ON e.job_id = j.job_id
GROUP BY d.department_id, d.department_name, j.job_id, j.job_title
HAVING COUNT(e.employee_id) > 0
ORDER BY d.department_name, employee_count DESC`,
			Limit: 20,
		},
		{
			Title: "8. Departments with > 3 Employees",
			Query: `
SELECT
    d.department_name,
    COUNT(e.employee_id) AS employee_count,
    ROUND(AVG(e.salary), 2) AS avg_salary
FROM departments d
JOIN employees e ON d.department_id = e.department_id
GROUP BY d.department_id, d.department_name
HAVING COUNT(e.employee_id) > 3
ORDER BY employee_count DESC`,
		},
		{
			Title: "9. High-Paying Departments (Avg > 8000)",
			Query: `
SELECT
    d.department_name,
    COUNT(e.employee_id) AS employee_count,
    ROUND(AVG(e.salary), 2) AS avg_salary
FROM departments d
JOIN employees e ON d.department_id = e.department_id
GROUP BY d.department_id, d.department_name
HAVING AVG(e.salary) > 8000
ORDER BY avg_salary DESC`,
		},
		{
			Title: "10. Well-Paid Employees by Department (WHERE and HAVING)",
			Query: `
SELECT
    d.department_name,
    COUNT(e.employee_id) AS employee_count,
    ROUND(AVG(e.salary), 2) AS avg_salary
FROM departments d
JOIN employees e ON d.department_id = e.department_id
WHERE e.salary > 5000
GROUP BY d.department_id, d.department_name
HAVING COUNT(e.employee_id) >= 2
ORDER BY avg_salary DESC`,
		},
		{
			Title: "11. Salary Quartiles by Department",
			Query: `
SELECT
    d.department_name,
    COUNT(e.employee_id) AS employee_count,
    ROUND(MIN(e.salary), 2) AS min_salary,
    ROUND(PERCENTILE_CONT(0.25) WITHIN GROUP (ORDER BY e.salary), 2) AS q1_salary,
    ROUND(PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY e.salary), 2) AS median_salary,
    ROUND(PERCENTILE_CONT(0.75) WITHIN GROUP (ORDER BY e.salary), 2) AS q3_salary,
    ROUND(MAX(e.salary), 2) AS max_salary
FROM departments d
JOIN employees e ON d.department_id = e.department_id
GROUP BY d.department_id, d.department_name
HAVING COUNT(e.employee_id) >= 3
ORDER BY median_salary DESC`,
		},
		{
			Title: "12. Employee Names by Department",
			Query: `
SELECT
    d.department_name,
    COUNT(e.employee_id) AS employee_count,
    STRING_AGG(e.first_name || ' ' || e.last_name, ', ' ORDER BY e.salary DESC) AS employees
FROM departments d
JOIN employees e ON d.department_id = e.department_id
GROUP BY d.department_id, d.department_name
HAVING COUNT(e.employee_id) BETWEEN 2 AND 5
ORDER BY employee_count DESC`,
		},
		{
			Title: "13. High Earner Analysis by Department",
			Query: `
SELECT
    d.department_name,
    COUNT(e.employee_id) AS total_employees,
    COUNT(CASE WHEN e.salary > 8000 THEN 1 END) AS high_earners,
    COUNT(CASE WHEN e.salary <= 8000 THEN 1 END) AS regular_earners,
    ROUND(100.0 * COUNT(CASE WHEN e.salary > 8000 THEN 1 END) / COUNT(e.employee_id), 1) AS high_earner_percentage
FROM departments d
JOIN employees e ON d.department_id = e.department_id
GROUP BY d.department_id, d.department_name
ORDER BY high_earner_percentage DESC`,
			Limit: 15,
		},
		{
			Title: "14. Running Totals and Rankings by Department",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS full_name,
    d.department_name,
    e.salary,
    SUM(e.salary) OVER (PARTITION BY e.department_id ORDER BY e.salary) AS running_salary_total,
    ROW_NUMBER() OVER (PARTITION BY e.department_id ORDER BY e.salary DESC) AS salary_rank_in_dept
FROM employees e
JOIN departments d ON e.department_id = d.department_id
WHERE e.department_id IN (3, 5, 6)
ORDER BY e.department_id, e.salary DESC`,
			Limit: 15,
		},
		{
			Title: "15. Salary Percentiles and Quartiles",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS full_name,
    d.department_name,
    e.salary,
    ROUND(PERCENT_RANK() OVER (PARTITION BY e.department_id ORDER BY e.salary) * 100, 1) AS salary_percentile,
    NTILE(4) OVER (PARTITION BY e.department_id ORDER BY e.salary) AS salary_quartile
FROM employees e
JOIN departments d ON e.department_id = d.department_id
WHERE e.department_id IN (5, 6, 10)
ORDER BY e.department_id, e.salary DESC`,
			Limit: 15,
		},
		{
			Title: "16. Salary Comparison to Averages",
			Query: `
SELECT
    e.employee_id,
    e.first_name || ' ' || e.last_name AS full_name,
    d.department_name,
    e.salary,
    ROUND(AVG(e.salary) OVER (PARTITION BY e.department_id), 2) AS dept_avg_salary,
    ROUND(e.salary - AVG(e.salary) OVER (PARTITION BY e.department_id), 2) AS diff_from_dept_avg,
    ROUND(AVG(e.salary) OVER (), 2) AS company_avg_salary,
    ROUND(e.salary - AVG(e.salary) OVER (), 2) AS diff_from_company_avg
FROM employees e
JOIN departments d ON e.department_id = d.department_id
ORDER BY d.department_name, e.salary DESC
LIMIT 20`,
			Limit: 20,
		},
		{
			Title: "17. Employee Distribution by Region",
			Query: `
SELECT
    r.region_name,
    COUNT(e.employee_id) AS employee_count,
    COUNT(DISTINCT d.department_id) AS department_count,
    COUNT(DISTINCT l.location_id) AS location_count,
    ROUND(AVG(e.salary), 2) AS avg_salary
FROM regions r
JOIN countries c ON r.region_id = c.region_id
JOIN locations l ON c.country_id = l.country_id
JOIN departments d ON l.location_id = d.location_id
JOIN employees e ON d.department_id = e.department_id
GROUP BY r.region_id, r.region_name
ORDER BY employee_count DESC`,
		},
		{
			Title: "18. Detailed Location Analysis",
			Query: `
SELECT
    l.city,
    c.country_name,
    r.region_name,
    COUNT(e.employee_id) AS employee_count,
    ROUND(AVG(e.salary), 2) AS avg_salary,
    STRING_AGG(DISTINCT d.department_name, ', ') AS departments
FROM locations l
JOIN countries c ON l.country_id = c.country_id
JOIN regions r ON c.region_id = r.region_id
JOIN departments d ON l.location_id = d.location_id
LEFT JOIN employees e ON d.department_id = e.department_id
GROUP BY l.location_id, l.city, c.country_name, r.region_name
ORDER BY employee_count DESC`,
		},
		{
			Title: "19. Hiring Trends by Year",
			Query: `
SELECT
    EXTRACT(YEAR FROM CAST(hire_date AS DATE)) AS hire_year,
    COUNT(*) AS employees_hired,
    ROUND(AVG(salary), 2) AS avg_starting_salary
FROM employees
GROUP BY EXTRACT(YEAR FROM CAST(hire_date AS DATE))
ORDER BY hire_year`,
			Limit: 15,
		},
		{
			Title: "20. Employee Tenure Analysis",
			Query: `
SELECT
    CASE
        WHEN EXTRACT(YEAR FROM CURRENT_DATE) - EXTRACT(YEAR FROM CAST(hire_date AS DATE)) < 5 THEN '0-4 years'
        WHEN EXTRACT(YEAR FROM CURRENT_DATE) - EXTRACT(YEAR FROM CAST(hire_date AS DATE)) < 10 THEN '5-9 years'
        WHEN EXTRACT(YEAR FROM CURRENT_DATE) - EXTRACT(YEAR FROM CAST(hire_date AS DATE)) < 20 THEN '10-19 years'
        ELSE '20+ years'
    END AS tenure_group,
    COUNT(*) AS employee_count,
    ROUND(AVG(salary), 2) AS avg_salary
FROM employees
GROUP BY 1
ORDER BY
    CASE tenure_group
        WHEN '0-4 years' THEN 1
        WHEN '5-9 years' THEN 2
        WHEN '10-19 years' THEN 3
        ELSE 4
    END`,
		},
	},
}
