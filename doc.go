// Package duckdrill provides a DuckDB-backed SQL practice environment.
//
// duckdrill bundles the classic seven-table HR sample schema with graded
// lesson batteries, so learners can run real analytical SQL against an
// embedded engine with no server to stand up.
//
// # Quick Start
//
// Load the sample database and run a lesson:
//
//	cfg := db.DefaultConfig()
//	loader := hr.Loader{Config: cfg}
//	loader.Run()
//
//	instance := duckdrill.Open(cfg)
//	engine := instance.Engine()
//
//	lesson, _ := lessons.Find("intro")
//	lesson.Run(engine, os.Stdout)
//
// Or query directly:
//
//	result, _ := engine.Query("SELECT * FROM employees WHERE salary > 10000")
//	result.Display("High earners")
//
// # Lessons
//
// Four topic batteries ship with the module:
//   - intro: SELECT, WHERE, ORDER BY, LIMIT, DISTINCT, CASE
//   - joins: INNER, LEFT, RIGHT, FULL OUTER, CROSS, and self joins
//   - aggregation: GROUP BY, HAVING, window functions, percentiles
//   - subqueries: scalar and correlated subqueries, EXISTS, CTEs
//
// Every operation opens its own connection, does one unit of work, and
// closes it, so the database file is never held open between calls.
package duckdrill
