// Package db provides the connection layer between the workbench and the
// embedded DuckDB engine.
//
// All SQL parsing, planning, and execution belongs to DuckDB; this package
// only configures connections, runs statements, and materializes results.
//
// # Engine Usage
//
//	engine := db.NewEngine(db.DefaultConfig())
//	result, err := engine.Query("SELECT * FROM employees WHERE salary > ?", 10000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.Display("High earners")
//
// Every Engine operation opens one connection, performs one unit of work,
// and closes the connection before returning. Nothing is shared between
// calls, and release is guaranteed on all exit paths.
//
// # Errors
//
// Failures wrap one of two sentinels: ErrConnection when the storage
// location is unreachable or the configuration is malformed, and ErrQuery
// when DuckDB rejects the SQL or a referenced object does not exist.
// Nothing is retried; errors propagate to the caller after cleanup.
package db
