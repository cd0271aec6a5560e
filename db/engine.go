package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
)

var (
	// ErrConnection indicates the database file could not be opened or the
	// configuration was rejected by the engine.
	ErrConnection = errors.New("connection failed")

	// ErrQuery indicates DuckDB rejected the SQL text (syntax error or a
	// missing table/column).
	ErrQuery = errors.New("query failed")
)

// Open opens a connection to the embedded engine using the given
// configuration. Callers own the returned handle and must close it;
// the intended pattern is open, use, close within a single call.
func Open(cfg Config) (*sql.DB, error) {
	conn, err := sql.Open("duckdb", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// sql.Open defers real work; ping so an unreachable or malformed
	// storage location fails here rather than on first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return conn, nil
}

// Engine executes SQL against the configured database. Every operation
// opens one connection, performs one unit of work, and closes the
// connection before returning.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's connection configuration.
func (engine *Engine) Config() Config {
	return engine.cfg
}

// Query executes a single SQL statement with optional positional
// parameters and materializes the full result set. A failing query
// yields no rows; there are no partial results.
func (engine *Engine) Query(query string, args ...any) (QueryResult, error) {
	startTime := time.Now()

	conn, err := Open(engine.cfg)
	if err != nil {
		return QueryResult{}, err
	}
	defer conn.Close()

	rows, err := conn.Query(query, args...)
	if err != nil {
		return QueryResult{}, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return QueryResult{}, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	var data [][]string
	for rows.Next() {
		values := make([]any, len(columns))
		scanArgs := make([]any, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}

		if err := rows.Scan(scanArgs...); err != nil {
			return QueryResult{}, fmt.Errorf("%w: %v", ErrQuery, err)
		}

		row := make([]string, len(columns))
		for i, value := range values {
			row[i] = formatValue(value)
		}
		data = append(data, row)
	}

	if err := rows.Err(); err != nil {
		return QueryResult{}, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return QueryResult{
		Columns:          columns,
		Data:             data,
		RecordsRead:      len(data),
		ExecutionTimeSec: time.Since(startTime).Seconds(),
	}, nil
}

// Tables lists the tables in the database.
func (engine *Engine) Tables() ([]string, error) {
	result, err := engine.Query("SHOW TABLES")
	if err != nil {
		return nil, err
	}

	tables := make([]string, len(result.Data))
	for i, row := range result.Data {
		tables[i] = row[0]
	}
	return tables, nil
}

// Describe returns the column structure of a table.
func (engine *Engine) Describe(table string) (QueryResult, error) {
	return engine.Query(fmt.Sprintf("DESCRIBE %s", table))
}

// TableInfo describes one table: its name, row count, and column names.
type TableInfo struct {
	Name    string
	Rows    int64
	Columns []string
}

// Info collects row counts and column names for the named tables over a
// single connection, in the given order.
func (engine *Engine) Info(tables ...string) ([]TableInfo, error) {
	conn, err := Open(engine.cfg)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	infos := make([]TableInfo, 0, len(tables))
	for _, table := range tables {
		var count int64
		err := conn.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQuery, err)
		}

		columns, err := describeColumns(conn, table)
		if err != nil {
			return nil, err
		}

		infos = append(infos, TableInfo{Name: table, Rows: count, Columns: columns})
	}

	return infos, nil
}

// describeColumns returns the column names of a table, in schema order.
func describeColumns(conn *sql.DB, table string) ([]string, error) {
	rows, err := conn.Query(fmt.Sprintf("DESCRIBE %s", table))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	var columns []string
	for rows.Next() {
		values := make([]any, len(cols))
		scanArgs := make([]any, len(cols))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQuery, err)
		}
		// First DESCRIBE column is the column name
		columns = append(columns, formatValue(values[0]))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return columns, nil
}
