package db

import (
	"net/url"
	"strconv"
)

// Config holds the connection parameters for the embedded DuckDB engine.
// It is defined once at startup and passed explicitly into Open; nothing
// in this package reads ambient global state.
type Config struct {
	// Path is the database file location. Empty or ":memory:" selects an
	// in-memory database that is discarded when the connection closes.
	Path string

	// ReadOnly opens the database in read-only access mode.
	ReadOnly bool

	// MemoryLimit caps the engine's memory usage, e.g. "2GB".
	MemoryLimit string

	// Threads sets the engine's worker thread count.
	Threads int
}

// DefaultConfig returns the standard workbench configuration: a local
// hr_database.duckdb file, read-write, 2GB memory limit, 4 threads.
func DefaultConfig() Config {
	return Config{
		Path:        "hr_database.duckdb",
		MemoryLimit: "2GB",
		Threads:     4,
	}
}

// InMemory reports whether the configuration targets an in-memory database.
func (cfg Config) InMemory() bool {
	return cfg.Path == "" || cfg.Path == ":memory:"
}

// DSN renders the DuckDB connection string, encoding access mode and
// tuning options as query parameters understood by the driver.
func (cfg Config) DSN() string {
	params := url.Values{}

	if cfg.ReadOnly {
		params.Set("access_mode", "read_only")
	}
	if cfg.MemoryLimit != "" {
		params.Set("memory_limit", cfg.MemoryLimit)
	}
	if cfg.Threads > 0 {
		params.Set("threads", strconv.Itoa(cfg.Threads))
	}

	path := cfg.Path
	if path == ":memory:" {
		path = ""
	}

	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
