package db

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestEngine(t *testing.T) *Engine {
	cfg := Config{
		Path:        filepath.Join(t.TempDir(), "engine_test.duckdb"),
		MemoryLimit: "500MB",
		Threads:     2,
	}

	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	stmts := []string{
		"CREATE TABLE items (id INTEGER PRIMARY KEY, name VARCHAR NOT NULL, price DECIMAL(8, 2))",
		"INSERT INTO items VALUES (1, 'widget', 9.99)",
		"INSERT INTO items VALUES (2, 'gadget', 24.50)",
		"INSERT INTO items VALUES (3, 'gizmo', NULL)",
	}
	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			t.Fatalf("Setup statement failed: %v", err)
		}
	}

	return NewEngine(cfg)
}

func TestConfigDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{"bare path", Config{Path: "test.duckdb"}, "test.duckdb"},
		{"in-memory", Config{Path: ":memory:"}, ""},
		{"empty path", Config{}, ""},
		{
			"read-only",
			Config{Path: "test.duckdb", ReadOnly: true},
			"test.duckdb?access_mode=read_only",
		},
		{
			"tuning options",
			Config{Path: "test.duckdb", MemoryLimit: "2GB", Threads: 4},
			"test.duckdb?memory_limit=2GB&threads=4",
		},
		{
			"all options",
			Config{Path: "hr.duckdb", ReadOnly: true, MemoryLimit: "1GB", Threads: 2},
			"hr.duckdb?access_mode=read_only&memory_limit=1GB&threads=2",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if dsn := test.cfg.DSN(); dsn != test.expected {
				t.Errorf("DSN() = %q, expected %q", dsn, test.expected)
			}
		})
	}
}

func TestConfigInMemory(t *testing.T) {
	if !(Config{}).InMemory() {
		t.Error("Empty path should be in-memory")
	}
	if !(Config{Path: ":memory:"}).InMemory() {
		t.Error(":memory: should be in-memory")
	}
	if (Config{Path: "hr.duckdb"}).InMemory() {
		t.Error("File path should not be in-memory")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Path != "hr_database.duckdb" {
		t.Errorf("Expected default path hr_database.duckdb, got %s", cfg.Path)
	}
	if cfg.ReadOnly {
		t.Error("Default config should be read-write")
	}
	if cfg.MemoryLimit != "2GB" {
		t.Errorf("Expected 2GB memory limit, got %s", cfg.MemoryLimit)
	}
	if cfg.Threads != 4 {
		t.Errorf("Expected 4 threads, got %d", cfg.Threads)
	}
}

func TestOpenBadPath(t *testing.T) {
	cfg := Config{Path: filepath.Join(t.TempDir(), "no", "such", "dir", "x.duckdb")}

	_, err := Open(cfg)
	if err == nil {
		t.Fatal("Expected error for unreachable database path")
	}
	if !errors.Is(err, ErrConnection) {
		t.Errorf("Expected ErrConnection, got %v", err)
	}
}

func TestEngineQuery(t *testing.T) {
	engine := setupTestEngine(t)

	result, err := engine.Query("SELECT id, name, price FROM items ORDER BY id")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if len(result.Columns) != 3 {
		t.Errorf("Expected 3 columns, got %d", len(result.Columns))
	}
	if result.RecordsRead != 3 {
		t.Errorf("Expected 3 records, got %d", result.RecordsRead)
	}
	if result.Data[0][1] != "widget" {
		t.Errorf("Expected widget, got %s", result.Data[0][1])
	}
	if result.Data[2][2] != "NULL" {
		t.Errorf("Expected NULL price, got %s", result.Data[2][2])
	}
}

func TestEngineQueryParameters(t *testing.T) {
	engine := setupTestEngine(t)

	result, err := engine.Query("SELECT name FROM items WHERE id = ?", 2)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if result.RecordsRead != 1 {
		t.Fatalf("Expected 1 record, got %d", result.RecordsRead)
	}
	if result.Data[0][0] != "gadget" {
		t.Errorf("Expected gadget, got %s", result.Data[0][0])
	}
}

func TestEngineQueryError(t *testing.T) {
	engine := setupTestEngine(t)

	_, err := engine.Query("SELECT no_such_column FROM items")
	if err == nil {
		t.Fatal("Expected error for missing column")
	}
	if !errors.Is(err, ErrQuery) {
		t.Errorf("Expected ErrQuery, got %v", err)
	}

	_, err = engine.Query("SELEKT broken")
	if err == nil {
		t.Fatal("Expected error for invalid SQL")
	}
	if !errors.Is(err, ErrQuery) {
		t.Errorf("Expected ErrQuery, got %v", err)
	}
}

func TestEngineQueryEmptyResult(t *testing.T) {
	engine := setupTestEngine(t)

	result, err := engine.Query("SELECT * FROM items WHERE id = 999")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if result.RecordsRead != 0 {
		t.Errorf("Expected 0 records, got %d", result.RecordsRead)
	}
	if len(result.Columns) != 3 {
		t.Errorf("Expected column names even with no rows, got %d", len(result.Columns))
	}
}

func TestEngineTables(t *testing.T) {
	engine := setupTestEngine(t)

	tables, err := engine.Tables()
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if len(tables) != 1 || tables[0] != "items" {
		t.Errorf("Expected [items], got %v", tables)
	}
}

func TestEngineDescribe(t *testing.T) {
	engine := setupTestEngine(t)

	result, err := engine.Describe("items")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if len(result.Data) != 3 {
		t.Errorf("Expected 3 column rows, got %d", len(result.Data))
	}
	if result.Data[0][0] != "id" {
		t.Errorf("Expected first column id, got %s", result.Data[0][0])
	}
}

func TestEngineInfo(t *testing.T) {
	engine := setupTestEngine(t)

	infos, err := engine.Info("items")
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("Expected 1 table info, got %d", len(infos))
	}
	if infos[0].Name != "items" || infos[0].Rows != 3 {
		t.Errorf("Expected items with 3 rows, got %s with %d", infos[0].Name, infos[0].Rows)
	}
	if len(infos[0].Columns) != 3 || infos[0].Columns[0] != "id" {
		t.Errorf("Unexpected columns: %v", infos[0].Columns)
	}
}

func TestEngineReadOnly(t *testing.T) {
	engine := setupTestEngine(t)

	roCfg := engine.Config()
	roCfg.ReadOnly = true
	ro := NewEngine(roCfg)

	if _, err := ro.Query("SELECT COUNT(*) FROM items"); err != nil {
		t.Fatalf("Read query failed on read-only database: %v", err)
	}

	_, err := ro.Query("INSERT INTO items VALUES (4, 'doohickey', 1.00)")
	if err == nil {
		t.Error("Expected write to fail on read-only database")
	}
}

func TestEngineInMemory(t *testing.T) {
	engine := NewEngine(Config{Path: ":memory:"})

	result, err := engine.Query("SELECT 1 + 1 AS two")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if result.Data[0][0] != "2" {
		t.Errorf("Expected 2, got %s", result.Data[0][0])
	}
}

func TestEngineScopedConnections(t *testing.T) {
	// Each Query opens and closes its own connection; state persists only
	// through the database file.
	engine := setupTestEngine(t)

	for i := 0; i < 5; i++ {
		result, err := engine.Query("SELECT COUNT(*) FROM items")
		if err != nil {
			t.Fatalf("Query %d failed: %v", i, err)
		}
		if result.Data[0][0] != "3" {
			t.Errorf("Query %d: expected 3, got %s", i, result.Data[0][0])
		}
	}

	if !strings.HasSuffix(engine.Config().Path, "engine_test.duckdb") {
		t.Errorf("Unexpected config path: %s", engine.Config().Path)
	}
}
