package duckdrill_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/duckdrill/duckdrill"
	"github.com/duckdrill/duckdrill/db"
	"github.com/duckdrill/duckdrill/hr"
	"github.com/duckdrill/duckdrill/lessons"
)

// End-to-end: load the shipped dataset into a fresh database file, then
// run every lesson against it.
func TestSetupAndRunLessons(t *testing.T) {
	cfg := db.Config{
		Path:        filepath.Join(t.TempDir(), "integration.duckdb"),
		MemoryLimit: "500MB",
		Threads:     2,
	}

	loader := hr.Loader{
		Config:     cfg,
		SchemaPath: "data/schema.sql",
		DataPath:   "data/data.sql",
		Out:        &strings.Builder{},
	}
	if err := loader.Run(); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	engine := duckdrill.Open(cfg).Engine()

	result, err := engine.Query("SELECT COUNT(*) FROM employees")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if result.Data[0][0] != "40" {
		t.Errorf("Expected 40 employees, got %s", result.Data[0][0])
	}

	for _, lesson := range lessons.All() {
		var out strings.Builder
		if err := lesson.Run(engine, &out); err != nil {
			t.Fatalf("Lesson %s failed: %v", lesson.Name, err)
		}
		if out.Len() == 0 {
			t.Errorf("Lesson %s produced no output", lesson.Name)
		}
	}
}

// The practice database can be reopened read-only for drilling without
// risking accidental writes.
func TestReadOnlySession(t *testing.T) {
	cfg := db.Config{Path: filepath.Join(t.TempDir(), "readonly.duckdb")}

	loader := hr.Loader{
		Config:     cfg,
		SchemaPath: "data/schema.sql",
		DataPath:   "data/data.sql",
		Out:        &strings.Builder{},
	}
	if err := loader.Run(); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	cfg.ReadOnly = true
	engine := duckdrill.Open(cfg).Engine()

	if _, err := engine.Query("SELECT * FROM departments"); err != nil {
		t.Fatalf("Read failed on read-only session: %v", err)
	}

	if _, err := engine.Query("DELETE FROM employees"); err == nil {
		t.Error("Expected write to fail on read-only session")
	}
}

func TestTablesListAfterSetup(t *testing.T) {
	cfg := db.Config{Path: filepath.Join(t.TempDir(), "tables.duckdb")}

	loader := hr.Loader{
		Config:     cfg,
		SchemaPath: "data/schema.sql",
		DataPath:   "data/data.sql",
		Out:        &strings.Builder{},
	}
	if err := loader.Run(); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	tables, err := duckdrill.Open(cfg).Engine().Tables()
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if len(tables) != len(hr.Tables) {
		t.Fatalf("Expected %d tables, got %d: %v", len(hr.Tables), len(tables), tables)
	}

	found := make(map[string]bool, len(tables))
	for _, table := range tables {
		found[table] = true
	}
	for _, want := range hr.Tables {
		if !found[want] {
			t.Errorf("Missing table %s", want)
		}
	}
}
