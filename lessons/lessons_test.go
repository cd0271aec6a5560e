package lessons

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/duckdrill/duckdrill/db"
	"github.com/duckdrill/duckdrill/hr"
)

func setupTestDatabase(t *testing.T) *db.Engine {
	cfg := db.Config{
		Path:        filepath.Join(t.TempDir(), "lessons_test.duckdb"),
		MemoryLimit: "500MB",
		Threads:     2,
	}

	loader := hr.Loader{
		Config:     cfg,
		SchemaPath: "../data/schema.sql",
		DataPath:   "../data/data.sql",
		Out:        &strings.Builder{},
	}
	if err := loader.Run(); err != nil {
		t.Fatalf("Failed to load sample data: %v", err)
	}

	return db.NewEngine(cfg)
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("Expected 4 lessons, got %d", len(all))
	}

	expected := []string{"intro", "joins", "aggregation", "subqueries"}
	for i, lesson := range all {
		if lesson.Name != expected[i] {
			t.Errorf("Lesson %d: expected %s, got %s", i, expected[i], lesson.Name)
		}
		if lesson.Title == "" {
			t.Errorf("Lesson %s has no title", lesson.Name)
		}
		if len(lesson.Examples) == 0 {
			t.Errorf("Lesson %s has no examples", lesson.Name)
		}
	}
}

func TestFind(t *testing.T) {
	lesson, ok := Find("joins")
	if !ok {
		t.Fatal("Expected to find joins lesson")
	}
	if lesson.Name != "joins" {
		t.Errorf("Expected joins, got %s", lesson.Name)
	}

	if _, ok := Find("calculus"); ok {
		t.Error("Expected lookup of unknown lesson to fail")
	}
}

func TestExamplesHaveTitlesAndQueries(t *testing.T) {
	for _, lesson := range All() {
		for i, example := range lesson.Examples {
			if example.Title == "" {
				t.Errorf("%s example %d has no title", lesson.Name, i)
			}
			if strings.TrimSpace(example.Query) == "" {
				t.Errorf("%s example %d has no query", lesson.Name, i)
			}
		}
	}
}

func TestRunAllLessons(t *testing.T) {
	engine := setupTestDatabase(t)

	for _, lesson := range All() {
		t.Run(lesson.Name, func(t *testing.T) {
			var out strings.Builder
			if err := lesson.Run(engine, &out); err != nil {
				t.Fatalf("Lesson failed: %v", err)
			}

			output := out.String()
			if !strings.Contains(output, lesson.Title) {
				t.Error("Expected output to contain the lesson title")
			}
			if !strings.Contains(output, strings.Repeat("=", len(lesson.Title))) {
				t.Error("Expected title underline of matching width")
			}
			for _, example := range lesson.Examples {
				if !strings.Contains(output, example.Title) {
					t.Errorf("Expected output to contain example title %q", example.Title)
				}
			}
		})
	}
}

func TestRunAbortsOnFailure(t *testing.T) {
	engine := setupTestDatabase(t)

	broken := Lesson{
		Name:  "broken",
		Title: "Broken Lesson",
		Examples: []Example{
			{Title: "works", Query: "SELECT 1"},
			{Title: "fails", Query: "SELECT * FROM no_such_table"},
			{Title: "never runs", Query: "SELECT 2"},
		},
	}

	var out strings.Builder
	err := broken.Run(engine, &out)
	if err == nil {
		t.Fatal("Expected lesson to fail")
	}
	if !strings.Contains(err.Error(), "fails") {
		t.Errorf("Expected error to name the failing example, got %v", err)
	}
	if strings.Contains(out.String(), "never runs") {
		t.Error("Examples after a failure must not run")
	}
}
