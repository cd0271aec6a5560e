package db

import (
	"strings"
	"testing"
)

func renderTable(headers []string, rows [][]string) string {
	var buf strings.Builder
	table := NewTable(&buf)
	table.Header(headers)
	table.Bulk(rows)
	table.Render()
	return buf.String()
}

func TestTableRender(t *testing.T) {
	out := renderTable(
		[]string{"name", "salary"},
		[][]string{
			{"King", "24000"},
			{"Kochhar", "17000"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines (3 separators, header, 2 rows), got %d:\n%s", len(lines), out)
	}

	// All lines share the same width
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			t.Errorf("Line %d width %d differs from %d", i, len(line), len(lines[0]))
		}
	}

	if !strings.HasPrefix(lines[0], "+-") {
		t.Errorf("Expected separator line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "name") || !strings.Contains(lines[1], "salary") {
		t.Errorf("Expected header line, got %q", lines[1])
	}
}

func TestTableNumericRightAlign(t *testing.T) {
	out := renderTable(
		[]string{"name", "salary"},
		[][]string{
			{"King", "24000"},
			{"Popp", "6900"},
		},
	)

	// Numeric column right-aligned: shorter value padded on the left
	if !strings.Contains(out, "|   6900 |") {
		t.Errorf("Expected right-aligned numeric cell, got:\n%s", out)
	}
	// Text column left-aligned
	if !strings.Contains(out, "| King |") {
		t.Errorf("Expected left-aligned text cell, got:\n%s", out)
	}
}

func TestTableNullsStayNumeric(t *testing.T) {
	out := renderTable(
		[]string{"name", "price"},
		[][]string{
			{"widget", "9.99"},
			{"gizmo", "NULL"},
		},
	)

	// NULL does not disqualify a column from numeric alignment
	if !strings.Contains(out, "|  9.99 |") {
		t.Errorf("Expected right-aligned price, got:\n%s", out)
	}
}

func TestTableMixedColumnNotNumeric(t *testing.T) {
	var buf strings.Builder
	table := NewTable(&buf)
	table.Header([]string{"value"})
	table.Row([]string{"123"})
	table.Row([]string{"abc"})
	table.Render()

	if !strings.Contains(buf.String(), "| 123   |") {
		t.Errorf("Mixed column should be left-aligned, got:\n%s", buf.String())
	}
}

func TestTableEmpty(t *testing.T) {
	var buf strings.Builder
	NewTable(&buf).Render()

	if buf.Len() != 0 {
		t.Errorf("Empty table should render nothing, got %q", buf.String())
	}
}

func TestTableHeaderOnly(t *testing.T) {
	out := renderTable([]string{"id", "name"}, nil)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines for header-only table, got %d:\n%s", len(lines), out)
	}
}
