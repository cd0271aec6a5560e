package db

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Table renders rows in a fixed column-aligned textual form. Numeric
// columns are right-aligned, everything else left-aligned.
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a table writer targeting w.
func NewTable(w io.Writer) *Table {
	return &Table{writer: w}
}

// Header sets the column headers.
func (t *Table) Header(headers []string) {
	t.headers = headers
}

// Row appends a single row.
func (t *Table) Row(row []string) {
	t.rows = append(t.rows, row)
}

// Bulk appends multiple rows.
func (t *Table) Bulk(rows [][]string) {
	t.rows = append(t.rows, rows...)
}

// Render writes the formatted table.
func (t *Table) Render() {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return
	}

	widths := t.columnWidths()
	numeric := t.numericColumns()
	separator := buildSeparator(widths)

	fmt.Fprintln(t.writer, separator)
	if len(t.headers) > 0 {
		fmt.Fprintln(t.writer, formatCells(t.headers, widths, nil))
		fmt.Fprintln(t.writer, separator)
	}
	for _, row := range t.rows {
		fmt.Fprintln(t.writer, formatCells(row, widths, numeric))
	}
	fmt.Fprintln(t.writer, separator)
}

// columnWidths returns the display width needed for each column.
func (t *Table) columnWidths() []int {
	numCols := len(t.headers)
	for _, row := range t.rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	widths := make([]int, numCols)
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	return widths
}

// numericColumns reports, per column, whether every non-NULL cell parses
// as a number. Such columns are right-aligned.
func (t *Table) numericColumns() []bool {
	numCols := len(t.headers)
	for _, row := range t.rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	numeric := make([]bool, numCols)
	seen := make([]bool, numCols)
	for i := range numeric {
		numeric[i] = true
	}

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= numCols || cell == "" || cell == "NULL" {
				continue
			}
			seen[i] = true
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric[i] = false
			}
		}
	}

	for i := range numeric {
		if !seen[i] {
			numeric[i] = false
		}
	}
	return numeric
}

func buildSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

func formatCells(row []string, widths []int, numeric []bool) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := strings.Repeat(" ", w-len(cell))
		if numeric != nil && i < len(numeric) && numeric[i] {
			parts[i] = " " + pad + cell + " "
		} else {
			parts[i] = " " + cell + pad + " "
		}
	}
	return "|" + strings.Join(parts, "|") + "|"
}
