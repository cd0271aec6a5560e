package db

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultLimit is the number of rows printed when no limit is given.
const DefaultLimit = 10

// QueryResult is a fully materialized tabular result: an ordered sequence
// of rows aligned to the column names returned by the engine. It is
// produced by one query execution and never mutated by printing.
type QueryResult struct {
	Columns          []string
	Data             [][]string
	RecordsRead      int
	ExecutionTimeSec float64
}

// formatDuration formats a duration in human-readable form
func formatDuration(secs float64) string {
	switch {
	case secs < 0.001:
		return "<1ms"
	case secs < 1:
		ms := secs * 1000
		if ms < 10 {
			return fmt.Sprintf("%.1fms", ms)
		}
		return fmt.Sprintf("%dms", int(ms))
	case secs < 10:
		return fmt.Sprintf("%.1fs", secs)
	default:
		return fmt.Sprintf("%ds", int(secs))
	}
}

// ExecutionTime returns the query's wall time in human-readable form.
func (result QueryResult) ExecutionTime() string {
	return formatDuration(result.ExecutionTimeSec)
}

// Print writes the result to w with an optional title and a row limit.
// The title is underlined to matching width. When the result holds more
// than limit rows, only the first limit rows are shown followed by a
// count of the omitted rows. A limit of zero or less means DefaultLimit.
func (result QueryResult) Print(w io.Writer, title string, limit int) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if title != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
	}

	table := NewTable(w)
	table.Header(result.Columns)

	if len(result.Data) > limit {
		fmt.Fprintf(w, "Showing first %d of %d rows:\n", limit, len(result.Data))
		table.Bulk(result.Data[:limit])
		table.Render()
		fmt.Fprintf(w, "... (%d more row(s))\n", len(result.Data)-limit)
	} else {
		table.Bulk(result.Data)
		table.Render()
	}

	fmt.Fprintln(w)
}

// Display prints the result to standard output with the default row limit.
func (result QueryResult) Display(title string) {
	result.Print(os.Stdout, title, DefaultLimit)
}

// WriteCSV writes the full result, header row included, as CSV.
func (result QueryResult) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(result.Columns); err != nil {
		return err
	}
	for _, row := range result.Data {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatValue renders one scanned cell for display. NULLs print as the
// literal NULL; integral floats drop their fraction, matching how the
// engine's own shell shows whole-number decimals.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return formatFloat(v)
	case float32:
		return formatFloat(float64(v))
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format("2006-01-02 15:04:05")
	case interface{ Float64() float64 }:
		// DECIMAL columns surface as the driver's fixed-point type
		return formatFloat(v.Float64())
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
