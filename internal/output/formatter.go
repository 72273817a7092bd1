// Package output provides formatters for rendering a loaded table to
// various output formats.
//
// Currently supported formats:
//   - Text table: column headers plus aligned values (the default)
//   - JSON Lines: one JSON object per row
//   - CSV: comma-separated values with header row
//
// Example usage:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(tbl); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"

	"github.com/vegasq/pqhead/internal/table"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a table in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(tbl *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name, writing to w.
// Known names are "table", "jsonl" (alias "json") and "csv".
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "table":
		return NewTableFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: table, jsonl, csv)", name)
	}
}

// formatValue converts a scalar cell value to its text rendering,
// shared by the table and CSV formatters.
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		// Nested groups and lists fall back to Go syntax.
		return fmt.Sprintf("%v", val)
	}
}
