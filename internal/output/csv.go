package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/pqhead/internal/table"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the table as CSV: a header row with the columns in
// schema order, then one record per row.
func (c *CSVFormatter) Format(tbl *table.Table) error {
	csvWriter := csv.NewWriter(c.writer)
	columns := tbl.ColumnNames()

	if err := csvWriter.Write(columns); err != nil {
		return err
	}

	for _, row := range tbl.Rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = formatValue(row[col])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
