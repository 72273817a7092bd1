package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/pqhead/internal/table"
)

// TableFormatter renders rows as an aligned text table with column
// headers, suitable for human inspection on a terminal.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new text table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the table with columns in schema order. An empty
// table renders the header block and zero data rows.
func (t *TableFormatter) Format(tbl *table.Table) error {
	columns := tbl.ColumnNames()

	tw := tablewriter.NewWriter(t.writer)
	tw.SetHeader(columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	for _, row := range tbl.Rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = formatValue(row[col])
		}
		tw.Append(record)
	}

	tw.Render()
	return nil
}
