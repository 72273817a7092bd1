package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFormatter_Format(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		wantLines int
	}{
		{name: "empty table", rows: 0, wantLines: 1}, // header only
		{name: "single row", rows: 1, wantLines: 2},
		{name: "multiple rows", rows: 3, wantLines: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter := NewCSVFormatter(&buf)

			require.NoError(t, formatter.Format(previewTable(tt.rows)))

			records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
			require.NoError(t, err, "Format() produced invalid CSV")
			assert.Len(t, records, tt.wantLines)
		})
	}
}

func TestCSVFormatter_ColumnOrder(t *testing.T) {
	// Columns follow schema order, not alphabetical order.
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	require.NoError(t, formatter.Format(previewTable(2)))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	assert.Equal(t, []string{"code", "product_name", "nutriscore"}, records[0])
	assert.Equal(t, []string{"c0", "granola", "0"}, records[1])
	assert.Equal(t, []string{"c1", "granola", "1"}, records[2])
}

func TestCSVFormatter_NilValues(t *testing.T) {
	tbl := previewTable(1)
	tbl.Rows[0]["nutriscore"] = nil

	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	require.NoError(t, formatter.Format(tbl))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "", records[1][2])
}
