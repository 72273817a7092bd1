package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	require.NoError(t, formatter.Format(previewTable(3)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	// One valid JSON object per line, in row order.
	for i, line := range lines {
		var row map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &row), "line %d is not valid JSON", i)

		assert.Equal(t, "granola", row["product_name"])
		assert.EqualValues(t, i, row["nutriscore"])
	}
}

func TestJSONFormatter_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	require.NoError(t, formatter.Format(previewTable(0)))
	assert.Empty(t, buf.String())
}
